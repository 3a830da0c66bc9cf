package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	s := NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 0)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContext(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	port := freePort(t)
	s := NewGracefulServer(e, logger.NewNopLogger(), port, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/health/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownManager_ReverseOrderAndFirstError(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var order []string
	sm.Register("postgres", func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return errors.New("redis: client is closed")
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return nil
	})

	err := sm.Shutdown(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown redis")
	assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
}

func TestShutdownManager_Empty(t *testing.T) {
	assert.NoError(t, NewShutdownManager(logger.NewNopLogger()).Shutdown(context.Background()))
}
