package nats

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	s := runJetStreamServer(t)
	client, err := NewClient(s.ClientURL())
	require.NoError(t, err)
	t.Cleanup(func() { client.GetConn().Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.EnsureStreams(ctx, DefaultStreamConfigs()...))
	return client
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_StreamsAndPublish(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	assert.True(t, client.IsConnected())

	names, err := client.ListStreams(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{constants.StreamBooking, constants.StreamNotification}, names)

	require.NoError(t, client.PublishJSON(ctx, constants.SubjectNotificationBooking, map[string]string{"type": "RIDE_OTP"}))

	stream, err := client.GetJetStream().Stream(ctx, constants.StreamNotification)
	require.NoError(t, err)
	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestClient_PublishWithoutStreamFails(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := client.Publish(ctx, "unrouted.subject", []byte("{}"))
	assert.Error(t, err)
}

func TestConsumer_AckOnErrorDoesNotRedeliver(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var calls atomic.Int32
	consumer, err := NewJetStreamConsumer(ctx, client, BookingRequestedConsumerConfig(), AckOnError, func(msg jetstream.Msg) error {
		calls.Add(1)
		return errors.New("ride not found")
	})
	require.NoError(t, err)
	t.Cleanup(consumer.Stop)
	assert.True(t, consumer.IsActive())

	require.NoError(t, client.Publish(ctx, constants.SubjectBookingRequested, []byte(`{"rideId":"r-1"}`)))

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	pending, err := consumer.PendingMessages(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	consumer.Stop()
	assert.False(t, consumer.IsActive())
}

func TestConsumer_NakOnErrorRedelivers(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	var calls atomic.Int32
	consumer, err := NewJetStreamConsumer(ctx, client, BookingRequestedConsumerConfig(), NakOnError, func(msg jetstream.Msg) error {
		if calls.Add(1) == 1 {
			return errors.New("temporary failure")
		}
		return nil
	})
	require.NoError(t, err)
	t.Cleanup(consumer.Stop)

	require.NoError(t, client.Publish(ctx, constants.SubjectBookingRequested, []byte(`{}`)))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 3*time.Second, 20*time.Millisecond)
}

func TestDefaultStreamConfigs(t *testing.T) {
	configs := DefaultStreamConfigs()
	require.Len(t, configs, 2)

	booking, notification := configs[0], configs[1]
	assert.Equal(t, constants.StreamBooking, booking.Name)
	assert.Equal(t, []string{constants.SubjectBookingRequested}, booking.Subjects)
	assert.Equal(t, 7*24*time.Hour, booking.MaxAge)

	assert.Equal(t, constants.StreamNotification, notification.Name)
	assert.Equal(t, []string{constants.SubjectNotificationBooking}, notification.Subjects)
	assert.Equal(t, 3*24*time.Hour, notification.MaxAge)

	for _, cfg := range configs {
		assert.Equal(t, jetstream.FileStorage, cfg.Storage, cfg.Name)
		assert.Equal(t, jetstream.DiscardOld, cfg.Discard, cfg.Name)
	}
}

func TestBookingRequestedConsumerConfig(t *testing.T) {
	cfg := BookingRequestedConsumerConfig()
	assert.Equal(t, constants.ConsumerBookingRequestedRides, cfg.ConsumerName)
	assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
	assert.Equal(t, 30*time.Second, cfg.AckWait)
	assert.Equal(t, 3, cfg.MaxDeliver)
	assert.Equal(t, constants.SubjectBookingRequested, cfg.FilterSubject)
}
