package requestcontext

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))

	ctx = WithRequestID(ctx, "req-2")
	assert.Equal(t, "req-2", GetRequestID(ctx))
}

func TestUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))

	ctx = WithUserID(WithRequestID(ctx, "req-1"), "driver-1")
	assert.Equal(t, "driver-1", GetUserID(ctx))
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestGetRequestID_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, 42)
	assert.Empty(t, GetRequestID(ctx))
}

func TestFromMessageHeader(t *testing.T) {
	t.Run("reuses message id", func(t *testing.T) {
		header := nats.Header{}
		header.Set(nats.MsgIdHdr, "intent-7")

		ctx := FromMessageHeader(context.Background(), header)
		assert.Equal(t, "intent-7", GetRequestID(ctx))
	})

	t.Run("generates id without header", func(t *testing.T) {
		ctx := FromMessageHeader(context.Background(), nil)
		_, err := uuid.Parse(GetRequestID(ctx))
		assert.NoError(t, err)
	})
}
