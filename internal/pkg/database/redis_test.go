package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
}

func TestRedisClient_SetWithTTLAndGet(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.SetWithTTL(ctx, "ride1passenger2otp", "123456", 5*time.Minute)
	require.NoError(t, err)

	val, err := client.Get(ctx, "ride1passenger2otp")
	assert.NoError(t, err)
	assert.Equal(t, "123456", val)
	assert.Equal(t, 5*time.Minute, mr.TTL("ride1passenger2otp"))
}

func TestRedisClient_Get_Miss(t *testing.T) {
	_, client := setupMiniredis(t)

	_, err := client.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	mr, client := setupMiniredis(t)
	require.NoError(t, mr.Set("a", "1"))
	require.NoError(t, mr.Set("b", "2"))

	require.NoError(t, client.Delete(context.Background(), "a", "b"))
	assert.NoError(t, client.Delete(context.Background()))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedisClient_Delete_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("k").SetErr(errors.New("connection reset"))

	err := client.Delete(context.Background(), "k")

	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_DeleteByPattern(t *testing.T) {
	mr, client := setupMiniredis(t)
	require.NoError(t, mr.Set("rideNYCtoBostondate2025-01-10", "[]"))
	require.NoError(t, mr.Set("ridenyctobosdate2025-01-10", "[]"))
	require.NoError(t, mr.Set("rideNYCtoBostondate2025-01-11", "[]"))
	require.NoError(t, mr.Set("ride42passenger7otp", "111111"))

	deleted, err := client.DeleteByPattern(context.Background(), "ride*to*date2025-01-10")

	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.False(t, mr.Exists("rideNYCtoBostondate2025-01-10"))
	assert.False(t, mr.Exists("ridenyctobosdate2025-01-10"))
	assert.True(t, mr.Exists("rideNYCtoBostondate2025-01-11"))
	assert.True(t, mr.Exists("ride42passenger7otp"))
}

func TestRedisClient_DeleteByPattern_ScanError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectScan(0, "ride*", scanBatch).SetErr(errors.New("LOADING"))

	deleted, err := client.DeleteByPattern(context.Background(), "ride*")

	assert.Error(t, err)
	assert.Zero(t, deleted)
	assert.Contains(t, err.Error(), "failed to scan keys")
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
