package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tumpangan/internal/pkg/circuitbreaker"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

const (
	defaultSearchTTL = 300 * time.Second
	defaultOTPTTL    = 5 * time.Minute
)

// RideCache keeps search results and one-time codes in Redis behind a
// circuit breaker. Search operations are best effort and never fail the
// caller; code operations report their errors.
type RideCache struct {
	redis     *database.RedisClient
	breaker   *circuitbreaker.CircuitBreaker
	searchTTL time.Duration
	otpTTL    time.Duration
}

// NewRideCache creates the ride cache
func NewRideCache(cfg *models.Config, redisClient *database.RedisClient) *RideCache {
	bc := circuitbreaker.DefaultConfig("redis-cache")
	if cfg.Rides.CacheFailThreshold > 0 {
		bc.FailureThreshold = cfg.Rides.CacheFailThreshold
	}
	if cfg.Rides.CacheOpenTimeout > 0 {
		bc.Timeout = cfg.Rides.CacheOpenTimeout
	}
	// a miss is an answer, not a failure
	bc.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, redis.Nil)
	}
	bc.OnStateChange = func(_ string, _ circuitbreaker.State, to circuitbreaker.State) {
		metrics.CacheBreakerState.Set(float64(to))
	}

	c := &RideCache{
		redis:     redisClient,
		breaker:   circuitbreaker.New(bc, nil),
		searchTTL: cfg.Rides.SearchCacheTTL,
		otpTTL:    cfg.Rides.OTPTTL,
	}
	if c.searchTTL <= 0 {
		c.searchTTL = defaultSearchTTL
	}
	if c.otpTTL <= 0 {
		c.otpTTL = defaultOTPTTL
	}
	return c
}

// SearchKey builds the cache key for a search
func SearchKey(from, to, date string) string {
	return fmt.Sprintf(constants.KeyRideSearch, from, to, date)
}

func otpKey(rideID, passengerID string) string {
	return fmt.Sprintf(constants.KeyRideOTP, rideID, passengerID)
}

func (c *RideCache) GetSearch(ctx context.Context, key string) ([]byte, bool) {
	var val string
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		val, err = c.redis.Get(ctx, key)
		return err
	})
	switch {
	case err == nil:
		metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
		return []byte(val), true
	case errors.Is(err, redis.Nil):
		metrics.SearchCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.SearchCacheTotal.WithLabelValues("error").Inc()
		logger.WarnCtx(ctx, "Search cache read failed",
			logger.String("key", key),
			logger.Err(err))
	}
	return nil, false
}

func (c *RideCache) SetSearch(ctx context.Context, key string, payload []byte) {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.redis.SetWithTTL(ctx, key, payload, c.searchTTL)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Search cache write failed",
			logger.String("key", key),
			logger.Err(err))
	}
}

// InvalidateSearch removes the entries for day and the entries without a date
func (c *RideCache) InvalidateSearch(ctx context.Context, day time.Time) {
	patterns := []string{
		SearchKey("*", "*", day.UTC().Format(models.DateLayout)),
		SearchKey("*", "*", ""),
	}
	for _, pattern := range patterns {
		var deleted int
		err := c.breaker.Execute(ctx, func(ctx context.Context) error {
			var err error
			deleted, err = c.redis.DeleteByPattern(ctx, pattern)
			return err
		})
		metrics.CacheInvalidatedKeys.Add(float64(deleted))
		if err != nil {
			logger.WarnCtx(ctx, "Search cache invalidation failed",
				logger.String("pattern", pattern),
				logger.Err(err))
			continue
		}
		if deleted > 0 {
			logger.DebugCtx(ctx, "Search cache invalidated",
				logger.String("pattern", pattern),
				logger.Int("keys", deleted))
		}
	}
}

// SetOTP stores code for the passenger, replacing any previous one
func (c *RideCache) SetOTP(ctx context.Context, rideID, passengerID, code string) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.redis.SetWithTTL(ctx, otpKey(rideID, passengerID), code, c.otpTTL)
	})
	if err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

func (c *RideCache) GetOTP(ctx context.Context, rideID, passengerID string) (string, error) {
	var code string
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		code, err = c.redis.Get(ctx, otpKey(rideID, passengerID))
		return err
	})
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get otp: %w", err)
	}
	return code, nil
}

func (c *RideCache) DeleteOTP(ctx context.Context, rideID, passengerID string) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.redis.Delete(ctx, otpKey(rideID, passengerID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
