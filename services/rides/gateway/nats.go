package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/internal/pkg/retry"
)

// RideGW handles JetStream publishing for booking intents and passenger notifications
type RideGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewRideGW creates a new ride gateway
func NewRideGW(cfg *models.Config, client *natspkg.Client) *RideGW {
	rc := retry.DefaultConfig("jetstream-publish")
	if cfg.Rides.NotifyMaxRetries > 0 {
		rc.MaxRetries = cfg.Rides.NotifyMaxRetries
	}
	if cfg.Rides.NotifyBaseDelay > 0 {
		rc.BaseDelay = cfg.Rides.NotifyBaseDelay
	}
	rc.MaxDelay = 2 * time.Second

	return &RideGW{
		natsClient: client,
		retrier:    retry.New(rc, nil),
	}
}

func (g *RideGW) publish(ctx context.Context, subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", subject, err)
	}
	return nrpkg.WithSegment(ctx, "JetStream.Publish."+subject, func() error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.natsClient.Publish(ctx, subject, data)
		})
	})
}

// PublishBookingIntent enqueues a booking intent for admission
func (g *RideGW) PublishBookingIntent(ctx context.Context, intent models.BookingIntent) error {
	if err := g.publish(ctx, constants.SubjectBookingRequested, intent); err != nil {
		return err
	}
	metrics.BookingIntentsTotal.Inc()
	return nil
}

// PublishNotification publishes a passenger notification for the notification worker
func (g *RideGW) PublishNotification(ctx context.Context, notification models.Notification) error {
	label := string(notification.Type)
	if err := g.publish(ctx, constants.SubjectNotificationBooking, notification); err != nil {
		metrics.NotificationFailures.WithLabelValues(label).Inc()
		return err
	}
	metrics.NotificationsPublished.WithLabelValues(label).Inc()
	logger.DebugCtx(ctx, "Notification published",
		logger.String("type", label),
		logger.String("ride_id", notification.RideID),
		logger.String("user_id", notification.UserID))
	return nil
}
