package rides

import (
	"context"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// RideGW defines the interface for ride gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tumpangan/services/rides RideGW
type RideGW interface {
	PublishBookingIntent(ctx context.Context, intent models.BookingIntent) error
	PublishNotification(ctx context.Context, notification models.Notification) error
}
