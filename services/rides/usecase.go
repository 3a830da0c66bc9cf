package rides

import (
	"context"
	"encoding/json"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpangan/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, identity models.Identity, req models.CreateRideRequest) (*models.Ride, error)
	SearchRides(ctx context.Context, criteria models.SearchCriteria) (json.RawMessage, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	UpdateRide(ctx context.Context, identity models.Identity, rideID string, req models.UpdateRideRequest) (*models.Ride, error)
	DeleteRide(ctx context.Context, identity models.Identity, rideID string) error
	ListDriverRides(ctx context.Context, identity models.Identity) ([]models.Ride, error)

	BookRide(ctx context.Context, identity models.Identity, rideID string, seats int) (*models.BookingIntent, error)
	AdmitBookingRequest(ctx context.Context, intent models.BookingIntent) error
	RespondToBookingRequest(ctx context.Context, identity models.Identity, requestID string, decision models.BookingStatus) (*models.BookingRequest, error)
	ListDriverBookingRequests(ctx context.Context, identity models.Identity) ([]models.BookingRequest, error)
	ListPassengerBookingRequests(ctx context.Context, identity models.Identity, rideID string) ([]models.BookingRequest, error)

	GenerateOTP(ctx context.Context, identity models.Identity, rideID, passengerID string) error
	ConfirmRide(ctx context.Context, identity models.Identity, rideID, passengerID, code string) (*models.ConfirmedRide, error)
}
