package rides

import (
	"context"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tumpangan/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	UpdateRide(ctx context.Context, ride *models.Ride, at time.Time) (*models.RideUpdateResult, error)
	DeleteRide(ctx context.Context, rideID string) error
	SearchRides(ctx context.Context, query models.RideQuery) ([]models.RideListing, error)
	ListRidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error)

	GetPendingBookingRequest(ctx context.Context, rideID, passengerID string) (*models.BookingRequest, error)
	CreateBookingRequest(ctx context.Context, req *models.BookingRequest) error
	ListPendingRequestsByDriver(ctx context.Context, driverID string) ([]models.BookingRequest, error)
	ListPassengerRequests(ctx context.Context, rideID, passengerID string) ([]models.BookingRequest, error)
	DecideBookingRequest(ctx context.Context, requestID, driverID string, decision models.BookingStatus, at time.Time) (*models.DecisionResult, error)

	ConfirmPassenger(ctx context.Context, rideID, passengerID string, at time.Time) (*models.ConfirmedRide, error)
}

// RideCache defines the Redis-backed search and one-time code storage
// go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/piresc/tumpangan/services/rides RideCache
type RideCache interface {
	// GetSearch returns the cached payload and whether it was found
	GetSearch(ctx context.Context, key string) ([]byte, bool)
	SetSearch(ctx context.Context, key string, payload []byte)
	// InvalidateSearch drops every search entry that could list a ride departing on day
	InvalidateSearch(ctx context.Context, day time.Time)

	SetOTP(ctx context.Context, rideID, passengerID, code string) error
	// GetOTP returns "" without error when no code is stored
	GetOTP(ctx context.Context, rideID, passengerID string) (string, error)
	DeleteOTP(ctx context.Context, rideID, passengerID string) error
}
