package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/rides/mocks"
)

var fixedNow = time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	uc    *rideUC
	repo  *mocks.MockRideRepo
	cache *mocks.MockRideCache
	gw    *mocks.MockRideGW
}

func setupUC(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:  mocks.NewMockRideRepo(ctrl),
		cache: mocks.NewMockRideCache(ctrl),
		gw:    mocks.NewMockRideGW(ctrl),
	}
	f.uc = newRideUC(&models.Config{}, f.repo, f.cache, f.gw)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func driver() models.Identity {
	return models.Identity{UserID: uuid.NewString(), Role: models.RoleDriver, Name: "Dewi", Email: "dewi@example.com"}
}

func passenger() models.Identity {
	return models.Identity{UserID: uuid.NewString(), Role: models.RolePassenger, Name: "Ayu", Email: "ayu@example.com"}
}

func jakarta() models.Location {
	return models.Location{Address: "Jl. Sudirman 1", City: "Jakarta", Coordinates: []float64{106.8229, -6.2088}}
}

func bandung() models.Location {
	return models.Location{Address: "Jl. Asia Afrika 8", City: "Bandung", Coordinates: []float64{107.6098, -6.9175}}
}

func newRide(driverID string, seats int, passengers ...models.Passenger) *models.Ride {
	if passengers == nil {
		passengers = []models.Passenger{}
	}
	return &models.Ride{
		ID:             uuid.NewString(),
		DriverID:       driverID,
		Source:         jakarta(),
		Destination:    bandung(),
		DepartureTime:  fixedNow.Add(26 * time.Hour),
		Price:          75000,
		AvailableSeats: seats,
		Status:         models.RideStatusAvailable,
		Passengers:     passengers,
		CreatedAt:      fixedNow.Add(-time.Hour),
		UpdatedAt:      fixedNow.Add(-time.Hour),
	}
}

func newRequest(rideID string, seats int) models.BookingRequest {
	p := passenger()
	return models.BookingRequest{
		ID:             uuid.NewString(),
		RideID:         rideID,
		PassengerID:    p.UserID,
		PassengerName:  p.Name,
		PassengerEmail: p.Email,
		Seats:          seats,
		Status:         models.BookingStatusPending,
		RequestedAt:    fixedNow.Add(-time.Hour),
	}
}
