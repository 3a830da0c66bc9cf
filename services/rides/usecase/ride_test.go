package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest(seats int) models.CreateRideRequest {
	return models.CreateRideRequest{
		Source:         jakarta(),
		Destination:    bandung(),
		DepartureTime:  fixedNow.Add(48 * time.Hour),
		Price:          75000,
		AvailableSeats: seats,
	}
}

func TestCreateRide_Success(t *testing.T) {
	// Arrange
	f := setupUC(t)
	identity := driver()
	req := createRequest(4)

	f.repo.EXPECT().
		CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Equal(t, identity.UserID, ride.DriverID)
			assert.Equal(t, models.RideStatusAvailable, ride.Status)
			assert.Equal(t, 4, ride.AvailableSeats)
			ride.ID = "ride-1"
			return nil
		})
	f.cache.EXPECT().InvalidateSearch(gomock.Any(), req.DepartureTime)

	// Act
	ride, err := f.uc.CreateRide(context.Background(), identity, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ride-1", ride.ID)
	assert.Empty(t, ride.Passengers)
	assert.NotNil(t, ride.Passengers)
}

func TestCreateRide_Validation(t *testing.T) {
	tests := []struct {
		name     string
		identity func() models.Identity
		mutate   func(*models.CreateRideRequest)
		kind     apperror.Kind
		message  string
	}{
		{
			name:     "passenger cannot publish",
			identity: passenger,
			kind:     apperror.KindAuthorization,
			message:  "Only drivers can create rides",
		},
		{
			name:     "nine seats",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.AvailableSeats = 9 },
			kind:     apperror.KindValidation,
			message:  "Available seats must be between 1 and 8",
		},
		{
			name:     "zero seats",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.AvailableSeats = 0 },
			kind:     apperror.KindValidation,
			message:  "Available seats must be between 1 and 8",
		},
		{
			name:     "departure in the past",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.DepartureTime = fixedNow.Add(-time.Minute) },
			kind:     apperror.KindValidation,
			message:  "Departure time must be in the future",
		},
		{
			name:     "departure now",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.DepartureTime = fixedNow },
			kind:     apperror.KindValidation,
			message:  "Departure time must be in the future",
		},
		{
			name:     "negative price",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.Price = -1 },
			kind:     apperror.KindValidation,
			message:  "Price cannot be negative",
		},
		{
			name:     "missing source city",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.Source.City = " " },
			kind:     apperror.KindValidation,
			message:  "Source address and city are required",
		},
		{
			name:     "single coordinate",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.Destination.Coordinates = []float64{107.6} },
			kind:     apperror.KindValidation,
			message:  "Destination coordinates must be [longitude, latitude]",
		},
		{
			name:     "latitude out of range",
			identity: driver,
			mutate:   func(r *models.CreateRideRequest) { r.Source.Coordinates = []float64{106.8, -95} },
			kind:     apperror.KindValidation,
			message:  "Source coordinates are out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUC(t)
			req := createRequest(3)
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			ride, err := f.uc.CreateRide(context.Background(), tt.identity(), req)

			assert.Nil(t, ride)
			assert.True(t, apperror.Is(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.message, apperror.Message(err))
		})
	}
}

func TestCreateRide_FreeRideAllowed(t *testing.T) {
	f := setupUC(t)
	req := createRequest(1)
	req.Price = 0

	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.cache.EXPECT().InvalidateSearch(gomock.Any(), gomock.Any())

	_, err := f.uc.CreateRide(context.Background(), driver(), req)
	assert.NoError(t, err)
}

func TestCreateRide_RepositoryError(t *testing.T) {
	f := setupUC(t)

	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := f.uc.CreateRide(context.Background(), driver(), createRequest(2))
	assert.True(t, apperror.Is(err, apperror.KindInfrastructure))
	assert.Equal(t, "Failed to create ride", apperror.Message(err))
}

func TestGetRide(t *testing.T) {
	t.Run("malformed id is not found", func(t *testing.T) {
		f := setupUC(t)

		_, err := f.uc.GetRide(context.Background(), "not-a-uuid")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("missing row", func(t *testing.T) {
		f := setupUC(t)
		ride := newRide("d", 2)
		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(nil, fmt.Errorf("failed to get ride: %w", sql.ErrNoRows))

		_, err := f.uc.GetRide(context.Background(), ride.ID)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "Ride not found", apperror.Message(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := setupUC(t)
		ride := newRide("d", 2)
		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(nil, errors.New("timeout"))

		_, err := f.uc.GetRide(context.Background(), ride.ID)
		assert.True(t, apperror.Is(err, apperror.KindInfrastructure))
	})

	t.Run("found", func(t *testing.T) {
		f := setupUC(t)
		ride := newRide("d", 2)
		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		got, err := f.uc.GetRide(context.Background(), ride.ID)
		require.NoError(t, err)
		assert.Equal(t, ride, got)
	})
}

// saveAsGiven stands in for a store that writes the ride unchanged
func saveAsGiven(_ context.Context, r *models.Ride, _ time.Time) (*models.RideUpdateResult, error) {
	return &models.RideUpdateResult{Ride: *r}, nil
}

func TestUpdateRide_MovesDepartureToAnotherDay(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3)
	previous := ride.DepartureTime
	next := previous.Add(72 * time.Hour)
	price := 80000.0

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().
		UpdateRide(gomock.Any(), gomock.Any(), fixedNow).
		DoAndReturn(func(ctx context.Context, r *models.Ride, at time.Time) (*models.RideUpdateResult, error) {
			assert.Equal(t, next, r.DepartureTime)
			assert.Equal(t, price, r.Price)
			assert.Equal(t, 3, r.AvailableSeats)
			return saveAsGiven(ctx, r, at)
		})
	gomock.InOrder(
		f.cache.EXPECT().InvalidateSearch(gomock.Any(), previous),
		f.cache.EXPECT().InvalidateSearch(gomock.Any(), next),
	)

	updated, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{
		DepartureTime: &next,
		Price:         &price,
	})
	require.NoError(t, err)
	assert.Equal(t, next, updated.DepartureTime)
	assert.Equal(t, previous, ride.DepartureTime)
}

func TestUpdateRide_SameDayInvalidatesOnce(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3)
	seats := 5

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), fixedNow).DoAndReturn(saveAsGiven)
	f.cache.EXPECT().InvalidateSearch(gomock.Any(), ride.DepartureTime).Times(1)

	updated, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{AvailableSeats: &seats})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.AvailableSeats)
}

func TestUpdateRide_Rejections(t *testing.T) {
	owner := driver()
	seats := func(n int) *int { return &n }
	status := func(s models.RideStatus) *models.RideStatus { return &s }
	past := fixedNow.Add(-time.Hour)

	tests := []struct {
		name     string
		identity models.Identity
		ride     func() *models.Ride
		req      models.UpdateRideRequest
		kind     apperror.Kind
		message  string
	}{
		{
			name:     "not the owner",
			identity: driver(),
			ride:     func() *models.Ride { return newRide(owner.UserID, 3) },
			kind:     apperror.KindAuthorization,
			message:  "You can only update your own rides",
		},
		{
			name:     "ride booked",
			identity: owner,
			ride: func() *models.Ride {
				r := newRide(owner.UserID, 3)
				r.Status = models.RideStatusBooked
				return r
			},
			kind:    apperror.KindConflict,
			message: "Cannot update ride - already booked or completed",
		},
		{
			name:     "seats below booked",
			identity: owner,
			ride: func() *models.Ride {
				return newRide(owner.UserID, 4, models.Passenger{UserID: "p1", Seats: 3})
			},
			req:     models.UpdateRideRequest{AvailableSeats: seats(2)},
			kind:    apperror.KindConflict,
			message: "Cannot reduce seats below the 3 already booked",
		},
		{
			name:     "too many seats",
			identity: owner,
			ride:     func() *models.Ride { return newRide(owner.UserID, 4) },
			req:      models.UpdateRideRequest{AvailableSeats: seats(9)},
			kind:     apperror.KindValidation,
			message:  "Available seats must be between 1 and 8",
		},
		{
			name:     "departure moved to the past",
			identity: owner,
			ride:     func() *models.Ride { return newRide(owner.UserID, 4) },
			req:      models.UpdateRideRequest{DepartureTime: &past},
			kind:     apperror.KindValidation,
			message:  "Departure time must be in the future",
		},
		{
			name:     "status set to booked",
			identity: owner,
			ride:     func() *models.Ride { return newRide(owner.UserID, 4) },
			req:      models.UpdateRideRequest{Status: status(models.RideStatusBooked)},
			kind:     apperror.KindValidation,
			message:  "Status can only be changed to cancelled or completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUC(t)
			ride := tt.ride()
			f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

			_, err := f.uc.UpdateRide(context.Background(), tt.identity, ride.ID, tt.req)
			assert.True(t, apperror.Is(err, tt.kind), "got %v", err)
			assert.Equal(t, tt.message, apperror.Message(err))
		})
	}
}

func TestUpdateRide_CancelRide(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3)
	cancelled := models.RideStatusCancelled

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), fixedNow).DoAndReturn(saveAsGiven)
	f.cache.EXPECT().InvalidateSearch(gomock.Any(), ride.DepartureTime)

	updated, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, updated.Status)
}

func TestUpdateRide_LostRaceIsConflict(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3)
	price := 1.0

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), fixedNow).
		Return(nil, apperror.Conflict("Cannot update ride - already booked or completed"))

	_, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{Price: &price})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestUpdateRide_StoreRejectsSeatsBelowLaterBookings(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3)
	seats := 2

	// the ride looked empty here, but an accept committed before the store locked it
	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), fixedNow).
		Return(nil, apperror.Conflictf("Cannot reduce seats below the %d already booked", 3))

	_, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{AvailableSeats: &seats})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Equal(t, "Cannot reduce seats below the 3 already booked", apperror.Message(err))
}

func TestUpdateRide_CapacityCutBooksRideAndNotifiesWaiting(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	ride := newRide(identity.UserID, 3, models.Passenger{UserID: "p1", Seats: 2, Email: "p1@example.com"})
	waiting := newRequest(ride.ID, 1)
	waiting.PassengerID = "p2"
	seats := 2
	sent := captureNotifications(f, nil)

	f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.repo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, r *models.Ride, at time.Time) (*models.RideUpdateResult, error) {
			booked := *r
			booked.Status = models.RideStatusBooked
			rejected := waiting
			rejected.Status = models.BookingStatusRejected
			rejected.RespondedAt = &at
			return &models.RideUpdateResult{Ride: booked, Cascaded: []models.BookingRequest{rejected}, StatusChanged: true}, nil
		})
	f.cache.EXPECT().InvalidateSearch(gomock.Any(), ride.DepartureTime).Times(1)

	updated, err := f.uc.UpdateRide(context.Background(), identity, ride.ID, models.UpdateRideRequest{AvailableSeats: &seats})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusBooked, updated.Status)
	assert.Equal(t, 0, updated.RemainingSeats())

	require.Len(t, *sent, 1)
	assert.Equal(t, models.NotificationRideFullyBooked, (*sent)[0].Type)
	assert.Equal(t, "p2", (*sent)[0].UserID)
}

func TestDeleteRide(t *testing.T) {
	t.Run("deleted and invalidated", func(t *testing.T) {
		f := setupUC(t)
		identity := driver()
		ride := newRide(identity.UserID, 3)

		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.repo.EXPECT().DeleteRide(gomock.Any(), ride.ID).Return(nil)
		f.cache.EXPECT().InvalidateSearch(gomock.Any(), ride.DepartureTime)

		assert.NoError(t, f.uc.DeleteRide(context.Background(), identity, ride.ID))
	})

	t.Run("has bookings", func(t *testing.T) {
		f := setupUC(t)
		identity := driver()
		ride := newRide(identity.UserID, 3, models.Passenger{UserID: "p1", Seats: 1})

		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		err := f.uc.DeleteRide(context.Background(), identity, ride.ID)
		assert.True(t, apperror.Is(err, apperror.KindConflict))
		assert.Equal(t, "Cannot delete ride with existing bookings", apperror.Message(err))
	})

	t.Run("not the owner", func(t *testing.T) {
		f := setupUC(t)
		ride := newRide("someone-else", 3)

		f.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		err := f.uc.DeleteRide(context.Background(), driver(), ride.ID)
		assert.True(t, apperror.Is(err, apperror.KindAuthorization))
	})
}

func TestListDriverRides(t *testing.T) {
	f := setupUC(t)
	identity := driver()
	list := []models.Ride{*newRide(identity.UserID, 2), *newRide(identity.UserID, 3)}

	f.repo.EXPECT().ListRidesByDriver(gomock.Any(), identity.UserID).Return(list, nil)

	got, err := f.uc.ListDriverRides(context.Background(), identity)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func listing(remaining int) models.RideListing {
	r := newRide("d", 4)
	return models.RideListing{
		ID:             r.ID,
		DriverID:       r.DriverID,
		Source:         r.Source,
		Destination:    r.Destination,
		DepartureTime:  r.DepartureTime,
		Price:          r.Price,
		AvailableSeats: 4,
		RemainingSeats: remaining,
		Status:         models.RideStatusAvailable,
	}
}

func TestSearchRides_Validation(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.SearchCriteria
		message  string
	}{
		{"no criteria", models.SearchCriteria{}, "At least one search criterion is required"},
		{"blank criteria", models.SearchCriteria{From: "  ", To: "\t"}, "At least one search criterion is required"},
		{"bad date", models.SearchCriteria{Date: "17/05/2030"}, "Invalid date format, expected YYYY-MM-DD"},
		{"zero seats", models.SearchCriteria{From: "Jakarta", Seats: "0"}, "Seats must be a positive integer"},
		{"word seats", models.SearchCriteria{From: "Jakarta", Seats: "two"}, "Seats must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupUC(t)

			_, err := f.uc.SearchRides(context.Background(), tt.criteria)
			assert.True(t, apperror.Is(err, apperror.KindValidation), "got %v", err)
			assert.Equal(t, tt.message, apperror.Message(err))
		})
	}
}

func TestSearchRides_CacheHitReturnsStoredBytes(t *testing.T) {
	f := setupUC(t)
	stored := []byte(`[{"id":"r1", "remainingSeats": 2}]`)

	f.cache.EXPECT().GetSearch(gomock.Any(), "rideJakartatoBandungdate2030-05-17").Return(stored, true)

	got, err := f.uc.SearchRides(context.Background(), models.SearchCriteria{From: "Jakarta", To: "Bandung", Date: "2030-05-17"})
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(stored), got)
}

func TestSearchRides_MissQueriesAndStores(t *testing.T) {
	f := setupUC(t)
	day := time.Date(2030, 5, 17, 0, 0, 0, 0, time.UTC)
	listings := []models.RideListing{listing(2), listing(1)}
	want, err := json.Marshal(listings)
	require.NoError(t, err)

	key := "rideJakartatodate2030-05-17"
	f.cache.EXPECT().GetSearch(gomock.Any(), key).Return(nil, false)
	f.repo.EXPECT().
		SearchRides(gomock.Any(), models.RideQuery{From: "Jakarta", Day: &day}).
		Return(listings, nil)
	f.cache.EXPECT().
		SetSearch(gomock.Any(), key, gomock.Any()).
		Do(func(_ context.Context, _ string, payload []byte) {
			assert.JSONEq(t, string(want), string(payload))
		})

	got, err := f.uc.SearchRides(context.Background(), models.SearchCriteria{From: " Jakarta ", Date: "2030-05-17"})
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestSearchRides_SeatsFilterAppliesToCachedResults(t *testing.T) {
	f := setupUC(t)
	wide, narrow := listing(3), listing(1)
	stored, err := json.Marshal([]models.RideListing{wide, narrow})
	require.NoError(t, err)

	// the seats criterion is not part of the key
	f.cache.EXPECT().GetSearch(gomock.Any(), "rideJakartatodate").Return(stored, true)

	got, err := f.uc.SearchRides(context.Background(), models.SearchCriteria{From: "Jakarta", Seats: "2"})
	require.NoError(t, err)

	var result []models.RideListing
	require.NoError(t, json.Unmarshal(got, &result))
	require.Len(t, result, 1)
	assert.Equal(t, wide.ID, result[0].ID)
}

func TestSearchRides_NothingMatches(t *testing.T) {
	t.Run("empty result is not cached", func(t *testing.T) {
		f := setupUC(t)
		f.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, false)
		f.repo.EXPECT().SearchRides(gomock.Any(), gomock.Any()).Return([]models.RideListing{}, nil)

		_, err := f.uc.SearchRides(context.Background(), models.SearchCriteria{To: "Surabaya"})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
		assert.Equal(t, "No rides found matching your criteria", apperror.Message(err))
	})

	t.Run("seats filter removes everything", func(t *testing.T) {
		f := setupUC(t)
		stored, err := json.Marshal([]models.RideListing{listing(1)})
		require.NoError(t, err)
		f.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(stored, true)

		_, err = f.uc.SearchRides(context.Background(), models.SearchCriteria{To: "Bandung", Seats: "4"})
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestSearchRides_StoreFailure(t *testing.T) {
	f := setupUC(t)
	f.cache.EXPECT().GetSearch(gomock.Any(), gomock.Any()).Return(nil, false)
	f.repo.EXPECT().SearchRides(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := f.uc.SearchRides(context.Background(), models.SearchCriteria{From: "Jakarta"})
	assert.True(t, apperror.Is(err, apperror.KindInfrastructure))
}
