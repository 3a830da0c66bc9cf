package repository_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/stretchr/testify/require"
)

var (
	rideCols = []string{
		"id", "driver_id",
		"source_address", "source_city", "source_lon", "source_lat",
		"destination_address", "destination_city", "destination_lon", "destination_lat",
		"departure_time", "price", "available_seats", "status", "created_at", "updated_at",
	}
	passengerCols = []string{"ride_id", "user_id", "seats", "name", "email", "booking_time", "confirmed", "confirmed_at"}
	bookingCols   = []string{"id", "ride_id", "passenger_id", "passenger_name", "passenger_email", "seats", "status", "requested_at", "responded_at"}
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func sampleRide(driverID string, seats int) models.Ride {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Ride{
		ID:       uuid.NewString(),
		DriverID: driverID,
		Source: models.Location{
			Address:     "Jl. Sudirman 1",
			City:        "Jakarta",
			Coordinates: []float64{106.8229, -6.2088},
		},
		Destination: models.Location{
			Address:     "Jl. Asia Afrika 8",
			City:        "Bandung",
			Coordinates: []float64{107.6098, -6.9175},
		},
		DepartureTime:  now.Add(48 * time.Hour),
		Price:          75000,
		AvailableSeats: seats,
		Status:         models.RideStatusAvailable,
		Passengers:     []models.Passenger{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func addRideRow(rows *sqlmock.Rows, r models.Ride) *sqlmock.Rows {
	return rows.AddRow(
		r.ID, r.DriverID,
		r.Source.Address, r.Source.City, r.Source.Coordinates[0], r.Source.Coordinates[1],
		r.Destination.Address, r.Destination.City, r.Destination.Coordinates[0], r.Destination.Coordinates[1],
		r.DepartureTime, r.Price, r.AvailableSeats, string(r.Status), r.CreatedAt, r.UpdatedAt,
	)
}

func rideRows(rides ...models.Ride) *sqlmock.Rows {
	rows := sqlmock.NewRows(rideCols)
	for _, r := range rides {
		addRideRow(rows, r)
	}
	return rows
}

func passengerRows(rideID string, passengers ...models.Passenger) *sqlmock.Rows {
	rows := sqlmock.NewRows(passengerCols)
	for _, p := range passengers {
		var confirmedAt interface{}
		if p.ConfirmedAt != nil {
			confirmedAt = *p.ConfirmedAt
		}
		rows.AddRow(rideID, p.UserID, p.Seats, p.Name, p.Email, p.BookingTime, p.Confirmed, confirmedAt)
	}
	return rows
}

func bookingRows(reqs ...models.BookingRequest) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingCols)
	for _, r := range reqs {
		var respondedAt interface{}
		if r.RespondedAt != nil {
			respondedAt = *r.RespondedAt
		}
		rows.AddRow(r.ID, r.RideID, r.PassengerID, r.PassengerName, r.PassengerEmail, r.Seats, string(r.Status), r.RequestedAt, respondedAt)
	}
	return rows
}

func pendingRequest(rideID, passengerID string, seats int) models.BookingRequest {
	return models.BookingRequest{
		ID:             uuid.NewString(),
		RideID:         rideID,
		PassengerID:    passengerID,
		PassengerName:  "Passenger " + passengerID,
		PassengerEmail: passengerID + "@example.com",
		Seats:          seats,
		Status:         models.BookingStatusPending,
		RequestedAt:    time.Now().UTC().Add(-time.Hour),
	}
}
