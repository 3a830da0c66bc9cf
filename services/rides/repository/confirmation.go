package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

// ConfirmPassenger records the trip for an accepted passenger and marks them
// confirmed, atomically
func (r *RideRepo) ConfirmPassenger(ctx context.Context, rideID, passengerID string, at time.Time) (*models.ConfirmedRide, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ride, err := r.getRide(ctx, tx, rideID, true)
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Ride not found")
		}
		return nil, err
	}

	passenger := ride.FindPassenger(passengerID)
	if passenger == nil {
		return nil, apperror.NotFound("Passenger not found on this ride")
	}
	if passenger.Confirmed {
		return nil, apperror.Conflict("Passenger already confirmed")
	}

	srcLon, srcLat := lonLat(ride.Source)
	dstLon, dstLat := lonLat(ride.Destination)

	trip := &models.ConfirmedRide{
		ID:               uuid.NewString(),
		RideID:           ride.ID,
		PassengerID:      passenger.UserID,
		DriverID:         ride.DriverID,
		Source:           ride.Source,
		Destination:      ride.Destination,
		Seats:            passenger.Seats,
		BookingTime:      passenger.BookingTime,
		ConfirmationTime: at,
		Fare:             ride.Price * float64(passenger.Seats),
		Status:           models.TripStatusStarted,
		PaymentStatus:    models.PaymentStatusPending,
	}

	insert := `
		INSERT INTO confirmed_rides (
			id, ride_id, passenger_id, driver_id,
			source_address, source_city, source_lon, source_lat,
			destination_address, destination_city, destination_lon, destination_lat,
			seats, booking_time, confirmation_time, fare, status, payment_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	if _, err := tx.ExecContext(ctx, insert,
		trip.ID,
		trip.RideID,
		trip.PassengerID,
		trip.DriverID,
		trip.Source.Address,
		trip.Source.City,
		srcLon,
		srcLat,
		trip.Destination.Address,
		trip.Destination.City,
		dstLon,
		dstLat,
		trip.Seats,
		trip.BookingTime,
		trip.ConfirmationTime,
		trip.Fare,
		trip.Status,
		trip.PaymentStatus,
	); err != nil {
		return nil, fmt.Errorf("failed to create confirmed ride: %w", err)
	}

	update := `
		UPDATE ride_passengers
		SET confirmed = TRUE, confirmed_at = $3
		WHERE ride_id = $1 AND user_id = $2
	`
	if _, err := tx.ExecContext(ctx, update, ride.ID, passengerID, at); err != nil {
		return nil, fmt.Errorf("failed to confirm passenger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return trip, nil
}
