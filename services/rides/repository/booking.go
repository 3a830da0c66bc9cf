package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/rides"
)

const bookingColumns = `id, ride_id, passenger_id, passenger_name, passenger_email, seats, status, requested_at, responded_at`

const uniqueViolation = "23505"

// isUniqueViolation reports a unique index violation from either postgres driver
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// GetPendingBookingRequest returns the pending request of passengerID on
// rideID, or nil when there is none
func (r *RideRepo) GetPendingBookingRequest(ctx context.Context, rideID, passengerID string) (*models.BookingRequest, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM booking_requests
		WHERE ride_id = $1 AND passenger_id = $2 AND status = 'pending'
	`
	var req models.BookingRequest
	if err := r.db.GetContext(ctx, &req, query, rideID, passengerID); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending booking request: %w", err)
	}
	return &req, nil
}

// CreateBookingRequest inserts a pending request. A concurrent duplicate
// caught by the partial unique index yields rides.ErrDuplicateBookingRequest.
func (r *RideRepo) CreateBookingRequest(ctx context.Context, req *models.BookingRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = models.BookingStatusPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now()
	}

	query := `
		INSERT INTO booking_requests (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.RideID,
		req.PassengerID,
		req.PassengerName,
		req.PassengerEmail,
		req.Seats,
		req.Status,
		req.RequestedAt,
		req.RespondedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return rides.ErrDuplicateBookingRequest
		}
		return fmt.Errorf("failed to create booking request: %w", err)
	}
	return nil
}

// ListPendingRequestsByDriver returns pending requests on rides owned by driverID, newest first
func (r *RideRepo) ListPendingRequestsByDriver(ctx context.Context, driverID string) ([]models.BookingRequest, error) {
	query := `
		SELECT b.id, b.ride_id, b.passenger_id, b.passenger_name, b.passenger_email,
			b.seats, b.status, b.requested_at, b.responded_at
		FROM booking_requests b
		JOIN rides r ON r.id = b.ride_id
		WHERE r.driver_id = $1 AND b.status = 'pending'
		ORDER BY b.requested_at DESC
	`
	requests := []models.BookingRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	return requests, nil
}

// ListPassengerRequests returns every request passengerID made on rideID, newest first
func (r *RideRepo) ListPassengerRequests(ctx context.Context, rideID, passengerID string) ([]models.BookingRequest, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM booking_requests
		WHERE ride_id = $1 AND passenger_id = $2
		ORDER BY requested_at DESC
	`
	requests := []models.BookingRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, rideID, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	return requests, nil
}

// DecideBookingRequest applies a driver decision in one transaction. The ride
// row is locked before the request rows so concurrent decisions on the same
// ride serialize and each sees the passengers committed before it.
func (r *RideRepo) DecideBookingRequest(ctx context.Context, requestID, driverID string, decision models.BookingStatus, at time.Time) (*models.DecisionResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var rideID string
	if err := tx.GetContext(ctx, &rideID, `SELECT ride_id FROM booking_requests WHERE id = $1`, requestID); err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Booking request not found")
		}
		return nil, fmt.Errorf("failed to get booking request: %w", err)
	}

	ride, err := r.getRide(ctx, tx, rideID, true)
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Ride not found")
		}
		return nil, err
	}

	var req models.BookingRequest
	query := `SELECT ` + bookingColumns + ` FROM booking_requests WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &req, query, requestID); err != nil {
		return nil, fmt.Errorf("failed to lock booking request: %w", err)
	}

	if !ride.IsOwnedBy(driverID) {
		return nil, apperror.Authorization("You are not authorized to respond to this request")
	}
	if req.Status != models.BookingStatusPending {
		return nil, apperror.Conflict("Booking request has already been processed")
	}
	if ride.Status == models.RideStatusBooked {
		return nil, apperror.Conflict("Ride is already fully booked")
	}

	result := &models.DecisionResult{}

	if decision == models.BookingStatusAccepted {
		if ride.Status != models.RideStatusAvailable {
			return nil, apperror.Conflict("Ride is not available for booking")
		}
		if ride.FindPassenger(req.PassengerID) != nil {
			return nil, apperror.Conflict("Passenger has already booked this ride")
		}
		if remaining := ride.RemainingSeats(); req.Seats > remaining {
			return nil, apperror.Conflictf("Only %d seats available", remaining)
		}

		passenger := models.Passenger{
			UserID:      req.PassengerID,
			Seats:       req.Seats,
			Name:        req.PassengerName,
			Email:       req.PassengerEmail,
			BookingTime: at,
		}
		if err := insertPassenger(ctx, tx, ride.ID, passenger); err != nil {
			return nil, err
		}
		ride.Passengers = append(ride.Passengers, passenger)
	}

	if err := setRequestStatus(ctx, tx, req.ID, decision, at); err != nil {
		return nil, err
	}
	req.Status = decision
	req.RespondedAt = &at

	if decision == models.BookingStatusAccepted && ride.RemainingSeats() == 0 {
		cascaded, err := markRideBooked(ctx, tx, ride.ID, at)
		if err != nil {
			return nil, err
		}
		ride.Status = models.RideStatusBooked
		ride.UpdatedAt = at
		result.Cascaded = cascaded
		result.StatusChanged = true
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Request = req
	result.Ride = *ride
	return result, nil
}

func insertPassenger(ctx context.Context, tx *sqlx.Tx, rideID string, p models.Passenger) error {
	query := `
		INSERT INTO ride_passengers (ride_id, user_id, seats, name, email, booking_time, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
	`
	if _, err := tx.ExecContext(ctx, query, rideID, p.UserID, p.Seats, p.Name, p.Email, p.BookingTime); err != nil {
		return fmt.Errorf("failed to add passenger: %w", err)
	}
	return nil
}

func setRequestStatus(ctx context.Context, tx *sqlx.Tx, requestID string, status models.BookingStatus, at time.Time) error {
	query := `UPDATE booking_requests SET status = $2, responded_at = $3 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, requestID, status, at); err != nil {
		return fmt.Errorf("failed to update booking request: %w", err)
	}
	return nil
}

// markRideBooked closes the ride and rejects every request still pending on it
func markRideBooked(ctx context.Context, tx *sqlx.Tx, rideID string, at time.Time) ([]models.BookingRequest, error) {
	if _, err := tx.ExecContext(ctx,
		`UPDATE rides SET status = $2, updated_at = $3 WHERE id = $1`,
		rideID, models.RideStatusBooked, at,
	); err != nil {
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}

	var pending []models.BookingRequest
	query := `
		SELECT ` + bookingColumns + `
		FROM booking_requests
		WHERE ride_id = $1 AND status = 'pending'
		FOR UPDATE
	`
	if err := tx.SelectContext(ctx, &pending, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to lock pending booking requests: %w", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.ID)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE booking_requests SET status = $1, responded_at = $2 WHERE id = ANY($3)`,
		models.BookingStatusRejected, at, pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("failed to reject pending booking requests: %w", err)
	}

	for i := range pending {
		pending[i].Status = models.BookingStatusRejected
		pending[i].RespondedAt = &at
	}
	return pending, nil
}
