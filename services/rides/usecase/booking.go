package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/services/rides"
)

// BookRide validates a seat request against the ride as it is now and
// enqueues it for admission. Capacity is enforced again when the driver decides.
func (uc *rideUC) BookRide(ctx context.Context, identity models.Identity, rideID string, seats int) (*models.BookingIntent, error) {
	if seats < 1 || seats > uc.maxSeats {
		return nil, apperror.Validation("Invalid number of seats requested")
	}

	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusAvailable {
		return nil, apperror.Conflict("Ride is not available for booking")
	}
	if ride.IsOwnedBy(identity.UserID) {
		return nil, apperror.Conflict("Driver cannot book their own ride")
	}
	if ride.FindPassenger(identity.UserID) != nil {
		return nil, apperror.Conflict("You have already booked this ride")
	}
	if remaining := ride.RemainingSeats(); seats > remaining {
		return nil, apperror.Conflictf("Only %d seats available", remaining)
	}

	intent := models.BookingIntent{
		RideID:         ride.ID,
		PassengerID:    identity.UserID,
		PassengerName:  identity.Name,
		PassengerEmail: identity.Email,
		Seats:          seats,
		Status:         models.BookingStatusPending,
		Timestamp:      uc.now(),
	}
	if err := uc.ridesGW.PublishBookingIntent(ctx, intent); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking intent",
			logger.String("ride_id", ride.ID),
			logger.String("passenger_id", identity.UserID),
			logger.Err(err))
		return nil, apperror.Infrastructure("Failed to book ride", err)
	}

	logger.InfoCtx(ctx, "Booking intent published",
		logger.String("ride_id", ride.ID),
		logger.String("passenger_id", identity.UserID),
		logger.Int("seats", seats))
	return &intent, nil
}

// AdmitBookingRequest records a booking intent as a pending request. Redelivered
// or repeated intents for a passenger that already has a pending request are
// dropped without error.
func (uc *rideUC) AdmitBookingRequest(ctx context.Context, intent models.BookingIntent) error {
	if !validID(intent.RideID) || strings.TrimSpace(intent.PassengerID) == "" || intent.Seats < 1 {
		metrics.AdmissionsTotal.WithLabelValues("invalid").Inc()
		return apperror.Validation("Invalid booking intent")
	}

	if _, err := uc.ridesRepo.GetRide(ctx, intent.RideID); err != nil {
		err = classify(err, "Ride not found", "Failed to fetch ride")
		if apperror.Is(err, apperror.KindNotFound) {
			metrics.AdmissionsTotal.WithLabelValues("ride_missing").Inc()
		} else {
			metrics.AdmissionsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	existing, err := uc.ridesRepo.GetPendingBookingRequest(ctx, intent.RideID, intent.PassengerID)
	if err != nil {
		metrics.AdmissionsTotal.WithLabelValues("error").Inc()
		return apperror.Infrastructure("Failed to check booking requests", err)
	}
	if existing != nil {
		metrics.AdmissionsTotal.WithLabelValues("duplicate").Inc()
		logger.InfoCtx(ctx, "Booking request already pending",
			logger.String("ride_id", intent.RideID),
			logger.String("passenger_id", intent.PassengerID),
			logger.String("request_id", existing.ID))
		return nil
	}

	requestedAt := intent.Timestamp
	if requestedAt.IsZero() {
		requestedAt = uc.now()
	}
	req := &models.BookingRequest{
		RideID:         intent.RideID,
		PassengerID:    intent.PassengerID,
		PassengerName:  intent.PassengerName,
		PassengerEmail: intent.PassengerEmail,
		Seats:          intent.Seats,
		Status:         models.BookingStatusPending,
		RequestedAt:    requestedAt,
	}
	if err := uc.ridesRepo.CreateBookingRequest(ctx, req); err != nil {
		if errors.Is(err, rides.ErrDuplicateBookingRequest) {
			metrics.AdmissionsTotal.WithLabelValues("duplicate").Inc()
			return nil
		}
		metrics.AdmissionsTotal.WithLabelValues("error").Inc()
		return apperror.Infrastructure("Failed to create booking request", err)
	}

	metrics.AdmissionsTotal.WithLabelValues("admitted").Inc()
	logger.InfoCtx(ctx, "Booking request admitted",
		logger.String("request_id", req.ID),
		logger.String("ride_id", req.RideID),
		logger.String("passenger_id", req.PassengerID))
	return nil
}

// RespondToBookingRequest commits a driver decision and then notifies the
// affected passengers
func (uc *rideUC) RespondToBookingRequest(ctx context.Context, identity models.Identity, requestID string, decision models.BookingStatus) (*models.BookingRequest, error) {
	if decision != models.BookingStatusAccepted && decision != models.BookingStatusRejected {
		return nil, apperror.Validation("Status must be either accepted or rejected")
	}
	if !identity.CanDrive() {
		return nil, apperror.Authorization("Only drivers can respond to booking requests")
	}
	if !validID(requestID) {
		return nil, apperror.NotFound("Booking request not found")
	}

	result, err := nrpkg.WithSegmentAndReturn(ctx, "Postgres.DecideBookingRequest", func() (*models.DecisionResult, error) {
		return uc.ridesRepo.DecideBookingRequest(ctx, requestID, identity.UserID, decision, uc.now())
	})
	if err != nil {
		return nil, classify(err, "Booking request not found", "Failed to respond to booking request")
	}

	metrics.DecisionsTotal.WithLabelValues(string(decision)).Inc()
	metrics.CascadeRejectionsTotal.Add(float64(len(result.Cascaded)))

	logger.InfoCtx(ctx, "Booking request decided",
		logger.String("request_id", result.Request.ID),
		logger.String("ride_id", result.Ride.ID),
		logger.String("decision", string(decision)),
		logger.Int("cascaded", len(result.Cascaded)),
		logger.Bool("ride_booked", result.StatusChanged))

	ride := &result.Ride
	if decision == models.BookingStatusAccepted {
		uc.notify(ctx, bookingAccepted(ride, result.Request))
	} else {
		uc.notify(ctx, bookingRejected(ride, result.Request))
	}
	for _, req := range result.Cascaded {
		uc.notify(ctx, rideFullyBooked(ride, req))
	}

	// accepting changes remaining seats even when the status stays available
	if result.StatusChanged || decision == models.BookingStatusAccepted {
		uc.cache.InvalidateSearch(ctx, ride.DepartureTime)
	}

	return &result.Request, nil
}

// ListDriverBookingRequests returns pending requests on the caller's rides
func (uc *rideUC) ListDriverBookingRequests(ctx context.Context, identity models.Identity) ([]models.BookingRequest, error) {
	if !identity.CanDrive() {
		return nil, apperror.Authorization("Only drivers can view booking requests")
	}
	list, err := uc.ridesRepo.ListPendingRequestsByDriver(ctx, identity.UserID)
	if err != nil {
		return nil, apperror.Infrastructure("Failed to fetch booking requests", err)
	}
	return list, nil
}

// ListPassengerBookingRequests returns the caller's requests on one ride
func (uc *rideUC) ListPassengerBookingRequests(ctx context.Context, identity models.Identity, rideID string) ([]models.BookingRequest, error) {
	if !validID(rideID) {
		return []models.BookingRequest{}, nil
	}
	list, err := uc.ridesRepo.ListPassengerRequests(ctx, rideID, identity.UserID)
	if err != nil {
		return nil, apperror.Infrastructure("Failed to fetch booking status", err)
	}
	return list, nil
}
