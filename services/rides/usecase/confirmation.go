package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

const (
	otpDigits     = 6
	defaultOTPTTL = 5 * time.Minute
)

var otpSpace = big.NewInt(1_000_000)

// generateOTP returns a uniformly random 6 digit code
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func (uc *rideUC) otpTTL() time.Duration {
	if uc.cfg.Rides.OTPTTL > 0 {
		return uc.cfg.Rides.OTPTTL
	}
	return defaultOTPTTL
}

// ownedRideWithPassenger loads a ride the caller drives and one of its passengers
func (uc *rideUC) ownedRideWithPassenger(ctx context.Context, identity models.Identity, rideID, passengerID string) (*models.Ride, *models.Passenger, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, nil, err
	}
	if !ride.IsOwnedBy(identity.UserID) {
		return nil, nil, apperror.Authorization("Only the ride's driver can confirm passengers")
	}
	passenger := ride.FindPassenger(passengerID)
	if passenger == nil {
		return nil, nil, apperror.NotFound("Passenger not found on this ride")
	}
	return ride, passenger, nil
}

// GenerateOTP issues a confirmation code for an accepted passenger. Issuing
// again replaces the previous code.
func (uc *rideUC) GenerateOTP(ctx context.Context, identity models.Identity, rideID, passengerID string) error {
	if strings.TrimSpace(passengerID) == "" {
		return apperror.Validation("Passenger ID is required")
	}

	ride, passenger, err := uc.ownedRideWithPassenger(ctx, identity, rideID, passengerID)
	if err != nil {
		return err
	}
	if passenger.Confirmed {
		return apperror.Conflict("Passenger already confirmed")
	}

	code, err := generateOTP()
	if err != nil {
		return apperror.Infrastructure("Failed to generate confirmation code", err)
	}
	if err := uc.cache.SetOTP(ctx, ride.ID, passenger.UserID, code); err != nil {
		logger.ErrorCtx(ctx, "Failed to store confirmation code",
			logger.String("ride_id", ride.ID),
			logger.String("passenger_id", passenger.UserID),
			logger.Err(err))
		return apperror.Infrastructure("Failed to store confirmation code", err)
	}
	metrics.OTPIssuedTotal.Inc()

	uc.notify(ctx, rideOTP(ride, passenger, code, uc.otpTTL()))

	logger.InfoCtx(ctx, "Confirmation code issued",
		logger.String("ride_id", ride.ID),
		logger.String("passenger_id", passenger.UserID))
	return nil
}

// ConfirmRide redeems a passenger's code into a trip record. The code is
// checked before the confirmed flag so a reused code reports an invalid code.
func (uc *rideUC) ConfirmRide(ctx context.Context, identity models.Identity, rideID, passengerID, code string) (*models.ConfirmedRide, error) {
	if strings.TrimSpace(passengerID) == "" || strings.TrimSpace(code) == "" {
		return nil, apperror.Validation("Passenger ID and OTP are required")
	}

	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.IsOwnedBy(identity.UserID) {
		return nil, apperror.Authorization("Only the ride's driver can confirm passengers")
	}

	passenger := ride.FindPassenger(passengerID)
	if passenger == nil {
		return nil, apperror.NotFound("Passenger not found on this ride")
	}
	// a confirmed passenger's code is spent even if deleting it failed
	if passenger.Confirmed {
		metrics.OTPRedemptionsTotal.WithLabelValues("invalid").Inc()
		return nil, apperror.InvalidCode("Invalid or expired OTP")
	}

	stored, err := uc.cache.GetOTP(ctx, ride.ID, passengerID)
	if err != nil {
		metrics.OTPRedemptionsTotal.WithLabelValues("error").Inc()
		return nil, apperror.Infrastructure("Failed to verify confirmation code", err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		metrics.OTPRedemptionsTotal.WithLabelValues("invalid").Inc()
		return nil, apperror.InvalidCode("Invalid or expired OTP")
	}

	trip, err := uc.ridesRepo.ConfirmPassenger(ctx, ride.ID, passengerID, uc.now())
	if err != nil {
		err = classify(err, "Ride not found", "Failed to confirm ride")
		if apperror.Is(err, apperror.KindConflict) {
			metrics.OTPRedemptionsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.OTPRedemptionsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if err := uc.cache.DeleteOTP(ctx, ride.ID, passengerID); err != nil {
		// the confirmed flag already refuses the leftover code
		logger.WarnCtx(ctx, "Failed to delete confirmation code",
			logger.String("ride_id", ride.ID),
			logger.String("passenger_id", passengerID),
			logger.Err(err))
	}
	metrics.OTPRedemptionsTotal.WithLabelValues("confirmed").Inc()

	uc.notify(ctx, rideConfirmed(ride, passenger, trip))

	logger.InfoCtx(ctx, "Ride confirmed",
		logger.String("confirmed_ride_id", trip.ID),
		logger.String("ride_id", ride.ID),
		logger.String("passenger_id", passengerID),
		logger.Float64("fare", trip.Fare))
	return trip, nil
}
