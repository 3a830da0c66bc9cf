package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/internal/utils"
)

// notify publishes n and only logs a failure; a committed change is never
// undone because a passenger could not be told about it
func (uc *rideUC) notify(ctx context.Context, n models.Notification) {
	if err := uc.ridesGW.PublishNotification(ctx, n); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish notification",
			logger.String("type", string(n.Type)),
			logger.String("ride_id", n.RideID),
			logger.String("user_id", n.UserID),
			logger.String("email", utils.MaskEmail(n.Email)),
			logger.Err(err))
	}
}

func rideNotification(t models.NotificationType, ride *models.Ride, userID, email string, seats int, message string) models.Notification {
	departure := ride.DepartureTime
	return models.Notification{
		Type:          t,
		UserID:        userID,
		RideID:        ride.ID,
		Email:         email,
		Source:        ride.Source.String(),
		Destination:   ride.Destination.String(),
		DepartureTime: &departure,
		Seats:         seats,
		Message:       message,
	}
}

func bookingAccepted(ride *models.Ride, req models.BookingRequest) models.Notification {
	msg := fmt.Sprintf("Your booking for %d seat(s) from %s to %s departing %s has been accepted",
		req.Seats, ride.Source, ride.Destination, ride.DepartureTime.Format(time.RFC1123))
	return rideNotification(models.NotificationBookingAccepted, ride, req.PassengerID, req.PassengerEmail, req.Seats, msg)
}

func bookingRejected(ride *models.Ride, req models.BookingRequest) models.Notification {
	msg := fmt.Sprintf("Your booking request for the ride from %s to %s has been rejected",
		ride.Source, ride.Destination)
	return rideNotification(models.NotificationBookingRejected, ride, req.PassengerID, req.PassengerEmail, req.Seats, msg)
}

func rideFullyBooked(ride *models.Ride, req models.BookingRequest) models.Notification {
	msg := fmt.Sprintf("The ride from %s to %s is now fully booked and your request could not be accepted",
		ride.Source, ride.Destination)
	return rideNotification(models.NotificationRideFullyBooked, ride, req.PassengerID, req.PassengerEmail, req.Seats, msg)
}

func rideOTP(ride *models.Ride, p *models.Passenger, code string, ttl time.Duration) models.Notification {
	msg := fmt.Sprintf("Your ride confirmation code is %s. It expires in %d minutes.", code, int(ttl.Minutes()))
	return rideNotification(models.NotificationRideOTP, ride, p.UserID, p.Email, p.Seats, msg)
}

func rideConfirmed(ride *models.Ride, p *models.Passenger, trip *models.ConfirmedRide) models.Notification {
	msg := fmt.Sprintf("Your ride from %s to %s is confirmed. Fare: %.2f",
		ride.Source, ride.Destination, trip.Fare)
	return rideNotification(models.NotificationRideConfirmed, ride, p.UserID, p.Email, trip.Seats, msg)
}
