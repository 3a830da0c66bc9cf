package models

import "time"

// NotificationType identifies the notification variant
type NotificationType string

const (
	NotificationBookingAccepted NotificationType = "BOOKING_ACCEPTED"
	NotificationBookingRejected NotificationType = "BOOKING_REJECTED"
	NotificationRideFullyBooked NotificationType = "RIDE_FULLY_BOOKED"
	NotificationRideOTP         NotificationType = "RIDE_OTP"
	NotificationRideConfirmed   NotificationType = "RIDE_CONFIRMED"
)

// Notification is published on notifications.booking for the notification worker
type Notification struct {
	Type          NotificationType `json:"type"`
	UserID        string           `json:"userId"`
	RideID        string           `json:"rideId"`
	Email         string           `json:"email"`
	Source        string           `json:"source,omitempty"`
	Destination   string           `json:"destination,omitempty"`
	DepartureTime *time.Time       `json:"departureTime,omitempty"`
	Seats         int              `json:"seats,omitempty"`
	Message       string           `json:"message"`
}
