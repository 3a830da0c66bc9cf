package models

import "time"

// TripStatus represents the state of a confirmed ride
type TripStatus string

const (
	TripStatusStarted   TripStatus = "started"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// PaymentStatus is recorded on the trip but not driven by this service
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ConfirmedRide is the immutable trip record created when a passenger's
// one-time code is redeemed
type ConfirmedRide struct {
	ID               string        `json:"id"`
	RideID           string        `json:"rideId"`
	PassengerID      string        `json:"passengerId"`
	DriverID         string        `json:"driverId"`
	Source           Location      `json:"source"`
	Destination      Location      `json:"destination"`
	Seats            int           `json:"seats"`
	BookingTime      time.Time     `json:"bookingTime"`
	ConfirmationTime time.Time     `json:"confirmationTime"`
	Fare             float64       `json:"fare"`
	Status           TripStatus    `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
}

// GenerateOTPRequest is the payload of POST /:rideId/generate-otp
type GenerateOTPRequest struct {
	PassengerID string `json:"passengerId"`
}

// ConfirmOTPRequest is the payload of POST /confirmotp/:rideId
type ConfirmOTPRequest struct {
	PassengerID string `json:"passengerId"`
	OTP         string `json:"otp"`
}
