package models

import "time"

// BookingStatus represents the state of a booking request
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

// BookingRequest is a passenger's request for seats awaiting a driver decision
type BookingRequest struct {
	ID             string        `json:"id" db:"id"`
	RideID         string        `json:"rideId" db:"ride_id"`
	PassengerID    string        `json:"passengerId" db:"passenger_id"`
	PassengerName  string        `json:"passengerName" db:"passenger_name"`
	PassengerEmail string        `json:"passengerEmail" db:"passenger_email"`
	Seats          int           `json:"seats" db:"seats"`
	Status         BookingStatus `json:"status" db:"status"`
	RequestedAt    time.Time     `json:"requestedAt" db:"requested_at"`
	RespondedAt    *time.Time    `json:"respondedAt,omitempty" db:"responded_at"`
}

// BookingIntent is the message published on booking.requested
type BookingIntent struct {
	RideID         string        `json:"rideId"`
	PassengerID    string        `json:"passengerId"`
	PassengerName  string        `json:"passengerName"`
	PassengerEmail string        `json:"passengerEmail"`
	Seats          int           `json:"seats"`
	Status         BookingStatus `json:"status"`
	Timestamp      time.Time     `json:"timestamp"`
}

// BookRideRequest is the payload of POST /book/:id
type BookRideRequest struct {
	Seats int `json:"seats"`
}

// RespondBookingRequest is the payload of the driver decision
type RespondBookingRequest struct {
	Status BookingStatus `json:"status"`
}

// DecisionResult is what a committed decision transaction changed
type DecisionResult struct {
	Request BookingRequest
	Ride    Ride
	// Cascaded holds the other pending requests rejected because the ride filled up
	Cascaded      []BookingRequest
	StatusChanged bool
}

// RideUpdateResult is what a committed ride update changed. A capacity cut
// down to the seats already held closes the ride like a final accept does.
type RideUpdateResult struct {
	Ride          Ride
	Cascaded      []BookingRequest
	StatusChanged bool
}
