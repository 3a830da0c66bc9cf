package models

import (
	"strings"
	"time"
)

// DateLayout is the search date format and the day part of search cache keys
const DateLayout = "2006-01-02"

// RideStatus represents the lifecycle state of a ride
type RideStatus string

const (
	RideStatusAvailable RideStatus = "available"
	RideStatusBooked    RideStatus = "booked"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusCompleted RideStatus = "completed"
)

// Location is a named place with [longitude, latitude] coordinates
type Location struct {
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Coordinates []float64 `json:"coordinates"`
}

// String renders the location for notifications
func (l Location) String() string {
	if l.City == "" {
		return l.Address
	}
	if l.Address == "" {
		return l.City
	}
	return l.Address + ", " + l.City
}

// Passenger is an accepted booking on a ride
type Passenger struct {
	UserID      string     `json:"userId" db:"user_id"`
	Seats       int        `json:"seats" db:"seats"`
	Name        string     `json:"name" db:"name"`
	Email       string     `json:"email" db:"email"`
	BookingTime time.Time  `json:"bookingTime" db:"booking_time"`
	Confirmed   bool       `json:"confirmed" db:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty" db:"confirmed_at"`
}

// Ride is a driver-published trip with a fixed seat capacity.
// AvailableSeats is the total capacity, not what is left.
type Ride struct {
	ID             string      `json:"id"`
	DriverID       string      `json:"driverId"`
	Source         Location    `json:"source"`
	Destination    Location    `json:"destination"`
	DepartureTime  time.Time   `json:"departureTime"`
	Price          float64     `json:"price"`
	AvailableSeats int         `json:"availableSeats"`
	Status         RideStatus  `json:"status"`
	Passengers     []Passenger `json:"passengers"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// BookedSeats sums the seats held by accepted passengers
func (r *Ride) BookedSeats() int {
	total := 0
	for _, p := range r.Passengers {
		total += p.Seats
	}
	return total
}

// RemainingSeats is the capacity not yet held by accepted passengers
func (r *Ride) RemainingSeats() int {
	return r.AvailableSeats - r.BookedSeats()
}

// FindPassenger returns the passenger entry for userID, or nil
func (r *Ride) FindPassenger(userID string) *Passenger {
	for i := range r.Passengers {
		if r.Passengers[i].UserID == userID {
			return &r.Passengers[i]
		}
	}
	return nil
}

// IsOwnedBy reports whether userID is the ride's driver
func (r *Ride) IsOwnedBy(userID string) bool {
	return r.DriverID != "" && r.DriverID == userID
}

// RideListing is the search projection of a ride; passengers are never exposed
type RideListing struct {
	ID             string     `json:"id"`
	DriverID       string     `json:"driverId"`
	Source         Location   `json:"source"`
	Destination    Location   `json:"destination"`
	DepartureTime  time.Time  `json:"departureTime"`
	Price          float64    `json:"price"`
	AvailableSeats int        `json:"availableSeats"`
	RemainingSeats int        `json:"remainingSeats"`
	Status         RideStatus `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CreateRideRequest is the payload for publishing a ride
type CreateRideRequest struct {
	Source         Location  `json:"source"`
	Destination    Location  `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
}

// UpdateRideRequest is a partial update; nil fields are left unchanged
type UpdateRideRequest struct {
	Source         *Location   `json:"source,omitempty"`
	Destination    *Location   `json:"destination,omitempty"`
	DepartureTime  *time.Time  `json:"departureTime,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	AvailableSeats *int        `json:"availableSeats,omitempty"`
	Status         *RideStatus `json:"status,omitempty"`
}

// SearchCriteria holds the raw search query values
type SearchCriteria struct {
	From  string `query:"from"`
	To    string `query:"to"`
	Date  string `query:"date"`
	Seats string `query:"seats"`
}

// Empty reports whether no criterion was supplied
func (c SearchCriteria) Empty() bool {
	return strings.TrimSpace(c.From) == "" &&
		strings.TrimSpace(c.To) == "" &&
		strings.TrimSpace(c.Date) == "" &&
		strings.TrimSpace(c.Seats) == ""
}

// RideQuery is the parsed form of SearchCriteria handed to the store
type RideQuery struct {
	From string
	To   string
	Day  *time.Time
}
