package constants

// NATS Subjects
const (
	// Booking intents, consumed by the rides service itself
	SubjectBookingRequested = "booking.requested"

	// Passenger notifications, consumed by the notification worker
	SubjectNotificationBooking = "notifications.booking"
)

// JetStream streams and durable consumers
const (
	StreamBooking      = "BOOKING_STREAM"
	StreamNotification = "NOTIFICATION_STREAM"

	ConsumerBookingRequestedRides = "booking_requested_rides"
)
