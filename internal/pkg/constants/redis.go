package constants

// Redis key formats
const (
	// Search results: ride{from}to{to}date{date}
	KeyRideSearch = "ride%sto%sdate%s"

	// One-time confirmation code: ride{rideId}passenger{passengerId}otp
	KeyRideOTP = "ride%spassenger%sotp"

	// Rate limiting prefix, keyed further by route and caller
	KeyRateLimitUser = "rate:user"
)
