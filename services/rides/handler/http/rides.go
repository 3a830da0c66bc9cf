package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// fail writes err as an error response, recording server-side failures
func fail(c echo.Context, err error) error {
	if apperror.HTTPStatus(err) >= http.StatusInternalServerError {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}

func identityOf(c echo.Context) (models.Identity, bool) {
	return middleware.GetIdentity(c)
}

// SearchRides handles GET /search
func (h *RidesHandler) SearchRides(c echo.Context) error {
	criteria := models.SearchCriteria{
		From:  c.QueryParam("from"),
		To:    c.QueryParam("to"),
		Date:  c.QueryParam("date"),
		Seats: c.QueryParam("seats"),
	}

	data, err := h.rideUC.SearchRides(c.Request().Context(), criteria)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides found", data)
}

// GetRide handles GET /:id
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID := c.Param("id")
	middleware.SetRideID(c, rideID)

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride fetched successfully", ride)
}

// CreateRide handles POST /create
func (h *RidesHandler) CreateRide(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), identity, req)
	if err != nil {
		return fail(c, err)
	}
	middleware.SetRideID(c, ride.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// ListDriverRides handles GET /driver/my-rides
func (h *RidesHandler) ListDriverRides(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	list, err := h.rideUC.ListDriverRides(c.Request().Context(), identity)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides fetched successfully", list)
}

// UpdateRide handles PUT /update/:id
func (h *RidesHandler) UpdateRide(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID := c.Param("id")
	middleware.SetRideID(c, rideID)

	var req models.UpdateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), identity, rideID, req)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// DeleteRide handles DELETE /delete/:id
func (h *RidesHandler) DeleteRide(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID := c.Param("id")
	middleware.SetRideID(c, rideID)

	if err := h.rideUC.DeleteRide(c.Request().Context(), identity, rideID); err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted successfully", nil)
}

// BookRide handles POST /book/:id
func (h *RidesHandler) BookRide(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID := c.Param("id")
	middleware.SetRideID(c, rideID)

	var req models.BookRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	intent, err := h.rideUC.BookRide(c.Request().Context(), identity, rideID, req.Seats)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking request sent to driver", intent)
}

// BookingStatus handles GET /:rideId/booking-status
func (h *RidesHandler) BookingStatus(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	list, err := h.rideUC.ListPassengerBookingRequests(c.Request().Context(), identity, c.Param("rideId"))
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking status fetched successfully", list)
}

// DriverBookingRequests handles GET /driver/booking-request
func (h *RidesHandler) DriverBookingRequests(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	list, err := h.rideUC.ListDriverBookingRequests(c.Request().Context(), identity)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking requests fetched successfully", list)
}

// RespondBookingRequest handles PATCH /booking-request/:requestId/respond
func (h *RidesHandler) RespondBookingRequest(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	requestID := c.Param("requestId")
	middleware.AddAttribute(c, "booking_request.id", requestID)

	var req models.RespondBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.rideUC.RespondToBookingRequest(c.Request().Context(), identity, requestID, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking request "+string(result.Status), result)
}

// GenerateOTP handles POST /:rideId/generate-otp
func (h *RidesHandler) GenerateOTP(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID := c.Param("rideId")
	middleware.SetRideID(c, rideID)

	var req models.GenerateOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.rideUC.GenerateOTP(c.Request().Context(), identity, rideID, req.PassengerID); err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "OTP sent to passenger", nil)
}

// ConfirmOTP handles POST /confirmotp/:rideId
func (h *RidesHandler) ConfirmOTP(c echo.Context) error {
	identity, ok := identityOf(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	rideID := c.Param("rideId")
	middleware.SetRideID(c, rideID)

	var req models.ConfirmOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	trip, err := h.rideUC.ConfirmRide(c.Request().Context(), identity, rideID, req.PassengerID, req.OTP)
	if err != nil {
		return fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride confirmed successfully", trip)
}
