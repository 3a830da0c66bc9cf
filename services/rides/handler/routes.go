package handler

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/services/rides"
	httpHandler "github.com/piresc/tumpangan/services/rides/handler/http"
	natsHandler "github.com/piresc/tumpangan/services/rides/handler/nats"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
	ridesNATS *natsHandler.RidesHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	ridesUC rides.RideUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(ridesUC),
		ridesNATS: natsHandler.NewRidesHandler(ridesUC, natsClient, nrApp),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes under /api/rides. Mutating routes
// are rate limited per caller when redisClient is set.
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) {
	auth := middleware.IdentityMiddleware(h.cfg.JWT)

	limited := []echo.MiddlewareFunc{auth}
	if redisClient != nil {
		period := h.cfg.Rides.RateLimitPeriod
		if period <= 0 {
			period = time.Minute
		}
		limit := h.cfg.Rides.RateLimitRequests
		if limit <= 0 {
			limit = 30
		}
		limited = append(limited, middleware.UserRateLimiter(limit, period, redisClient))
	}

	api := e.Group("/api/rides")

	// public
	api.GET("/search", h.ridesHTTP.SearchRides)
	api.GET("/:id", h.ridesHTTP.GetRide)

	// inventory
	api.POST("/create", h.ridesHTTP.CreateRide, limited...)
	api.GET("/driver/my-rides", h.ridesHTTP.ListDriverRides, auth)
	api.PUT("/update/:id", h.ridesHTTP.UpdateRide, limited...)
	api.DELETE("/delete/:id", h.ridesHTTP.DeleteRide, limited...)

	// booking workflow
	api.POST("/book/:id", h.ridesHTTP.BookRide, limited...)
	api.GET("/:rideId/booking-status", h.ridesHTTP.BookingStatus, auth)
	api.GET("/driver/booking-request", h.ridesHTTP.DriverBookingRequests, auth)
	api.PATCH("/booking-request/:requestId/respond", h.ridesHTTP.RespondBookingRequest, limited...)

	// confirmation
	api.POST("/:rideId/generate-otp", h.ridesHTTP.GenerateOTP, limited...)
	api.POST("/confirmotp/:rideId", h.ridesHTTP.ConfirmOTP, limited...)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.ridesNATS.InitNATSConsumers(ctx)
}

// ConsumerHealth reports whether the admission consumer is running
func (h *Handler) ConsumerHealth(ctx context.Context) error {
	return h.ridesNATS.CheckHealth(ctx)
}

// StopNATSConsumers stops message delivery
func (h *Handler) StopNATSConsumers() {
	h.ridesNATS.Stop()
}
