package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/services/rides"
)

const defaultMaxSeats = 8

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg       *models.Config
	ridesRepo rides.RideRepo
	cache     rides.RideCache
	ridesGW   rides.RideGW
	maxSeats  int
	now       func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	cache rides.RideCache,
	rideGW rides.RideGW,
) (rides.RideUC, error) {
	return newRideUC(cfg, rideRepo, cache, rideGW), nil
}

func newRideUC(cfg *models.Config, rideRepo rides.RideRepo, cache rides.RideCache, rideGW rides.RideGW) *rideUC {
	maxSeats := cfg.Rides.MaxSeats
	if maxSeats <= 0 {
		maxSeats = defaultMaxSeats
	}
	return &rideUC{
		cfg:       cfg,
		ridesRepo: rideRepo,
		cache:     cache,
		ridesGW:   rideGW,
		maxSeats:  maxSeats,
		now:       time.Now,
	}
}

// classify leaves domain errors alone, maps a missing row to NotFound and
// anything else to Infrastructure
func classify(err error, notFoundMsg, infraMsg string) error {
	if err == nil {
		return nil
	}
	if apperror.KindOf(err) != apperror.KindUnknown {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound(notFoundMsg)
	}
	return apperror.Infrastructure(infraMsg, err)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (uc *rideUC) loadRide(ctx context.Context, rideID string) (*models.Ride, error) {
	if !validID(rideID) {
		return nil, apperror.NotFound("Ride not found")
	}
	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, classify(err, "Ride not found", "Failed to fetch ride")
	}
	return ride, nil
}

func validateLocation(name string, loc models.Location) error {
	if strings.TrimSpace(loc.Address) == "" || strings.TrimSpace(loc.City) == "" {
		return apperror.Validationf("%s address and city are required", name)
	}
	if len(loc.Coordinates) != 2 {
		return apperror.Validationf("%s coordinates must be [longitude, latitude]", name)
	}
	lon, lat := loc.Coordinates[0], loc.Coordinates[1]
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return apperror.Validationf("%s coordinates are out of range", name)
	}
	return nil
}

// validateRideFields checks the rules shared by create and update.
// checkDeparture is false when an update leaves the departure untouched.
func (uc *rideUC) validateRideFields(ride *models.Ride, checkDeparture bool) error {
	if err := validateLocation("Source", ride.Source); err != nil {
		return err
	}
	if err := validateLocation("Destination", ride.Destination); err != nil {
		return err
	}
	if checkDeparture && !ride.DepartureTime.After(uc.now()) {
		return apperror.Validation("Departure time must be in the future")
	}
	if ride.AvailableSeats < 1 || ride.AvailableSeats > uc.maxSeats {
		return apperror.Validationf("Available seats must be between 1 and %d", uc.maxSeats)
	}
	if ride.Price < 0 {
		return apperror.Validation("Price cannot be negative")
	}
	return nil
}

// CreateRide publishes a new ride for a driver
func (uc *rideUC) CreateRide(ctx context.Context, identity models.Identity, req models.CreateRideRequest) (*models.Ride, error) {
	if !identity.CanDrive() {
		return nil, apperror.Authorization("Only drivers can create rides")
	}

	ride := &models.Ride{
		DriverID:       identity.UserID,
		Source:         req.Source,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		Price:          req.Price,
		AvailableSeats: req.AvailableSeats,
		Status:         models.RideStatusAvailable,
		Passengers:     []models.Passenger{},
	}
	if err := uc.validateRideFields(ride, true); err != nil {
		return nil, err
	}

	if err := uc.ridesRepo.CreateRide(ctx, ride); err != nil {
		logger.ErrorCtx(ctx, "Failed to create ride",
			logger.String("driver_id", identity.UserID),
			logger.Err(err))
		return nil, apperror.Infrastructure("Failed to create ride", err)
	}

	uc.cache.InvalidateSearch(ctx, ride.DepartureTime)

	logger.InfoCtx(ctx, "Ride created",
		logger.String("ride_id", ride.ID),
		logger.String("driver_id", ride.DriverID),
		logger.Int("seats", ride.AvailableSeats))
	return ride, nil
}

// GetRide returns a ride with its passengers
func (uc *rideUC) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return uc.loadRide(ctx, rideID)
}

// UpdateRide applies an owner's partial update to an available ride
func (uc *rideUC) UpdateRide(ctx context.Context, identity models.Identity, rideID string, req models.UpdateRideRequest) (*models.Ride, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.IsOwnedBy(identity.UserID) {
		return nil, apperror.Authorization("You can only update your own rides")
	}
	if ride.Status != models.RideStatusAvailable {
		return nil, apperror.Conflict("Cannot update ride - already booked or completed")
	}

	previousDeparture := ride.DepartureTime
	updated := *ride
	if req.Source != nil {
		updated.Source = *req.Source
	}
	if req.Destination != nil {
		updated.Destination = *req.Destination
	}
	if req.DepartureTime != nil {
		updated.DepartureTime = *req.DepartureTime
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.AvailableSeats != nil {
		updated.AvailableSeats = *req.AvailableSeats
	}
	if req.Status != nil {
		switch *req.Status {
		case models.RideStatusAvailable, models.RideStatusCancelled, models.RideStatusCompleted:
			updated.Status = *req.Status
		default:
			return nil, apperror.Validation("Status can only be changed to cancelled or completed")
		}
	}

	if err := uc.validateRideFields(&updated, req.DepartureTime != nil); err != nil {
		return nil, err
	}
	if booked := ride.BookedSeats(); updated.AvailableSeats < booked {
		return nil, apperror.Conflictf("Cannot reduce seats below the %d already booked", booked)
	}

	result, err := nrpkg.WithSegmentAndReturn(ctx, "Postgres.UpdateRide", func() (*models.RideUpdateResult, error) {
		return uc.ridesRepo.UpdateRide(ctx, &updated, uc.now())
	})
	if err != nil {
		return nil, classify(err, "Ride not found", "Failed to update ride")
	}
	saved := &result.Ride

	uc.cache.InvalidateSearch(ctx, previousDeparture)
	if !sameDay(previousDeparture, saved.DepartureTime) {
		uc.cache.InvalidateSearch(ctx, saved.DepartureTime)
	}

	if result.StatusChanged {
		metrics.CascadeRejectionsTotal.Add(float64(len(result.Cascaded)))
		for _, req := range result.Cascaded {
			uc.notify(ctx, rideFullyBooked(saved, req))
		}
	}

	logger.InfoCtx(ctx, "Ride updated",
		logger.String("ride_id", saved.ID),
		logger.String("status", string(saved.Status)),
		logger.Int("cascaded", len(result.Cascaded)))
	return saved, nil
}

func sameDay(a, b time.Time) bool {
	return a.UTC().Format(models.DateLayout) == b.UTC().Format(models.DateLayout)
}

// DeleteRide removes an owner's ride that nobody has booked yet
func (uc *rideUC) DeleteRide(ctx context.Context, identity models.Identity, rideID string) error {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return err
	}
	if !ride.IsOwnedBy(identity.UserID) {
		return apperror.Authorization("You can only delete your own rides")
	}
	if ride.Status != models.RideStatusAvailable {
		return apperror.Conflict("Cannot delete ride - already booked or completed")
	}
	if len(ride.Passengers) > 0 {
		return apperror.Conflict("Cannot delete ride with existing bookings")
	}

	if err := uc.ridesRepo.DeleteRide(ctx, ride.ID); err != nil {
		return classify(err, "Ride not found", "Failed to delete ride")
	}

	uc.cache.InvalidateSearch(ctx, ride.DepartureTime)

	logger.InfoCtx(ctx, "Ride deleted", logger.String("ride_id", ride.ID))
	return nil
}

// ListDriverRides returns the caller's own rides
func (uc *rideUC) ListDriverRides(ctx context.Context, identity models.Identity) ([]models.Ride, error) {
	list, err := uc.ridesRepo.ListRidesByDriver(ctx, identity.UserID)
	if err != nil {
		return nil, apperror.Infrastructure("Failed to fetch rides", err)
	}
	return list, nil
}

// SearchRides answers from the cache when possible. Without a seats
// criterion a hit is returned exactly as stored.
func (uc *rideUC) SearchRides(ctx context.Context, criteria models.SearchCriteria) (json.RawMessage, error) {
	if criteria.Empty() {
		return nil, apperror.Validation("At least one search criterion is required")
	}

	from := strings.TrimSpace(criteria.From)
	to := strings.TrimSpace(criteria.To)
	date := strings.TrimSpace(criteria.Date)
	query := models.RideQuery{From: from, To: to}

	if date != "" {
		day, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, apperror.Validation("Invalid date format, expected YYYY-MM-DD")
		}
		query.Day = &day
	}

	seats := 0
	if raw := strings.TrimSpace(criteria.Seats); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, apperror.Validation("Seats must be a positive integer")
		}
		seats = n
	}

	key := fmt.Sprintf(constants.KeyRideSearch, from, to, date)
	payload, hit := uc.cache.GetSearch(ctx, key)
	if !hit {
		listings, err := nrpkg.WithSegmentAndReturn(ctx, "Postgres.SearchRides", func() ([]models.RideListing, error) {
			return uc.ridesRepo.SearchRides(ctx, query)
		})
		if err != nil {
			return nil, apperror.Infrastructure("Failed to search rides", err)
		}
		if len(listings) == 0 {
			return nil, apperror.NotFound("No rides found matching your criteria")
		}
		payload, err = json.Marshal(listings)
		if err != nil {
			return nil, apperror.Infrastructure("Failed to encode rides", err)
		}
		uc.cache.SetSearch(ctx, key, payload)
	}

	if seats == 0 {
		return json.RawMessage(payload), nil
	}

	var listings []models.RideListing
	if err := json.Unmarshal(payload, &listings); err != nil {
		return nil, apperror.Infrastructure("Failed to decode rides", err)
	}
	matching := make([]models.RideListing, 0, len(listings))
	for _, l := range listings {
		if l.RemainingSeats >= seats {
			matching = append(matching, l)
		}
	}
	if len(matching) == 0 {
		return nil, apperror.NotFound("No rides found matching your criteria")
	}

	filtered, err := json.Marshal(matching)
	if err != nil {
		return nil, apperror.Infrastructure("Failed to encode rides", err)
	}
	return json.RawMessage(filtered), nil
}
