package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/tumpangan/internal/pkg/apperror"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
)

const rideColumns = `id, driver_id,
	source_address, source_city, source_lon, source_lat,
	destination_address, destination_city, destination_lon, destination_lat,
	departure_time, price, available_seats, status, created_at, updated_at`

const passengerColumns = `ride_id, user_id, seats, name, email, booking_time, confirmed, confirmed_at`

type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	logger.Info("Initializing ride repository")
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// rideRow is the flattened storage form of a ride
type rideRow struct {
	ID                 string    `db:"id"`
	DriverID           string    `db:"driver_id"`
	SourceAddress      string    `db:"source_address"`
	SourceCity         string    `db:"source_city"`
	SourceLon          float64   `db:"source_lon"`
	SourceLat          float64   `db:"source_lat"`
	DestinationAddress string    `db:"destination_address"`
	DestinationCity    string    `db:"destination_city"`
	DestinationLon     float64   `db:"destination_lon"`
	DestinationLat     float64   `db:"destination_lat"`
	DepartureTime      time.Time `db:"departure_time"`
	Price              float64   `db:"price"`
	AvailableSeats     int       `db:"available_seats"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
	BookedSeats        int       `db:"booked_seats"`
}

func (row rideRow) toRide() models.Ride {
	return models.Ride{
		ID:       row.ID,
		DriverID: row.DriverID,
		Source: models.Location{
			Address:     row.SourceAddress,
			City:        row.SourceCity,
			Coordinates: []float64{row.SourceLon, row.SourceLat},
		},
		Destination: models.Location{
			Address:     row.DestinationAddress,
			City:        row.DestinationCity,
			Coordinates: []float64{row.DestinationLon, row.DestinationLat},
		},
		DepartureTime:  row.DepartureTime,
		Price:          row.Price,
		AvailableSeats: row.AvailableSeats,
		Status:         models.RideStatus(row.Status),
		Passengers:     []models.Passenger{},
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (row rideRow) toListing() models.RideListing {
	ride := row.toRide()
	return models.RideListing{
		ID:             ride.ID,
		DriverID:       ride.DriverID,
		Source:         ride.Source,
		Destination:    ride.Destination,
		DepartureTime:  ride.DepartureTime,
		Price:          ride.Price,
		AvailableSeats: ride.AvailableSeats,
		RemainingSeats: ride.AvailableSeats - row.BookedSeats,
		Status:         ride.Status,
		CreatedAt:      ride.CreatedAt,
		UpdatedAt:      ride.UpdatedAt,
	}
}

type passengerRow struct {
	RideID string `db:"ride_id"`
	models.Passenger
}

// lonLat splits [longitude, latitude] coordinates
func lonLat(loc models.Location) (float64, float64) {
	if len(loc.Coordinates) < 2 {
		return 0, 0
	}
	return loc.Coordinates[0], loc.Coordinates[1]
}

// CreateRide inserts a new ride. The ride ID is generated when empty.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	if ride.ID == "" {
		ride.ID = uuid.NewString()
	}
	now := time.Now()
	ride.CreatedAt = now
	ride.UpdatedAt = now
	if ride.Passengers == nil {
		ride.Passengers = []models.Passenger{}
	}

	srcLon, srcLat := lonLat(ride.Source)
	dstLon, dstLat := lonLat(ride.Destination)

	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID,
		ride.DriverID,
		ride.Source.Address,
		ride.Source.City,
		srcLon,
		srcLat,
		ride.Destination.Address,
		ride.Destination.City,
		dstLon,
		dstLat,
		ride.DepartureTime,
		ride.Price,
		ride.AvailableSeats,
		ride.Status,
		ride.CreatedAt,
		ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRide returns the ride with its passengers. A missing ride yields sql.ErrNoRows.
func (r *RideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	ride, err := r.getRide(ctx, r.db, rideID, false)
	if err != nil {
		return nil, err
	}
	return ride, nil
}

func (r *RideRepo) getRide(ctx context.Context, q sqlx.QueryerContext, rideID string, forUpdate bool) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row rideRow
	if err := sqlx.GetContext(ctx, q, &row, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	ride := row.toRide()
	passengers, err := r.loadPassengers(ctx, q, []string{ride.ID})
	if err != nil {
		return nil, err
	}
	ride.Passengers = passengers[ride.ID]
	if ride.Passengers == nil {
		ride.Passengers = []models.Passenger{}
	}
	return &ride, nil
}

func (r *RideRepo) loadPassengers(ctx context.Context, q sqlx.QueryerContext, rideIDs []string) (map[string][]models.Passenger, error) {
	byRide := make(map[string][]models.Passenger, len(rideIDs))
	if len(rideIDs) == 0 {
		return byRide, nil
	}

	query := `
		SELECT ` + passengerColumns + `
		FROM ride_passengers
		WHERE ride_id = ANY($1)
		ORDER BY booking_time ASC
	`
	var rows []passengerRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, pq.Array(rideIDs)); err != nil {
		return nil, fmt.Errorf("failed to load passengers: %w", err)
	}
	for _, row := range rows {
		byRide[row.RideID] = append(byRide[row.RideID], row.Passenger)
	}
	return byRide, nil
}

// UpdateRide writes the editable fields of a ride that is still available.
// The ride row is locked and its passengers re-read before the write, so a
// capacity cut cannot undercut an accept committed since the caller loaded
// the ride. Cutting capacity to exactly the seats held books the ride and
// rejects its pending requests.
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride, at time.Time) (*models.RideUpdateResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := r.getRide(ctx, tx, ride.ID, true)
	if err != nil {
		if isNoRows(err) {
			return nil, apperror.NotFound("Ride not found")
		}
		return nil, err
	}
	if current.Status != models.RideStatusAvailable {
		return nil, apperror.Conflict("Cannot update ride - already booked or completed")
	}
	if booked := current.BookedSeats(); ride.AvailableSeats < booked {
		return nil, apperror.Conflictf("Cannot reduce seats below the %d already booked", booked)
	}

	ride.Passengers = current.Passengers
	ride.UpdatedAt = at
	srcLon, srcLat := lonLat(ride.Source)
	dstLon, dstLat := lonLat(ride.Destination)

	query := `
		UPDATE rides SET
			source_address = $2, source_city = $3, source_lon = $4, source_lat = $5,
			destination_address = $6, destination_city = $7, destination_lon = $8, destination_lat = $9,
			departure_time = $10, price = $11, available_seats = $12, status = $13, updated_at = $14
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query,
		ride.ID,
		ride.Source.Address,
		ride.Source.City,
		srcLon,
		srcLat,
		ride.Destination.Address,
		ride.Destination.City,
		dstLon,
		dstLat,
		ride.DepartureTime,
		ride.Price,
		ride.AvailableSeats,
		ride.Status,
		ride.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}

	result := &models.RideUpdateResult{}
	if ride.Status == models.RideStatusAvailable && len(ride.Passengers) > 0 && ride.RemainingSeats() == 0 {
		cascaded, err := markRideBooked(ctx, tx, ride.ID, at)
		if err != nil {
			return nil, err
		}
		ride.Status = models.RideStatusBooked
		result.Cascaded = cascaded
		result.StatusChanged = true
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Ride = *ride
	return result, nil
}

// DeleteRide removes an available ride that has no passengers
func (r *RideRepo) DeleteRide(ctx context.Context, rideID string) error {
	query := `
		DELETE FROM rides
		WHERE id = $1
			AND status = 'available'
			AND NOT EXISTS (SELECT 1 FROM ride_passengers WHERE ride_id = $1)
	`
	result, err := r.db.ExecContext(ctx, query, rideID)
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperror.Conflict("Cannot delete ride with existing bookings")
	}
	return nil
}

// SearchRides lists available rides matching the query, earliest departure first
func (r *RideRepo) SearchRides(ctx context.Context, q models.RideQuery) ([]models.RideListing, error) {
	var (
		conds = []string{"r.status = $1"}
		args  = []interface{}{models.RideStatusAvailable}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.From != "" {
		conds = append(conds, "r.source_city ILIKE "+arg("%"+q.From+"%"))
	}
	if q.To != "" {
		conds = append(conds, "r.destination_city ILIKE "+arg("%"+q.To+"%"))
	}
	if q.Day != nil {
		start := *q.Day
		conds = append(conds, "r.departure_time >= "+arg(start))
		conds = append(conds, "r.departure_time < "+arg(start.AddDate(0, 0, 1)))
	}

	query := `
		SELECT r.id, r.driver_id,
			r.source_address, r.source_city, r.source_lon, r.source_lat,
			r.destination_address, r.destination_city, r.destination_lon, r.destination_lat,
			r.departure_time, r.price, r.available_seats, r.status, r.created_at, r.updated_at,
			(SELECT COALESCE(SUM(p.seats), 0) FROM ride_passengers p WHERE p.ride_id = r.id) AS booked_seats
		FROM rides r
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY r.departure_time ASC
	`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}

	listings := make([]models.RideListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, row.toListing())
	}
	return listings, nil
}

// ListRidesByDriver returns every ride owned by driverID, newest departure first
func (r *RideRepo) ListRidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY departure_time DESC`

	var rows []rideRow
	if err := r.db.SelectContext(ctx, &rows, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver rides: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	passengers, err := r.loadPassengers(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.Ride, 0, len(rows))
	for _, row := range rows {
		ride := row.toRide()
		if p, ok := passengers[ride.ID]; ok {
			ride.Passengers = p
		}
		result = append(result, ride)
	}
	return result, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
