package repository

import (
	"context"

	"residesk/internal/domain/booking"
	"residesk/internal/infra"
	"residesk/internal/pkg/pgconv"
	"residesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewCols = `b.id, b.amenity_id, a.name, b.user_id,
to_char(b.start_date, 'YYYY-MM-DD'), to_char(b.end_date, 'YYYY-MM-DD'),
b.status, b.created_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateIfFree serializes bookings per amenity: the amenity row is locked for
// the life of the transaction, so the overlap check and the insert are atomic
// with respect to concurrent requests. Ranges are inclusive on both ends, so
// a booking whose start equals another's end still conflicts.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *booking.Booking) (*queries.BookingView, error) {
	const lockAmenity = `SELECT name FROM amenities WHERE id = $1 FOR UPDATE`

	const findConflict = `SELECT id FROM bookings
	WHERE amenity_id = $1
	  AND status = 'confirmed'
	  AND NOT (end_date < $2 OR start_date > $3)
	LIMIT 1`

	const insert = `INSERT INTO bookings (id, amenity_id, user_id, start_date, end_date, status)
	VALUES ($1,$2,$3,$4,$5,$6)
	RETURNING id, created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer tx.Rollback(ctx)

	var amenityName string
	if err := tx.QueryRow(ctx, lockAmenity, b.AmenityID()).Scan(&amenityName); err != nil {
		return nil, infra.WrapRepoErr("failed to lock amenity", err)
	}

	var conflictID uuid.UUID
	err = tx.QueryRow(ctx, findConflict, b.AmenityID(), b.Dates().Start(), b.Dates().End()).Scan(&conflictID)
	switch {
	case err == nil:
		return nil, infra.NewRepoErr(infra.KindConflict, "amenity already booked for the requested dates")
	case !pgconv.IsNoRows(err):
		return nil, infra.WrapRepoErr("failed to check booking overlap", err)
	}

	view := &queries.BookingView{
		AmenityID:   b.AmenityID(),
		AmenityName: amenityName,
		UserID:      b.UserID(),
		StartDate:   b.Dates().StartString(),
		EndDate:     b.Dates().EndString(),
		Status:      b.Status().String(),
	}
	err = tx.QueryRow(ctx, insert,
		b.ID(), b.AmenityID(), b.UserID(), b.Dates().Start(), b.Dates().End(), b.Status().String(),
	).Scan(&view.ID, &view.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit booking", err)
	}
	return view, nil
}

// Cancel is idempotent. The existence probe separates "unknown id" from "row
// already cancelled"; the guarded UPDATE makes repeat cancels a no-op.
func (r *BookingRepository) Cancel(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	const probe = `SELECT 1 FROM bookings WHERE id = $1 AND user_id = $2`
	const cancelQ = `UPDATE bookings SET status = 'cancelled'
	WHERE id = $1 AND user_id = $2 AND status <> 'cancelled'`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var one int
	if err := r.pool.QueryRow(ctx, probe, id, userID).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to look up booking", err)
	}

	if _, err := r.pool.Exec(ctx, cancelQ, id, userID); err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return true, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `SELECT ` + bookingViewCols + `
	FROM bookings b JOIN amenities a ON a.id = b.amenity_id
	WHERE b.id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanBookingView(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	const q = `SELECT ` + bookingViewCols + `
	FROM bookings b JOIN amenities a ON a.id = b.amenity_id
	WHERE b.user_id = $1
	ORDER BY b.start_date DESC`
	return r.list(ctx, q, userID)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	const q = `SELECT ` + bookingViewCols + `
	FROM bookings b JOIN amenities a ON a.id = b.amenity_id
	ORDER BY b.created_at DESC`
	return r.list(ctx, q)
}

func (r *BookingRepository) list(ctx context.Context, q string, args ...any) ([]*queries.BookingView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.AmenityID, &v.AmenityName, &v.UserID,
		&v.StartDate, &v.EndDate, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type AmenityRepository struct {
	pool *pgxpool.Pool
}

func NewAmenityRepository(pool *pgxpool.Pool) *AmenityRepository {
	return &AmenityRepository{pool: pool}
}

func (r *AmenityRepository) Create(ctx context.Context, a *booking.Amenity) (*queries.AmenityView, error) {
	const q = `INSERT INTO amenities (id, name, description, image_url)
	VALUES ($1,$2,$3,$4)
	RETURNING id, name, description, image_url, created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v queries.AmenityView
	err := r.pool.QueryRow(ctx, q, a.ID(), a.Name(), a.Description(), a.ImageURL()).
		Scan(&v.ID, &v.Name, &v.Description, &v.ImageURL, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create amenity", err)
	}
	return &v, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]*queries.AmenityView, error) {
	const q = `SELECT id, name, description, image_url, created_at FROM amenities ORDER BY name`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	var views []*queries.AmenityView
	for rows.Next() {
		var v queries.AmenityView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.ImageURL, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity row", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
