package repository

import (
	"context"

	"residesk/internal/domain/announcement"
	"residesk/internal/domain/complaint"
	"residesk/internal/domain/household"
	"residesk/internal/domain/listing"
	"residesk/internal/infra"
	"residesk/internal/pkg/pgconv"
	"residesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const complaintViewCols = `c.id, c.user_id, u.name, c.subject, c.message, c.status, c.created_at, c.updated_at`

type ComplaintRepository struct {
	pool *pgxpool.Pool
}

func NewComplaintRepository(pool *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{pool: pool}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) (*queries.ComplaintView, error) {
	const q = `WITH inserted AS (
		INSERT INTO complaints (id, user_id, subject, message, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING *
	)
	SELECT ` + complaintViewCols + ` FROM inserted c JOIN users u ON u.id = c.user_id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanComplaintView(r.pool.QueryRow(ctx, q,
		c.ID(), c.UserID(), c.Subject(), c.Message(), c.Status().String(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create complaint", err)
	}
	return view, nil
}

// UpdateStatus refuses to move a resolved complaint. A zero-row update on an
// existing row means the complaint is terminal.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status complaint.Status) error {
	const q = `UPDATE complaints SET status = $2, updated_at = now()
	WHERE id = $1 AND status <> 'resolved'`

	const probe = `SELECT 1 FROM complaints WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update complaint status", err)
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	var one int
	if err := r.pool.QueryRow(ctx, probe, id).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.NewRepoErr(infra.KindNotFound, "complaint not found")
		}
		return infra.WrapRepoErr("failed to look up complaint", err)
	}
	return infra.NewRepoErr(infra.KindConflict, "complaint already resolved")
}

func (r *ComplaintRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ComplaintView, error) {
	const q = `SELECT ` + complaintViewCols + `
	FROM complaints c JOIN users u ON u.id = c.user_id
	WHERE c.user_id = $1
	ORDER BY c.created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*queries.ComplaintView, error) {
	const q = `SELECT ` + complaintViewCols + `
	FROM complaints c JOIN users u ON u.id = c.user_id
	ORDER BY c.created_at DESC`
	return r.list(ctx, q)
}

func (r *ComplaintRepository) list(ctx context.Context, q string, args ...any) ([]*queries.ComplaintView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list complaints", err)
	}
	defer rows.Close()

	var views []*queries.ComplaintView
	for rows.Next() {
		view, err := scanComplaintView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan complaint row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func scanComplaintView(row pgx.Row) (*queries.ComplaintView, error) {
	var v queries.ComplaintView
	err := row.Scan(&v.ID, &v.UserID, &v.UserName, &v.Subject, &v.Message, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) (*queries.AnnouncementView, error) {
	const q = `INSERT INTO announcements (id, title, body, author_id)
	VALUES ($1,$2,$3,$4)
	RETURNING id, title, body, author_id, created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v queries.AnnouncementView
	err := r.pool.QueryRow(ctx, q, a.ID(), a.Title(), a.Body(), a.AuthorID()).
		Scan(&v.ID, &v.Title, &v.Body, &v.AuthorID, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create announcement", err)
	}
	return &v, nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*queries.AnnouncementView, error) {
	const q = `SELECT id, title, body, author_id, created_at FROM announcements ORDER BY created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements", err)
	}
	defer rows.Close()

	var views []*queries.AnnouncementView
	for rows.Next() {
		var v queries.AnnouncementView
		if err := rows.Scan(&v.ID, &v.Title, &v.Body, &v.AuthorID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan announcement row", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

const listingViewCols = `l.id, l.seller_id, u.name, l.title, l.description, l.price_cents, l.contact, l.image_url, l.created_at`

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) (*queries.ListingView, error) {
	const q = `WITH inserted AS (
		INSERT INTO listings (id, seller_id, title, description, price_cents, contact, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING *
	)
	SELECT ` + listingViewCols + ` FROM inserted l JOIN users u ON u.id = l.seller_id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanListingView(r.pool.QueryRow(ctx, q,
		l.ID(), l.SellerID(), l.Title(), l.Description(), l.PriceCents(), l.Contact(), l.ImageURL(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return view, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*queries.ListingView, error) {
	const q = `SELECT ` + listingViewCols + `
	FROM listings l JOIN users u ON u.id = l.seller_id
	ORDER BY l.created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	defer rows.Close()

	var views []*queries.ListingView
	for rows.Next() {
		view, err := scanListingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var v queries.ListingView
	err := row.Scan(&v.ID, &v.SellerID, &v.SellerName, &v.Title, &v.Description, &v.PriceCents, &v.Contact, &v.ImageURL, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type HouseholdRepository struct {
	pool *pgxpool.Pool
}

func NewHouseholdRepository(pool *pgxpool.Pool) *HouseholdRepository {
	return &HouseholdRepository{pool: pool}
}

func (r *HouseholdRepository) Add(ctx context.Context, userID uuid.UUID, kind household.Kind, payload []byte) (*queries.HouseholdEntryView, error) {
	const q = `INSERT INTO household_entries (id, user_id, kind, payload)
	VALUES ($1,$2,$3,$4)
	RETURNING id, kind, payload, created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v queries.HouseholdEntryView
	err := r.pool.QueryRow(ctx, q, uuid.New(), userID, string(kind), payload).
		Scan(&v.ID, &v.Kind, &v.Payload, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to add household entry", err)
	}
	return &v, nil
}

func (r *HouseholdRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.HouseholdEntryView, error) {
	const q = `SELECT id, kind, payload, created_at
	FROM household_entries
	WHERE user_id = $1
	ORDER BY created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list household entries", err)
	}
	defer rows.Close()

	var views []*queries.HouseholdEntryView
	for rows.Next() {
		var v queries.HouseholdEntryView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Payload, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan household entry row", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}
