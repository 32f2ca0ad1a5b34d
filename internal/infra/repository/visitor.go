package repository

import (
	"context"
	"time"

	"residesk/internal/domain/visitor"
	"residesk/internal/infra"
	"residesk/internal/pkg/pgconv"
	"residesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const passViewCols = `id, visitor_name, contact, purpose, flat_number,
qr_code, numeric_code, valid_from, valid_to, status, created_at, consumed_at`

type VisitorPassRepository struct {
	pool *pgxpool.Pool
}

func NewVisitorPassRepository(pool *pgxpool.Pool) *VisitorPassRepository {
	return &VisitorPassRepository{pool: pool}
}

func (r *VisitorPassRepository) Create(ctx context.Context, p *visitor.Pass) (*queries.VisitorPassView, error) {
	const q = `INSERT INTO visitor_passes (
		id, host_id, visitor_name, contact, purpose, flat_number,
		qr_code, numeric_code, valid_from, valid_to, status
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	RETURNING ` + passViewCols

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanPassView(r.pool.QueryRow(ctx, q,
		p.ID(), p.HostID(), p.VisitorName(), p.Contact(), p.Purpose(), p.FlatNumber(),
		p.PassCode(), p.OTP(), p.Window().From(), p.Window().To(), p.Status().String(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create visitor pass", err)
	}
	return view, nil
}

// Consume flips a pending pass to consumed with a single guarded UPDATE. The
// status and window predicates make the transition at-most-once under
// concurrent scans: only one UPDATE can match the pending row. When no row
// matches, a follow-up SELECT decides between an unknown code and a pass that
// is already consumed or out of window.
func (r *VisitorPassRepository) Consume(ctx context.Context, code string, now time.Time) (*queries.VisitorPassView, error) {
	const consume = `UPDATE visitor_passes
	SET status = 'consumed', consumed_at = $2
	WHERE (qr_code = $1 OR numeric_code = $1)
	  AND status = 'pending'
	  AND $2 BETWEEN valid_from AND valid_to
	RETURNING ` + passViewCols

	const probe = `SELECT id FROM visitor_passes
	WHERE qr_code = $1 OR numeric_code = $1
	LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanPassView(r.pool.QueryRow(ctx, consume, code, now))
	if err == nil {
		return view, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to consume visitor pass", err)
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, probe, code).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "visitor pass not found")
		}
		return nil, infra.WrapRepoErr("failed to look up visitor pass", err)
	}
	return nil, infra.NewRepoErr(infra.KindConflict, "visitor pass not consumable")
}

func (r *VisitorPassRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.VisitorPassView, error) {
	const q = `SELECT ` + passViewCols + ` FROM visitor_passes WHERE host_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, hostID)
}

func (r *VisitorPassRepository) ListByStatus(ctx context.Context, status string) ([]*queries.VisitorPassView, error) {
	const q = `SELECT ` + passViewCols + ` FROM visitor_passes WHERE status = $1 ORDER BY consumed_at DESC NULLS LAST, created_at DESC`
	return r.list(ctx, q, status)
}

func (r *VisitorPassRepository) ListAll(ctx context.Context) ([]*queries.VisitorPassView, error) {
	const q = `SELECT ` + passViewCols + ` FROM visitor_passes ORDER BY created_at DESC`
	return r.list(ctx, q)
}

func (r *VisitorPassRepository) list(ctx context.Context, q string, args ...any) ([]*queries.VisitorPassView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visitor passes", err)
	}
	defer rows.Close()

	var views []*queries.VisitorPassView
	for rows.Next() {
		view, err := scanPassView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan visitor pass row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

func scanPassView(row pgx.Row) (*queries.VisitorPassView, error) {
	var v queries.VisitorPassView
	err := row.Scan(
		&v.ID, &v.VisitorName, &v.Contact, &v.Purpose, &v.FlatNumber,
		&v.QRCode, &v.NumericCode, &v.ValidFrom, &v.ValidTo,
		&v.Status, &v.CreatedAt, &v.ConsumedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
