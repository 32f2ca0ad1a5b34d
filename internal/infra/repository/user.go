package repository

import (
	"context"
	"time"

	"residesk/internal/domain/user"
	"residesk/internal/infra"
	"residesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const queryTimeout = 3 * time.Second

const userViewCols = `id, name, email, phone, role,
apartment_name, floor_number, flat_number,
approved, last_login, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `INSERT INTO users (
		id, name, email, phone, password_hash, role,
		apartment_name, floor_number, flat_number, approved
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	RETURNING id`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, q,
		u.ID(), u.Name(), u.Email().Value(), u.Phone(), u.PasswordHash(), u.Role().String(),
		u.ApartmentName(), u.FloorNumber(), u.FlatNumber(), u.IsApproved(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.pool.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) error {
	const q = `UPDATE users SET
		name = $2, phone = $3,
		apartment_name = $4, floor_number = $5, flat_number = $6,
		updated_at = now()
	WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, id, p.Name, p.Phone, p.ApartmentName, p.FloorNumber, p.FlatNumber)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}

func (r *UserRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `UPDATE users SET approved = true, updated_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to approve user", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM users WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	ct, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete user", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `SELECT ` + userViewCols + ` FROM users WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	view, err := scanUserView(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return view, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const q = `SELECT ` + userViewCols + `, password_hash FROM users WHERE email = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		v    queries.UserView
		hash string
	)
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role,
		&v.ApartmentName, &v.FloorNumber, &v.FlatNumber,
		&v.Approved, &v.LastLogin, &v.CreatedAt,
		&hash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*queries.UserView, error) {
	const q = `SELECT ` + userViewCols + ` FROM users WHERE role = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, role)
}

func (r *UserRepository) ListPending(ctx context.Context) ([]*queries.UserView, error) {
	const q = `SELECT ` + userViewCols + ` FROM users WHERE role = 'resident' AND NOT approved ORDER BY created_at`
	return r.list(ctx, q)
}

func (r *UserRepository) list(ctx context.Context, q string, args ...any) ([]*queries.UserView, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var views []*queries.UserView
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

type ApartmentRepository struct {
	pool *pgxpool.Pool
}

func NewApartmentRepository(pool *pgxpool.Pool) *ApartmentRepository {
	return &ApartmentRepository{pool: pool}
}

func (r *ApartmentRepository) ListNames(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM apartments ORDER BY name`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan apartment row", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var v queries.UserView
	err := row.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Role,
		&v.ApartmentName, &v.FloorNumber, &v.FlatNumber,
		&v.Approved, &v.LastLogin, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
