package queries

import (
	"context"
	"time"

	"residesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	ApartmentName string     `json:"apartment_name"`
	FloorNumber   string     `json:"floor_number"`
	FlatNumber    string     `json:"flat_number"`
	Approved      bool       `json:"approved"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	ListByRole(ctx context.Context, role string) ([]*UserView, error)
	ListPending(ctx context.Context) ([]*UserView, error)
}

// ApartmentReadStore lists the apartment directory shown on registration.
type ApartmentReadStore interface {
	ListNames(ctx context.Context) ([]string, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListUsers(ctx context.Context, role string) ([]*UserView, error)
	ListPendingResidents(ctx context.Context) ([]*UserView, error)
	ListApartments(ctx context.Context) ([]string, error)
}

type userQueriesImpl struct {
	readStore  UserReadStore
	apartments ApartmentReadStore
}

func NewUserQueries(readStore UserReadStore, apartments ApartmentReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore, apartments: apartments}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context, role string) ([]*UserView, error) {
	return q.readStore.ListByRole(ctx, role)
}

func (q *userQueriesImpl) ListPendingResidents(ctx context.Context) ([]*UserView, error) {
	return q.readStore.ListPending(ctx)
}

func (q *userQueriesImpl) ListApartments(ctx context.Context) ([]string, error) {
	return q.apartments.ListNames(ctx)
}
