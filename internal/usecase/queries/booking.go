package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AmenityView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenity_id"`
	AmenityName string    `json:"amenity_name"`
	UserID      uuid.UUID `json:"user_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AmenityReadStore interface {
	List(ctx context.Context) ([]*AmenityView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	ListAmenities(ctx context.Context) ([]*AmenityView, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	BookingHistory(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	amenities AmenityReadStore
	bookings  BookingReadStore
}

func NewBookingQueries(amenities AmenityReadStore, bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{amenities: amenities, bookings: bookings}
}

func (q *bookingQueriesImpl) ListAmenities(ctx context.Context) ([]*AmenityView, error) {
	return q.amenities.List(ctx)
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.bookings.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.bookings.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) BookingHistory(ctx context.Context) ([]*BookingView, error) {
	return q.bookings.ListAll(ctx)
}
