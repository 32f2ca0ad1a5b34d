package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"residesk/internal/domain/booking"
	"residesk/internal/infra"
	"residesk/internal/pkg/errs"
	"residesk/internal/usecase/queries"
)

var (
	ErrAmenityNotFound = errs.New("amenity not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingConflict = errs.New("booking conflict")
	ErrInvalidRange    = errs.New("invalid date range")
	ErrBookingStore    = errs.New("booking store failure")
)

type RequestBookingParams struct {
	AmenityID uuid.UUID
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

type BookingRepository interface {
	// CreateIfFree inserts the booking inside a transaction that locks the
	// amenity row and re-checks the inclusive overlap predicate against
	// confirmed bookings. Concurrent requests for the same range serialize;
	// the loser gets KindConflict.
	CreateIfFree(ctx context.Context, b *booking.Booking) (*queries.BookingView, error)
	// Cancel is idempotent: cancelling an already-cancelled booking affects
	// no rows and is not an error. Returns false when the id is unknown.
	Cancel(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *booking.Amenity) (*queries.AmenityView, error)
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, params RequestBookingParams, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	events      EventPublisher
}

func NewBookingCommands(bookingRepo BookingRepository, events EventPublisher) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		events:      events,
	}
}

func (b *bookingCommandsImpl) RequestBooking(ctx context.Context, params RequestBookingParams, userID uuid.UUID) (*queries.BookingView, error) {
	dates, err := booking.ParseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	entity := booking.NewBooking(params.AmenityID, userID, dates)

	view, err := b.bookingRepo.CreateIfFree(ctx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBookingConflict
		case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrAmenityNotFound
		default:
			return nil, errs.Mark(err, ErrBookingStore)
		}
	}

	b.publish(ctx, EventBookingCreated, map[string]any{
		"booking_id": view.ID,
		"amenity_id": view.AmenityID,
		"start_date": view.StartDate,
		"end_date":   view.EndDate,
	})

	return view, nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, id, userID uuid.UUID) error {
	found, err := b.bookingRepo.Cancel(ctx, id, userID)
	if err != nil {
		return errs.Mark(err, ErrBookingStore)
	}
	if !found {
		return ErrBookingNotFound
	}

	b.publish(ctx, EventBookingCanceled, map[string]any{"booking_id": id})
	return nil
}

func (b *bookingCommandsImpl) publish(ctx context.Context, subject string, payload any) {
	if err := b.events.Publish(ctx, subject, payload); err != nil {
		slog.Warn("event publish failed", "subject", subject, "error", err.Error())
	}
}
