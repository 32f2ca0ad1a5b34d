package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrMissingName      = errors.New("amenity name is required")
)

// Amenity is a shared bookable resource (gym, clubhouse, court).
type Amenity struct {
	id          uuid.UUID
	name        string
	description string
	imageURL    string
	createdAt   time.Time
}

func NewAmenity(name, description, imageURL string) (*Amenity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	return &Amenity{
		id:          uuid.New(),
		name:        name,
		description: description,
		imageURL:    imageURL,
	}, nil
}

func ReconstructAmenity(id uuid.UUID, name, description, imageURL string, createdAt time.Time) *Amenity {
	return &Amenity{id: id, name: name, description: description, imageURL: imageURL, createdAt: createdAt}
}

func (a *Amenity) ID() uuid.UUID        { return a.id }
func (a *Amenity) Name() string         { return a.name }
func (a *Amenity) Description() string  { return a.description }
func (a *Amenity) ImageURL() string     { return a.imageURL }
func (a *Amenity) CreatedAt() time.Time { return a.createdAt }

// Booking reserves an amenity for an inclusive date range. Confirmed bookings
// on one amenity must be pairwise non-overlapping; cancellation is terminal.
type Booking struct {
	id        uuid.UUID
	amenityID uuid.UUID
	userID    uuid.UUID
	dates     DateRange
	status    Status
	createdAt time.Time
}

func NewBooking(amenityID, userID uuid.UUID, dates DateRange) *Booking {
	return &Booking{
		id:        uuid.New(),
		amenityID: amenityID,
		userID:    userID,
		dates:     dates,
		status:    StatusConfirmed,
	}
}

func ReconstructBooking(id, amenityID, userID uuid.UUID, dates DateRange, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		amenityID: amenityID,
		userID:    userID,
		dates:     dates,
		status:    status,
		createdAt: createdAt,
	}
}

// Cancel collapses to the terminal cancelled state. Cancelling an already
// cancelled booking reports ErrAlreadyCancelled so callers can choose to
// treat it as a no-op.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.amenityID != other.amenityID {
		return false
	}
	if !b.IsActive() || !other.IsActive() {
		return false
	}
	return b.dates.Overlaps(other.dates)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) AmenityID() uuid.UUID { return b.amenityID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
