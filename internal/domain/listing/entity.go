package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingField = errors.New("required field missing")
	ErrInvalidPrice = errors.New("price cannot be negative")
)

// Listing is a resident marketplace item.
type Listing struct {
	id          uuid.UUID
	sellerID    uuid.UUID
	title       string
	description string
	priceCents  int64
	contact     string
	imageURL    string
	createdAt   time.Time
}

func NewListing(sellerID uuid.UUID, title, description string, priceCents int64, contact, imageURL string) (*Listing, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(contact) == "" {
		return nil, ErrMissingField
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Listing{
		id:          uuid.New(),
		sellerID:    sellerID,
		title:       title,
		description: description,
		priceCents:  priceCents,
		contact:     contact,
		imageURL:    imageURL,
	}, nil
}

func ReconstructListing(id, sellerID uuid.UUID, title, description string, priceCents int64, contact, imageURL string, createdAt time.Time) *Listing {
	return &Listing{
		id:          id,
		sellerID:    sellerID,
		title:       title,
		description: description,
		priceCents:  priceCents,
		contact:     contact,
		imageURL:    imageURL,
		createdAt:   createdAt,
	}
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) SellerID() uuid.UUID  { return l.sellerID }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) PriceCents() int64    { return l.priceCents }
func (l *Listing) Contact() string      { return l.contact }
func (l *Listing) ImageURL() string     { return l.imageURL }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
