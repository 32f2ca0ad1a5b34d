package queries

import (
	"context"
	"encoding/json"
	"time"

	"residesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type ComplaintView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnnouncementView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ListingView struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	SellerName  string    `json:"seller_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Contact     string    `json:"contact"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type HouseholdEntryView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type ProfileView struct {
	User    *UserView             `json:"user"`
	Entries []*HouseholdEntryView `json:"entries"`
}

type ComplaintReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ComplaintView, error)
	ListAll(ctx context.Context) ([]*ComplaintView, error)
}

type AnnouncementReadStore interface {
	List(ctx context.Context) ([]*AnnouncementView, error)
}

type ListingReadStore interface {
	List(ctx context.Context) ([]*ListingView, error)
}

type HouseholdReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*HouseholdEntryView, error)
}

type CommunityQueries interface {
	ListMyComplaints(ctx context.Context, userID uuid.UUID) ([]*ComplaintView, error)
	ListAllComplaints(ctx context.Context) ([]*ComplaintView, error)
	ListAnnouncements(ctx context.Context) ([]*AnnouncementView, error)
	ListListings(ctx context.Context) ([]*ListingView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type communityQueriesImpl struct {
	complaints    ComplaintReadStore
	announcements AnnouncementReadStore
	listings      ListingReadStore
	household     HouseholdReadStore
	users         UserReadStore
}

func NewCommunityQueries(
	complaints ComplaintReadStore,
	announcements AnnouncementReadStore,
	listings ListingReadStore,
	household HouseholdReadStore,
	users UserReadStore,
) CommunityQueries {
	return &communityQueriesImpl{
		complaints:    complaints,
		announcements: announcements,
		listings:      listings,
		household:     household,
		users:         users,
	}
}

func (q *communityQueriesImpl) ListMyComplaints(ctx context.Context, userID uuid.UUID) ([]*ComplaintView, error) {
	return q.complaints.ListByUser(ctx, userID)
}

func (q *communityQueriesImpl) ListAllComplaints(ctx context.Context) ([]*ComplaintView, error) {
	return q.complaints.ListAll(ctx)
}

func (q *communityQueriesImpl) ListAnnouncements(ctx context.Context) ([]*AnnouncementView, error) {
	return q.announcements.List(ctx)
}

func (q *communityQueriesImpl) ListListings(ctx context.Context) ([]*ListingView, error) {
	return q.listings.List(ctx)
}

func (q *communityQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	userView, err := q.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}

	entries, err := q.household.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{User: userView, Entries: entries}, nil
}
