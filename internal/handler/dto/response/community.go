package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"residesk/internal/usecase/queries"
)

type ComplaintResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"sellerId"`
	SellerName  string    `json:"sellerName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Contact     string    `json:"contact"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type HouseholdEntryResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ProfileResponse struct {
	User    *UserResponse             `json:"user"`
	Entries []*HouseholdEntryResponse `json:"entries"`
}

func FromComplaintView(view *queries.ComplaintView) *ComplaintResponse {
	var resp ComplaintResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromComplaintViews(views []*queries.ComplaintView) []*ComplaintResponse {
	out := make([]*ComplaintResponse, len(views))
	for i, v := range views {
		out[i] = FromComplaintView(v)
	}
	return out
}

func FromAnnouncementView(view *queries.AnnouncementView) *AnnouncementResponse {
	var resp AnnouncementResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAnnouncementViews(views []*queries.AnnouncementView) []*AnnouncementResponse {
	out := make([]*AnnouncementResponse, len(views))
	for i, v := range views {
		out[i] = FromAnnouncementView(v)
	}
	return out
}

func FromListingView(view *queries.ListingView) *ListingResponse {
	var resp ListingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	out := make([]*ListingResponse, len(views))
	for i, v := range views {
		out[i] = FromListingView(v)
	}
	return out
}

func FromHouseholdEntryView(view *queries.HouseholdEntryView) *HouseholdEntryResponse {
	return &HouseholdEntryResponse{
		ID:        view.ID,
		Kind:      view.Kind,
		Payload:   view.Payload,
		CreatedAt: view.CreatedAt,
	}
}

func FromProfileView(view *queries.ProfileView) *ProfileResponse {
	entries := make([]*HouseholdEntryResponse, len(view.Entries))
	for i, e := range view.Entries {
		entries[i] = FromHouseholdEntryView(e)
	}
	return &ProfileResponse{
		User:    FromUserView(view.User),
		Entries: entries,
	}
}
