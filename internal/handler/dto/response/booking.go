package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"residesk/internal/usecase/queries"
)

type AmenityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenityId"`
	AmenityName string    `json:"amenityName"`
	UserID      uuid.UUID `json:"userId"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAmenityView(view *queries.AmenityView) *AmenityResponse {
	var resp AmenityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAmenityViews(views []*queries.AmenityView) []*AmenityResponse {
	out := make([]*AmenityResponse, len(views))
	for i, v := range views {
		out[i] = FromAmenityView(v)
	}
	return out
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
