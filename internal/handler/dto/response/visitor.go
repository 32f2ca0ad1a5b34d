package response

import (
	"time"

	"github.com/google/uuid"

	"residesk/internal/usecase/queries"
)

type VisitorResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	Purpose     string     `json:"purpose"`
	FlatNumber  string     `json:"flatNumber"`
	QRCode      string     `json:"qrCode"`
	NumericCode string     `json:"numericCode"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ConsumedAt  *time.Time `json:"scannedAt,omitempty"`
}

// ValidateVisitorResponse keeps the gate app's contract: a rejected scan is a
// 200 with expired=true, not an HTTP error.
type ValidateVisitorResponse struct {
	Expired bool             `json:"expired"`
	Reason  string           `json:"reason,omitempty"`
	Visitor *VisitorResponse `json:"visitor,omitempty"`
}

func FromVisitorPassView(view *queries.VisitorPassView) *VisitorResponse {
	return &VisitorResponse{
		ID:          view.ID,
		Name:        view.VisitorName,
		Contact:     view.Contact,
		Purpose:     view.Purpose,
		FlatNumber:  view.FlatNumber,
		QRCode:      view.QRCode,
		NumericCode: view.NumericCode,
		StartTime:   view.ValidFrom,
		EndTime:     view.ValidTo,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		ConsumedAt:  view.ConsumedAt,
	}
}

func FromVisitorPassViews(views []*queries.VisitorPassView) []*VisitorResponse {
	out := make([]*VisitorResponse, len(views))
	for i, v := range views {
		out[i] = FromVisitorPassView(v)
	}
	return out
}
