package request

import "time"

// CreateVisitorRequest mirrors the mobile app's payload: the client composes
// the validity window and generates the codes, the server is the source of
// truth for uniqueness and consumption.
type CreateVisitorRequest struct {
	Name        string    `json:"name" binding:"required"`
	Contact     string    `json:"contact" binding:"required"`
	Purpose     string    `json:"purpose" binding:"required"`
	FlatNumber  string    `json:"flatNumber" binding:"required"`
	QRCode      string    `json:"qrCode"`
	NumericCode string    `json:"numericCode"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
}

type ValidateVisitorRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
}
