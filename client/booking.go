package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type Amenity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type Booking struct {
	ID          string `json:"id"`
	AmenityID   string `json:"amenityId"`
	AmenityName string `json:"amenityName"`
	UserID      string `json:"userId"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

// IsOverlapping reports whether two inclusive date ranges collide. Touching
// endpoints count as a collision: a booking ending on the 10th blocks one
// starting on the 10th.
func IsOverlapping(startA, endA, startB, endB time.Time) bool {
	return !(endA.Before(startB) || startA.After(endB))
}

// Amenities lists bookable amenities.
func (c *Client) Amenities(ctx context.Context) ([]Amenity, error) {
	var amenities []Amenity
	if err := c.do(ctx, http.MethodGet, "/admin/amenities", nil, &amenities, true); err != nil {
		return nil, err
	}
	return amenities, nil
}

// MyBookings lists the logged-in user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/me", nil, &bookings, true); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingSnapshot is amenities plus the caller's bookings, fetched together.
type BookingSnapshot struct {
	Amenities []Amenity
	Bookings  []Booking
}

// RefreshBookings fetches amenities and the caller's bookings concurrently.
func (c *Client) RefreshBookings(ctx context.Context) (*BookingSnapshot, error) {
	var snapshot BookingSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		amenities, err := c.Amenities(gctx)
		if err != nil {
			return err
		}
		snapshot.Amenities = amenities
		return nil
	})
	g.Go(func() error {
		bookings, err := c.MyBookings(gctx)
		if err != nil {
			return err
		}
		snapshot.Bookings = bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RequestBooking books an amenity for an inclusive date range. The snapshot
// check is advisory only, against the caller's own bookings already fetched;
// the server re-checks all confirmed bookings inside a transaction and its
// verdict wins.
func (c *Client) RequestBooking(ctx context.Context, amenityID string, startDate, endDate time.Time, known []Booking) (*Booking, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if !start.Before(end) {
		return nil, &ValidationError{Field: "end_date", Reason: "must be after start date"}
	}

	for _, b := range known {
		if b.AmenityID != amenityID || b.Status != "confirmed" {
			continue
		}
		bStart, err1 := time.Parse(dateLayout, b.StartDate)
		bEnd, err2 := time.Parse(dateLayout, b.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		if IsOverlapping(start, end, bStart, bEnd) {
			return nil, &ConflictError{AmenityID: amenityID, Message: "dates overlap an existing booking"}
		}
	}

	var booking Booking
	err := c.do(ctx, http.MethodPost, "/bookings/amenities/"+amenityID, map[string]string{
		"start_date": start.Format(dateLayout),
		"end_date":   end.Format(dateLayout),
	}, &booking, true)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusConflict {
			return nil, &ConflictError{AmenityID: amenityID, Message: remote.Message}
		}
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking. Cancelling one that is already cancelled
// succeeds: the server collapses repeat cancels into a no-op.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+bookingID, nil, nil, true)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
