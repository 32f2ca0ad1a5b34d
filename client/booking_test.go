//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"residesk/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestIsOverlapping(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB int
		want                       bool
	}{
		{"disjoint before", 1, 3, 4, 6, false},
		{"disjoint after", 7, 9, 4, 6, false},
		{"touching at end", 1, 4, 4, 6, true},
		{"touching at start", 6, 8, 4, 6, true},
		{"contained", 4, 5, 3, 7, true},
		{"containing", 3, 7, 4, 5, true},
		{"identical", 4, 6, 4, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.IsOverlapping(day(tt.startA), day(tt.endA), day(tt.startB), day(tt.endB))
			assert.Equal(t, tt.want, got)
			// Overlap is symmetric
			assert.Equal(t, tt.want, client.IsOverlapping(day(tt.startB), day(tt.endB), day(tt.startA), day(tt.endA)))
		})
	}
}

func TestRequestBooking(t *testing.T) {
	ctx := context.Background()
	const amenityID = "4f9c6f9e-1111-2222-3333-444455556666"

	confirmed := client.Booking{
		ID:        "booking-1",
		AmenityID: amenityID,
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Status:    "confirmed",
	}

	t.Run("books a free range", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/bookings/amenities/"+amenityID, r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2026-03-14", body["start_date"])
			assert.Equal(t, "2026-03-16", body["end_date"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id": "booking-2", "amenityId": amenityID, "status": "confirmed",
			})
		}))

		b, err := c.RequestBooking(ctx, amenityID, day(14), day(16), []client.Booking{confirmed})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", b.Status)
	})

	t.Run("times of day are dropped before the range check", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2026-03-14", body["start_date"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "booking-2", "status": "confirmed"})
		}))

		_, err := c.RequestBooking(ctx, amenityID,
			day(14).Add(23*time.Hour), day(16).Add(time.Minute), nil)
		require.NoError(t, err)
	})

	t.Run("invalid range sends no request", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		for _, tc := range [][2]time.Time{
			{day(16), day(14)},
			{day(14), day(14)},
			// Same calendar day after truncation
			{day(14), day(14).Add(5 * time.Hour)},
		} {
			_, err := c.RequestBooking(ctx, amenityID, tc[0], tc[1], nil)
			var verr *client.ValidationError
			assert.ErrorAs(t, err, &verr)
		}
		assert.Zero(t, calls.Load())
	})

	t.Run("known overlap conflicts without a request", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		// Touching endpoint counts as overlap
		_, err := c.RequestBooking(ctx, amenityID, day(12), day(14), []client.Booking{confirmed})
		var conflict *client.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, amenityID, conflict.AmenityID)
		assert.Zero(t, calls.Load())
	})

	t.Run("cancelled and other-amenity bookings are ignored", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "booking-2", "status": "confirmed"})
		}))

		cancelled := confirmed
		cancelled.Status = "cancelled"
		other := confirmed
		other.AmenityID = "some-other-amenity"

		_, err := c.RequestBooking(ctx, amenityID, day(10), day(12), []client.Booking{cancelled, other})
		assert.NoError(t, err)
	})

	t.Run("server conflict wins over a stale snapshot", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Amenity already booked for the selected dates"})
		}))

		// The snapshot is clean but another resident got there first
		_, err := c.RequestBooking(ctx, amenityID, day(20), day(22), nil)
		var conflict *client.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, conflict.Message, "already booked")
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel succeeds", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "/bookings/booking-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Booking cancelled"})
		}))

		assert.NoError(t, c.CancelBooking(ctx, "booking-1"))
	})

	t.Run("repeat cancel also succeeds", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Booking cancelled"})
		}))

		require.NoError(t, c.CancelBooking(ctx, "booking-1"))
		assert.NoError(t, c.CancelBooking(ctx, "booking-1"))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("unknown booking surfaces 404", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Booking not found"})
		}))

		err := c.CancelBooking(ctx, "nope")
		var remote *client.RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, http.StatusNotFound, remote.Status)
	})
}

func TestRefreshBookings(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/amenities":
			_ = json.NewEncoder(w).Encode([]map[string]string{{"id": "a-1", "name": "Clubhouse"}})
		case "/bookings/me":
			_ = json.NewEncoder(w).Encode([]map[string]string{{"id": "booking-1", "status": "confirmed"}})
		default:
			http.NotFound(w, r)
		}
	}))

	snapshot, err := c.RefreshBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Amenities, 1)
	require.Len(t, snapshot.Bookings, 1)
	assert.Equal(t, "Clubhouse", snapshot.Amenities[0].Name)
}
