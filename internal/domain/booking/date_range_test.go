//go:build unit

package booking_test

import (
	"testing"
	"time"

	"residesk/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(day(start), day(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		r, err := booking.NewDateRange(day("2026-03-10"), day("2026-03-12"))
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", r.StartString())
		assert.Equal(t, "2026-03-12", r.EndString())
	})

	t.Run("zero-length range is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day("2026-03-10"), day("2026-03-10"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(day("2026-03-12"), day("2026-03-10"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 3, 12, 0, 1, 0, 0, time.UTC)
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", r.StartString())
		assert.Equal(t, "2026-03-12", r.EndString())
	})
}

func TestParseDateRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{name: "valid", start: "2026-03-10", end: "2026-03-12"},
		{name: "bad start format", start: "10-03-2026", end: "2026-03-12", wantErr: true},
		{name: "bad end format", start: "2026-03-10", end: "march 12", wantErr: true},
		{name: "equal dates", start: "2026-03-10", end: "2026-03-10", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.ParseDateRange(tc.start, tc.end)
			if tc.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{
			name: "disjoint before",
			a:    [2]string{"2026-03-01", "2026-03-05"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: false,
		},
		{
			name: "disjoint after",
			a:    [2]string{"2026-03-11", "2026-03-15"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: false,
		},
		{
			name: "partial overlap",
			a:    [2]string{"2026-03-04", "2026-03-08"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: true,
		},
		{
			name: "contained",
			a:    [2]string{"2026-03-07", "2026-03-09"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: true,
		},
		{
			// Ranges are inclusive on both ends, so touching endpoints
			// conflict.
			name: "touching at end",
			a:    [2]string{"2026-03-01", "2026-03-06"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: true,
		},
		{
			name: "touching at start",
			a:    [2]string{"2026-03-10", "2026-03-15"},
			b:    [2]string{"2026-03-06", "2026-03-10"},
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRange(t, tc.a[0], tc.a[1])
			b := mustRange(t, tc.b[0], tc.b[1])
			assert.Equal(t, tc.want, a.Overlaps(b))
			// Overlap is symmetric
			assert.Equal(t, tc.want, b.Overlaps(a))
		})
	}
}

func TestOverlappingEndpoints(t *testing.T) {
	assert.True(t, booking.Overlapping(day("2026-03-01"), day("2026-03-06"), day("2026-03-06"), day("2026-03-10")))
	assert.False(t, booking.Overlapping(day("2026-03-01"), day("2026-03-05"), day("2026-03-06"), day("2026-03-10")))
}
