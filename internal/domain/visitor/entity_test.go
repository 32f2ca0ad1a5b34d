//go:build unit

package visitor_test

import (
	"testing"
	"time"

	"residesk/internal/domain/visitor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
)

func newTestPass(t *testing.T) *visitor.Pass {
	t.Helper()
	w, err := visitor.NewWindow(windowStart, windowEnd)
	require.NoError(t, err)
	p, err := visitor.NewPass("Ravi Kumar", "9876543210", "delivery", "A-101", w, uuid.New(), windowStart)
	require.NoError(t, err)
	return p
}

func TestNewWindow(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := visitor.NewWindow(windowEnd, windowStart)
		assert.ErrorIs(t, err, visitor.ErrInvalidWindow)

		_, err = visitor.NewWindow(windowStart, windowStart)
		assert.ErrorIs(t, err, visitor.ErrInvalidWindow)
	})

	t.Run("contains is inclusive at both edges", func(t *testing.T) {
		w, err := visitor.NewWindow(windowStart, windowEnd)
		require.NoError(t, err)

		assert.True(t, w.Contains(windowStart))
		assert.True(t, w.Contains(windowEnd))
		assert.False(t, w.Contains(windowStart.Add(-time.Second)))
		assert.False(t, w.Contains(windowEnd.Add(time.Second)))
	})
}

func TestComposeWindow(t *testing.T) {
	visitDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2000, 1, 1, 9, 30, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, 17, 45, 0, 0, time.UTC)

	w, err := visitor.ComposeWindow(visitDate, start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), w.From())
	assert.Equal(t, time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC), w.To())
}

func TestNewPass(t *testing.T) {
	w, err := visitor.NewWindow(windowStart, windowEnd)
	require.NoError(t, err)

	cases := []struct {
		name                                  string
		visitorName, contact, purpose, flatNo string
		errIs                                 error
	}{
		{name: "all fields present", visitorName: "Ravi", contact: "987", purpose: "guest", flatNo: "A-1"},
		{name: "missing name", visitorName: " ", contact: "987", purpose: "guest", flatNo: "A-1", errIs: visitor.ErrMissingField},
		{name: "missing contact", visitorName: "Ravi", contact: "", purpose: "guest", flatNo: "A-1", errIs: visitor.ErrMissingField},
		{name: "missing purpose", visitorName: "Ravi", contact: "987", purpose: "", flatNo: "A-1", errIs: visitor.ErrMissingField},
		{name: "missing flat", visitorName: "Ravi", contact: "987", purpose: "guest", flatNo: "", errIs: visitor.ErrMissingField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := visitor.NewPass(tc.visitorName, tc.contact, tc.purpose, tc.flatNo, w, uuid.New(), windowStart)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, visitor.StatusPending, p.Status())
			assert.NotEmpty(t, p.PassCode())
			assert.Len(t, p.OTP(), 6)
		})
	}
}

func TestPassConsume(t *testing.T) {
	t.Run("consume inside the window", func(t *testing.T) {
		p := newTestPass(t)
		now := windowStart.Add(time.Hour)

		require.NoError(t, p.Consume(now))
		assert.Equal(t, visitor.StatusConsumed, p.Status())
		require.NotNil(t, p.ConsumedAt())
		assert.Equal(t, now, *p.ConsumedAt())
	})

	t.Run("consume validates at most once", func(t *testing.T) {
		p := newTestPass(t)
		now := windowStart.Add(time.Hour)

		require.NoError(t, p.Consume(now))
		assert.ErrorIs(t, p.Consume(now.Add(time.Minute)), visitor.ErrAlreadyConsumed)
	})

	t.Run("consume at the window edges", func(t *testing.T) {
		p := newTestPass(t)
		require.NoError(t, p.Consume(windowStart))

		p2 := newTestPass(t)
		require.NoError(t, p2.Consume(windowEnd))
	})

	t.Run("consume outside the window", func(t *testing.T) {
		p := newTestPass(t)
		assert.ErrorIs(t, p.Consume(windowStart.Add(-time.Minute)), visitor.ErrOutsideWindow)
		assert.ErrorIs(t, p.Consume(windowEnd.Add(time.Minute)), visitor.ErrOutsideWindow)
		assert.Equal(t, visitor.StatusPending, p.Status())
	})
}

func TestPassHasExpired(t *testing.T) {
	p := newTestPass(t)

	assert.False(t, p.HasExpired(windowEnd))
	assert.True(t, p.HasExpired(windowEnd.Add(time.Second)))

	require.NoError(t, p.Consume(windowStart))
	assert.False(t, p.HasExpired(windowEnd.Add(time.Hour)), "a consumed pass is not expired")
}

func TestPassAdoptCodes(t *testing.T) {
	p := newTestPass(t)
	generated := p.PassCode()

	p.AdoptCodes("", "")
	assert.Equal(t, generated, p.PassCode(), "empty codes keep the generated ones")

	p.AdoptCodes("Ravi-A-101-1767945600000", "123456")
	assert.Equal(t, "Ravi-A-101-1767945600000", p.PassCode())
	assert.Equal(t, "123456", p.OTP())
}
