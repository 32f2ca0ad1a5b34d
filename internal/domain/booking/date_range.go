package booking

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must be before end date")

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange requires a strictly increasing range: a zero-length range is
// rejected here even though touching ranges still count as overlapping below.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	return NewDateRange(s, e)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) StartString() string { return r.start.Format(DateLayout) }
func (r DateRange) EndString() string   { return r.end.Format(DateLayout) }

// Overlaps uses inclusive-inclusive comparison: ranges that merely touch at
// an endpoint still conflict. Existing bookings data depends on this
// tie-break, so it must not be changed to half-open.
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.end.Before(other.start) || r.start.After(other.end))
}

// Overlapping is the same rule over raw endpoints, for callers holding
// unparsed snapshot rows.
func Overlapping(startA, endA, startB, endB time.Time) bool {
	return !(endA.Before(startB) || startA.After(endB))
}
