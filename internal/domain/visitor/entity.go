package visitor

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingField       = errors.New("required field missing")
	ErrInvalidWindow      = errors.New("pass start must be before pass end")
	ErrAlreadyConsumed    = errors.New("pass already consumed")
	ErrOutsideWindow      = errors.New("pass outside validity window")
	ErrTerminalTransition = errors.New("pass is in a terminal state")
)

// Window is the validity interval of a pass, composed from a visit date and
// two times of day on that date.
type Window struct {
	from time.Time
	to   time.Time
}

func NewWindow(from, to time.Time) (Window, error) {
	if !from.Before(to) {
		return Window{}, ErrInvalidWindow
	}
	return Window{from: from, to: to}, nil
}

// ComposeWindow applies start/end times of day onto the visit date.
func ComposeWindow(visitDate time.Time, startTime, endTime time.Time) (Window, error) {
	from := atTimeOfDay(visitDate, startTime)
	to := atTimeOfDay(visitDate, endTime)
	return NewWindow(from, to)
}

func atTimeOfDay(date time.Time, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, date.Location())
}

func (w Window) From() time.Time { return w.from }
func (w Window) To() time.Time   { return w.to }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}

// Pass is a gate-verifiable visitor pass. Created by a resident, consumed at
// most once by gate staff.
type Pass struct {
	id          uuid.UUID
	visitorName string
	contact     string
	purpose     string
	flatNumber  string
	passCode    string
	otp         string
	window      Window
	status      Status
	hostID      uuid.UUID
	createdAt   time.Time
	consumedAt  *time.Time
}

func NewPass(visitorName, contact, purpose, flatNumber string, window Window, hostID uuid.UUID, now time.Time) (*Pass, error) {
	for _, f := range []string{visitorName, contact, purpose, flatNumber} {
		if strings.TrimSpace(f) == "" {
			return nil, ErrMissingField
		}
	}

	return &Pass{
		id:          uuid.New(),
		visitorName: visitorName,
		contact:     contact,
		purpose:     purpose,
		flatNumber:  flatNumber,
		passCode:    NewPassCode(visitorName, flatNumber, now),
		otp:         NewOTP(),
		window:      window,
		status:      StatusPending,
		hostID:      hostID,
	}, nil
}

func ReconstructPass(
	id uuid.UUID,
	visitorName, contact, purpose, flatNumber, passCode, otp string,
	window Window,
	status Status,
	hostID uuid.UUID,
	createdAt time.Time,
	consumedAt *time.Time,
) *Pass {
	return &Pass{
		id:          id,
		visitorName: visitorName,
		contact:     contact,
		purpose:     purpose,
		flatNumber:  flatNumber,
		passCode:    passCode,
		otp:         otp,
		window:      window,
		status:      status,
		hostID:      hostID,
		createdAt:   createdAt,
		consumedAt:  consumedAt,
	}
}

// AdoptCodes replaces the generated codes with client-supplied ones. Mobile
// clients generate the pass code locally so the QR can render before the
// request round-trips.
func (p *Pass) AdoptCodes(passCode, otp string) {
	if passCode != "" {
		p.passCode = passCode
	}
	if otp != "" {
		p.otp = otp
	}
}

// Consume transitions the pass to consumed. Exactly-once semantics at the
// store level are enforced by the repository's guarded UPDATE; this method
// holds the same invariant for in-memory use.
func (p *Pass) Consume(now time.Time) error {
	if p.status.IsTerminal() {
		if p.status == StatusConsumed {
			return ErrAlreadyConsumed
		}
		return ErrTerminalTransition
	}
	if !p.window.Contains(now) {
		return ErrOutsideWindow
	}
	p.status = StatusConsumed
	p.consumedAt = &now
	return nil
}

// HasExpired reports whether the pass was never consumed and its window has
// closed.
func (p *Pass) HasExpired(now time.Time) bool {
	return p.status == StatusPending && now.After(p.window.To())
}

func (p *Pass) ID() uuid.UUID          { return p.id }
func (p *Pass) VisitorName() string    { return p.visitorName }
func (p *Pass) Contact() string        { return p.contact }
func (p *Pass) Purpose() string        { return p.purpose }
func (p *Pass) FlatNumber() string     { return p.flatNumber }
func (p *Pass) PassCode() string       { return p.passCode }
func (p *Pass) OTP() string            { return p.otp }
func (p *Pass) Window() Window         { return p.window }
func (p *Pass) Status() Status         { return p.status }
func (p *Pass) HostID() uuid.UUID      { return p.hostID }
func (p *Pass) CreatedAt() time.Time   { return p.createdAt }
func (p *Pass) ConsumedAt() *time.Time { return p.consumedAt }
