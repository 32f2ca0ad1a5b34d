package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"residesk/internal/domain/visitor"
	"residesk/internal/infra"
	"residesk/internal/pkg/clock"
	"residesk/internal/pkg/errs"
	"residesk/internal/usecase/queries"
)

var (
	ErrPassValidation = errs.New("visitor pass validation error")
	ErrDuplicatePass  = errs.New("duplicate pass code")
	ErrPassStore      = errs.New("visitor pass store failure")
)

const (
	ReasonExpired  = "expired"
	ReasonNotFound = "not_found"
)

type CreatePassParams struct {
	VisitorName string
	Contact     string
	Purpose     string
	FlatNumber  string
	ValidFrom   time.Time
	ValidTo     time.Time

	// Optional client-generated codes. Empty values keep the server-generated
	// ones.
	QRCode      string
	NumericCode string
}

// ValidatePassResult carries the gate decision. Accepted passes are consumed
// atomically by the store; a second scan of the same code reports expired.
type ValidatePassResult struct {
	Accepted bool
	Reason   string
	Visitor  *queries.VisitorPassView
}

type VisitorPassRepository interface {
	Create(ctx context.Context, p *visitor.Pass) (*queries.VisitorPassView, error)
	// Consume marks the pass consumed iff it is pending and inside its
	// validity window; the guarded UPDATE is the at-most-once barrier.
	Consume(ctx context.Context, code string, now time.Time) (*queries.VisitorPassView, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Event subjects
const (
	EventVisitorCreated  = "visitor.created"
	EventVisitorConsumed = "visitor.consumed"
	EventBookingCreated  = "booking.created"
	EventBookingCanceled = "booking.cancelled"
)

type VisitorCommands interface {
	CreatePass(ctx context.Context, params CreatePassParams, hostID uuid.UUID) (*queries.VisitorPassView, error)
	ValidatePass(ctx context.Context, code string) (*ValidatePassResult, error)
}

type visitorCommandsImpl struct {
	passRepo VisitorPassRepository
	events   EventPublisher
	clock    clock.Clock
}

func NewVisitorCommands(passRepo VisitorPassRepository, events EventPublisher, clock clock.Clock) VisitorCommands {
	return &visitorCommandsImpl{
		passRepo: passRepo,
		events:   events,
		clock:    clock,
	}
}

func (v *visitorCommandsImpl) CreatePass(ctx context.Context, params CreatePassParams, hostID uuid.UUID) (*queries.VisitorPassView, error) {
	window, err := visitor.NewWindow(params.ValidFrom, params.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, ErrPassValidation)
	}

	pass, err := visitor.NewPass(
		params.VisitorName,
		params.Contact,
		params.Purpose,
		params.FlatNumber,
		window,
		hostID,
		v.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrPassValidation)
	}
	pass.AdoptCodes(params.QRCode, params.NumericCode)

	view, err := v.passRepo.Create(ctx, pass)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePass
		}
		return nil, errs.Mark(err, ErrPassStore)
	}

	v.publish(ctx, EventVisitorCreated, map[string]any{
		"pass_id":     view.ID,
		"flat_number": view.FlatNumber,
		"valid_from":  view.ValidFrom,
		"valid_to":    view.ValidTo,
	})

	return view, nil
}

func (v *visitorCommandsImpl) ValidatePass(ctx context.Context, code string) (*ValidatePassResult, error) {
	view, err := v.passRepo.Consume(ctx, code, v.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return &ValidatePassResult{Accepted: false, Reason: ReasonNotFound}, nil
		case infra.IsKind(err, infra.KindConflict):
			// Already consumed or outside the validity window
			return &ValidatePassResult{Accepted: false, Reason: ReasonExpired}, nil
		default:
			return nil, errs.Mark(err, ErrPassStore)
		}
	}

	v.publish(ctx, EventVisitorConsumed, map[string]any{
		"pass_id":     view.ID,
		"flat_number": view.FlatNumber,
	})

	return &ValidatePassResult{Accepted: true, Visitor: view}, nil
}

func (v *visitorCommandsImpl) publish(ctx context.Context, subject string, payload any) {
	if err := v.events.Publish(ctx, subject, payload); err != nil {
		slog.Warn("event publish failed", "subject", subject, "error", err.Error())
	}
}
