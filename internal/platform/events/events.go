// Package events publishes domain events over NATS. Consumers are external
// (notification workers, audit sinks); publishing is fire-and-forget from the
// caller's point of view.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"residesk/internal/pkg/config"
	"residesk/internal/pkg/errs"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// envelope is the wire shape of every event.
type envelope struct {
	Subject    string          `json:"subject"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type natsPublisher struct {
	conn *nats.Conn
}

// New connects to NATS, or returns the no-op publisher when no URL is
// configured.
func New(cfg config.NATSConfig) (Publisher, func(), error) {
	if cfg.URL == "" {
		return NopPublisher{}, func() {}, nil
	}

	conn, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to nats")
	}

	cleanup := func() { conn.Drain() } //nolint:errcheck
	return &natsPublisher{conn: conn}, cleanup, nil
}

func (p *natsPublisher) Publish(_ context.Context, subject string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	data, err := json.Marshal(envelope{
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal event envelope")
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

// NopPublisher drops every event. Used when NATS is not configured and in
// tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
