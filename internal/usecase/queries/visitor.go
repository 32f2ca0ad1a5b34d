package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"residesk/internal/domain/visitor"
	"residesk/internal/pkg/clock"
)

type VisitorPassView struct {
	ID          uuid.UUID  `json:"id"`
	VisitorName string     `json:"visitor_name"`
	Contact     string     `json:"contact"`
	Purpose     string     `json:"purpose"`
	FlatNumber  string     `json:"flat_number"`
	QRCode      string     `json:"qr_code"`
	NumericCode string     `json:"numeric_code"`
	ValidFrom   time.Time  `json:"start_time"`
	ValidTo     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConsumedAt  *time.Time `json:"consumed_at,omitempty"`
}

type VisitorPassReadStore interface {
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*VisitorPassView, error)
	ListByStatus(ctx context.Context, status string) ([]*VisitorPassView, error)
	ListAll(ctx context.Context) ([]*VisitorPassView, error)
}

type VisitorQueries interface {
	ListMyPasses(ctx context.Context, hostID uuid.UUID) ([]*VisitorPassView, error)
	ListScanned(ctx context.Context) ([]*VisitorPassView, error)
	ListLogs(ctx context.Context) ([]*VisitorPassView, error)
}

type visitorQueriesImpl struct {
	readStore VisitorPassReadStore
	clock     clock.Clock
}

func NewVisitorQueries(readStore VisitorPassReadStore, clk clock.Clock) VisitorQueries {
	return &visitorQueriesImpl{readStore: readStore, clock: clk}
}

func (q *visitorQueriesImpl) ListMyPasses(ctx context.Context, hostID uuid.UUID) ([]*VisitorPassView, error) {
	views, err := q.readStore.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return q.withLapsed(views), nil
}

func (q *visitorQueriesImpl) ListScanned(ctx context.Context) ([]*VisitorPassView, error) {
	return q.readStore.ListByStatus(ctx, string(visitor.StatusConsumed))
}

func (q *visitorQueriesImpl) ListLogs(ctx context.Context) ([]*VisitorPassView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return q.withLapsed(views), nil
}

// withLapsed rewrites passes whose window closed without a scan. The store
// keeps them pending until the gate touches them; readers see them expired.
func (q *visitorQueriesImpl) withLapsed(views []*VisitorPassView) []*VisitorPassView {
	now := q.clock.Now()
	for _, v := range views {
		if v.Status == string(visitor.StatusPending) && now.After(v.ValidTo) {
			v.Status = string(visitor.StatusExpired)
		}
	}
	return views
}
