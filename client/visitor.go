package client

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"
)

// Visitor is the wire shape of a visitor pass.
type Visitor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	Purpose     string     `json:"purpose"`
	FlatNumber  string     `json:"flatNumber"`
	QRCode      string     `json:"qrCode"`
	NumericCode string     `json:"numericCode"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ScannedAt   *time.Time `json:"scannedAt,omitempty"`
}

type CreatePassInput struct {
	Name       string
	Contact    string
	Purpose    string
	FlatNumber string
	VisitDate  time.Time
	StartTime  time.Time // time of day on VisitDate
	EndTime    time.Time // time of day on VisitDate
}

// GeneratePassCode builds the QR payload from the visitor name, flat number
// and creation timestamp. Codes from two passes created in the same
// millisecond for the same visitor would collide; the server's uniqueness
// constraint is the backstop.
func GeneratePassCode(name, flatNumber string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%d", name, flatNumber, now.UnixMilli())
}

// GenerateNumericCode returns a uniform 6-digit code in [100000, 999999].
// Codes with a leading zero are deliberately excluded to stay compatible with
// installed gate apps that parse the code as an integer.
func GenerateNumericCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken; fall back to the
		// timestamp rather than panic in the UI path.
		return fmt.Sprintf("%06d", 100000+time.Now().UnixNano()%900000)
	}
	return fmt.Sprintf("%d", n.Int64()+100000)
}

// CreatePass validates locally, composes the validity window onto the visit
// date, generates both codes, and registers the pass. No request is sent when
// validation fails.
func (c *Client) CreatePass(ctx context.Context, in CreatePassInput) (*Visitor, error) {
	if err := validatePassInput(in); err != nil {
		return nil, err
	}

	start := composeWindowEdge(in.VisitDate, in.StartTime)
	end := composeWindowEdge(in.VisitDate, in.EndTime)
	if !start.Before(end) {
		return nil, &ValidationError{Field: "endTime", Reason: "must be after start time"}
	}

	now := time.Now()
	payload := map[string]any{
		"name":        in.Name,
		"contact":     in.Contact,
		"purpose":     in.Purpose,
		"flatNumber":  in.FlatNumber,
		"qrCode":      GeneratePassCode(in.Name, in.FlatNumber, now),
		"numericCode": GenerateNumericCode(),
		"startTime":   start,
		"endTime":     end,
	}

	var visitor Visitor
	if err := c.do(ctx, http.MethodPost, "/visitors", payload, &visitor, true); err != nil {
		return nil, err
	}
	return &visitor, nil
}

// ValidationOutcome is the gate decision for one scan.
type ValidationOutcome struct {
	Accepted bool
	Reason   string
	Visitor  *Visitor
}

// ValidatePass submits a scanned code exactly once. A failure is surfaced to
// the operator, never retried: a retry after an ambiguous failure could
// double-consume a pass that the first attempt already burned.
func (c *Client) ValidatePass(ctx context.Context, code string) (*ValidationOutcome, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &ValidationError{Field: "qrCode", Reason: "required"}
	}

	var resp struct {
		Expired bool     `json:"expired"`
		Reason  string   `json:"reason"`
		Visitor *Visitor `json:"visitor"`
	}
	err := c.do(ctx, http.MethodPost, "/visitors/validate", map[string]string{
		"qrCode": code,
	}, &resp, true)
	if err != nil {
		return nil, err
	}

	if resp.Expired {
		return &ValidationOutcome{Accepted: false, Reason: resp.Reason}, nil
	}
	return &ValidationOutcome{Accepted: true, Visitor: resp.Visitor}, nil
}

// MyPasses lists passes created by the logged-in resident.
func (c *Client) MyPasses(ctx context.Context) ([]Visitor, error) {
	var visitors []Visitor
	if err := c.do(ctx, http.MethodGet, "/visitors", nil, &visitors, true); err != nil {
		return nil, err
	}
	return visitors, nil
}

// ScannedPasses lists passes already consumed at the gate.
func (c *Client) ScannedPasses(ctx context.Context) ([]Visitor, error) {
	var visitors []Visitor
	if err := c.do(ctx, http.MethodGet, "/visitors/scanned", nil, &visitors, true); err != nil {
		return nil, err
	}
	return visitors, nil
}

// VisitorLogs lists the full pass history (admin).
func (c *Client) VisitorLogs(ctx context.Context) ([]Visitor, error) {
	var visitors []Visitor
	if err := c.do(ctx, http.MethodGet, "/admin/visitor-logs", nil, &visitors, true); err != nil {
		return nil, err
	}
	return visitors, nil
}

func validatePassInput(in CreatePassInput) error {
	for _, f := range []struct {
		name, value string
	}{
		{"name", in.Name},
		{"contact", in.Contact},
		{"purpose", in.Purpose},
		{"flatNumber", in.FlatNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Reason: "required"}
		}
	}
	if in.VisitDate.IsZero() {
		return &ValidationError{Field: "visitDate", Reason: "required"}
	}
	return nil
}

func composeWindowEdge(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, date.Location())
}
