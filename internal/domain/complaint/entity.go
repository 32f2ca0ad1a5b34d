package complaint

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingField      = errors.New("required field missing")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrAlreadyResolved   = errors.New("complaint already resolved")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Complaint struct {
	id        uuid.UUID
	userID    uuid.UUID
	subject   string
	message   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewComplaint(userID uuid.UUID, subject, message string) (*Complaint, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrMissingField
	}
	return &Complaint{
		id:      uuid.New(),
		userID:  userID,
		subject: subject,
		message: message,
		status:  StatusOpen,
	}, nil
}

func ReconstructComplaint(id, userID uuid.UUID, subject, message string, status Status, createdAt, updatedAt time.Time) *Complaint {
	return &Complaint{
		id:        id,
		userID:    userID,
		subject:   subject,
		message:   message,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the complaint forward; resolved is terminal.
func (c *Complaint) Transition(next Status) error {
	if c.status == StatusResolved {
		return ErrAlreadyResolved
	}
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	c.status = next
	return nil
}

func (c *Complaint) ID() uuid.UUID        { return c.id }
func (c *Complaint) UserID() uuid.UUID    { return c.userID }
func (c *Complaint) Subject() string      { return c.subject }
func (c *Complaint) Message() string      { return c.message }
func (c *Complaint) Status() Status       { return c.status }
func (c *Complaint) CreatedAt() time.Time { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time { return c.updatedAt }
