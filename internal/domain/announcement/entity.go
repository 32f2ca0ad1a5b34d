package announcement

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingField = errors.New("required field missing")

type Announcement struct {
	id        uuid.UUID
	title     string
	body      string
	authorID  uuid.UUID
	createdAt time.Time
}

func NewAnnouncement(authorID uuid.UUID, title, body string) (*Announcement, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrMissingField
	}
	return &Announcement{
		id:       uuid.New(),
		title:    title,
		body:     body,
		authorID: authorID,
	}, nil
}

func ReconstructAnnouncement(id, authorID uuid.UUID, title, body string, createdAt time.Time) *Announcement {
	return &Announcement{id: id, title: title, body: body, authorID: authorID, createdAt: createdAt}
}

func (a *Announcement) ID() uuid.UUID        { return a.id }
func (a *Announcement) Title() string        { return a.title }
func (a *Announcement) Body() string         { return a.body }
func (a *Announcement) AuthorID() uuid.UUID  { return a.authorID }
func (a *Announcement) CreatedAt() time.Time { return a.createdAt }
