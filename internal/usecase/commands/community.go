package commands

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"residesk/internal/domain/announcement"
	"residesk/internal/domain/complaint"
	"residesk/internal/domain/household"
	"residesk/internal/domain/listing"
	"residesk/internal/infra"
	"residesk/internal/pkg/errs"
	"residesk/internal/usecase/queries"
)

var (
	ErrComplaintNotFound  = errs.New("complaint not found")
	ErrComplaintStore     = errs.New("complaint store failure")
	ErrInvalidForm        = errs.New("invalid household form")
	ErrCommunityStore     = errs.New("community store failure")
	ErrComplaintTerminal  = errs.New("complaint already resolved")
	ErrInvalidStatusValue = errs.New("invalid complaint status")
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *complaint.Complaint) (*queries.ComplaintView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status complaint.Status) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *announcement.Announcement) (*queries.AnnouncementView, error)
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) (*queries.ListingView, error)
}

type HouseholdRepository interface {
	Add(ctx context.Context, userID uuid.UUID, kind household.Kind, payload []byte) (*queries.HouseholdEntryView, error)
}

type CreateListingParams struct {
	Title       string
	Description string
	PriceCents  int64
	Contact     string
	ImageURL    string
}

type CommunityCommands interface {
	RaiseComplaint(ctx context.Context, userID uuid.UUID, subject, message string) (*queries.ComplaintView, error)
	UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status string) error
	CreateAnnouncement(ctx context.Context, authorID uuid.UUID, title, body string) (*queries.AnnouncementView, error)
	CreateListing(ctx context.Context, sellerID uuid.UUID, params CreateListingParams) (*queries.ListingView, error)
	AddHouseholdEntry(ctx context.Context, userID uuid.UUID, form household.Form) (*queries.HouseholdEntryView, error)
}

type communityCommandsImpl struct {
	complaintRepo    ComplaintRepository
	announcementRepo AnnouncementRepository
	listingRepo      ListingRepository
	householdRepo    HouseholdRepository
}

func NewCommunityCommands(
	complaintRepo ComplaintRepository,
	announcementRepo AnnouncementRepository,
	listingRepo ListingRepository,
	householdRepo HouseholdRepository,
) CommunityCommands {
	return &communityCommandsImpl{
		complaintRepo:    complaintRepo,
		announcementRepo: announcementRepo,
		listingRepo:      listingRepo,
		householdRepo:    householdRepo,
	}
}

func (c *communityCommandsImpl) RaiseComplaint(ctx context.Context, userID uuid.UUID, subject, message string) (*queries.ComplaintView, error) {
	entity, err := complaint.NewComplaint(userID, subject, message)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidForm)
	}

	view, err := c.complaintRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrComplaintStore)
	}
	return view, nil
}

func (c *communityCommandsImpl) UpdateComplaintStatus(ctx context.Context, id uuid.UUID, status string) error {
	next, err := complaint.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatusValue)
	}

	if err := c.complaintRepo.UpdateStatus(ctx, id, next); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrComplaintNotFound
		case infra.IsKind(err, infra.KindConflict):
			return ErrComplaintTerminal
		default:
			return errs.Mark(err, ErrComplaintStore)
		}
	}
	return nil
}

func (c *communityCommandsImpl) CreateAnnouncement(ctx context.Context, authorID uuid.UUID, title, body string) (*queries.AnnouncementView, error) {
	entity, err := announcement.NewAnnouncement(authorID, title, body)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidForm)
	}

	view, err := c.announcementRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrCommunityStore)
	}
	return view, nil
}

func (c *communityCommandsImpl) CreateListing(ctx context.Context, sellerID uuid.UUID, params CreateListingParams) (*queries.ListingView, error) {
	entity, err := listing.NewListing(sellerID, params.Title, params.Description, params.PriceCents, params.Contact, params.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidForm)
	}

	view, err := c.listingRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrCommunityStore)
	}
	return view, nil
}

func (c *communityCommandsImpl) AddHouseholdEntry(ctx context.Context, userID uuid.UUID, form household.Form) (*queries.HouseholdEntryView, error) {
	if err := form.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidForm)
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidForm)
	}

	view, err := c.householdRepo.Add(ctx, userID, form.Kind(), payload)
	if err != nil {
		return nil, errs.Mark(err, ErrCommunityStore)
	}
	return view, nil
}
