package commands

import (
	"context"

	"github.com/google/uuid"

	"residesk/internal/domain/booking"
	"residesk/internal/infra"
	"residesk/internal/pkg/errs"
	"residesk/internal/usecase/queries"
)

var (
	ErrResidentNotFound = errs.New("resident not found")
	ErrAdminStore       = errs.New("admin store failure")
	ErrInvalidAmenity   = errs.New("invalid amenity")
)

type AdminUserRepository interface {
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateAmenityParams struct {
	Name        string
	Description string
	ImageURL    string
}

type AdminCommands interface {
	ApproveResident(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	CreateAmenity(ctx context.Context, params CreateAmenityParams) (*queries.AmenityView, error)
}

type adminCommandsImpl struct {
	userRepo    AdminUserRepository
	amenityRepo AmenityRepository
}

func NewAdminCommands(userRepo AdminUserRepository, amenityRepo AmenityRepository) AdminCommands {
	return &adminCommandsImpl{
		userRepo:    userRepo,
		amenityRepo: amenityRepo,
	}
}

func (a *adminCommandsImpl) ApproveResident(ctx context.Context, id uuid.UUID) error {
	found, err := a.userRepo.Approve(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrAdminStore)
	}
	if !found {
		return ErrResidentNotFound
	}
	return nil
}

func (a *adminCommandsImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	found, err := a.userRepo.Delete(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrAdminStore)
	}
	if !found {
		return ErrResidentNotFound
	}
	return nil
}

func (a *adminCommandsImpl) CreateAmenity(ctx context.Context, params CreateAmenityParams) (*queries.AmenityView, error) {
	entity, err := booking.NewAmenity(params.Name, params.Description, params.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmenity)
	}

	view, err := a.amenityRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrInvalidAmenity
		}
		return nil, errs.Mark(err, ErrAdminStore)
	}
	return view, nil
}
