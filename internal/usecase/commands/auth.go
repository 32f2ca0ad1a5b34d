package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"residesk/internal/domain/user"
	"residesk/internal/infra"
	"residesk/internal/pkg/errs"
	"residesk/internal/pkg/jwt"
	"residesk/internal/pkg/password"
	"residesk/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrOTPInvalid           = errs.New("invalid or expired otp")
	ErrOTPDeliveryFailed    = errs.New("otp delivery failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type RegisterParams struct {
	Name          string
	Email         string
	Phone         string
	Password      string
	Role          string
	ApartmentName string
	FloorNumber   string
	FlatNumber    string
}

type UpdateProfileParams struct {
	Name          string
	Phone         string
	ApartmentName string
	FloorNumber   string
	FlatNumber    string
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	UpdateProfile(ctx context.Context, id uuid.UUID, p user.Profile) error
}

// OTPStore issues and verifies short-lived registration codes.
type OTPStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Register(ctx context.Context, params RegisterParams) (uuid.UUID, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTPAndRegister(ctx context.Context, otp string, params RegisterParams) (uuid.UUID, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	otpStore   OTPStore
	mailer     Mailer
	jwtService *jwt.Service
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore queries.UserReadStore,
	otpStore OTPStore,
	mailer Mailer,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		otpStore:   otpStore,
		mailer:     mailer,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, hash, err := a.readStore.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(userView.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userView.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
		// Continue without failing - this is not critical
	}

	return &LoginResult{UserID: userView.ID, TokenPair: tokenPair}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (uuid.UUID, error) {
	entity, err := a.buildUser(params)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Wrap(err, "failed to create user")
	}
	return id, nil
}

func (a *authCommandsImpl) SendOTP(ctx context.Context, email string) error {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	code, err := a.otpStore.Issue(ctx, emailVO.Value())
	if err != nil {
		return errs.Mark(err, ErrOTPDeliveryFailed)
	}

	if err := a.mailer.SendOTP(ctx, emailVO.Value(), code); err != nil {
		return errs.Mark(err, ErrOTPDeliveryFailed)
	}
	return nil
}

func (a *authCommandsImpl) VerifyOTPAndRegister(ctx context.Context, otp string, params RegisterParams) (uuid.UUID, error) {
	ok, err := a.otpStore.Verify(ctx, params.Email, otp)
	if err != nil {
		// Store failure is not the caller's fault; don't report it as a bad code
		return uuid.Nil, errs.Wrap(err, "otp verification failed")
	}
	if !ok {
		return uuid.Nil, ErrOTPInvalid
	}

	return a.Register(ctx, params)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error {
	profile := user.Profile{
		Name:          params.Name,
		Phone:         params.Phone,
		ApartmentName: params.ApartmentName,
		FloorNumber:   params.FloorNumber,
		FlatNumber:    params.FlatNumber,
	}
	return a.userRepo.UpdateProfile(ctx, userID, profile)
}

func (a *authCommandsImpl) buildUser(params RegisterParams) (*user.User, error) {
	emailVO, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	passwordVO, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := user.NewUser(params.Name, emailVO, params.Phone, hash, role, user.Profile{
		Name:          params.Name,
		Phone:         params.Phone,
		ApartmentName: params.ApartmentName,
		FloorNumber:   params.FloorNumber,
		FlatNumber:    params.FlatNumber,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	return entity, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
