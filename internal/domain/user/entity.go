package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User entity. Residents start unapproved and are promoted by an admin;
// watchmen and admins are provisioned approved.
type User struct {
	id            uuid.UUID
	name          string
	email         Email
	phone         string
	passwordHash  string
	role          Role
	apartmentName string
	floorNumber   string
	flatNumber    string
	approved      bool
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type Profile struct {
	Name          string
	Phone         string
	ApartmentName string
	FloorNumber   string
	FlatNumber    string
}

func NewUser(name string, email Email, phone, passwordHash string, role Role, profile Profile) (*User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return nil, ErrMissingField
	}
	if role == RoleResident && strings.TrimSpace(profile.FlatNumber) == "" {
		return nil, ErrMissingField
	}

	return &User{
		id:            uuid.New(),
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		apartmentName: profile.ApartmentName,
		floorNumber:   profile.FloorNumber,
		flatNumber:    profile.FlatNumber,
		approved:      role != RoleResident,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone, passwordHash string,
	role Role,
	apartmentName, floorNumber, flatNumber string,
	approved bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		apartmentName: apartmentName,
		floorNumber:   floorNumber,
		flatNumber:    flatNumber,
		approved:      approved,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) Approve() {
	u.approved = true
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Phone() string         { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) ApartmentName() string { return u.apartmentName }
func (u *User) FloorNumber() string   { return u.floorNumber }
func (u *User) FlatNumber() string    { return u.flatNumber }
func (u *User) IsApproved() bool      { return u.approved }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
