package household

import (
	"errors"
	"strings"
)

var (
	ErrMissingField = errors.New("required field missing")
	ErrInvalidKind  = errors.New("invalid household entry kind")
)

type Kind string

const (
	KindFamily    Kind = "family"
	KindVehicle   Kind = "vehicle"
	KindPet       Kind = "pet"
	KindDailyHelp Kind = "daily_help"
	KindAddress   Kind = "address"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFamily, KindVehicle, KindPet, KindDailyHelp, KindAddress:
		return true
	default:
		return false
	}
}

// Form is one variant of a household entry. The mobile app kept these as
// untyped key/value bags per modal; each variant here validates its own
// required fields before anything reaches the store.
type Form interface {
	Kind() Kind
	Validate() error
}

type FamilyMemberForm struct {
	Name     string
	Relation string
	Phone    string
	Email    string
}

func (FamilyMemberForm) Kind() Kind { return KindFamily }

func (f FamilyMemberForm) Validate() error {
	return requireAll(f.Name, f.Relation, f.Phone)
}

type VehicleForm struct {
	Model       string
	PlateNumber string
	ParkingSlot string
}

func (VehicleForm) Kind() Kind { return KindVehicle }

func (f VehicleForm) Validate() error {
	return requireAll(f.Model, f.PlateNumber)
}

type PetForm struct {
	Name    string
	Species string
	Breed   string
}

func (PetForm) Kind() Kind { return KindPet }

func (f PetForm) Validate() error {
	return requireAll(f.Name, f.Species)
}

type DailyHelpForm struct {
	Name    string
	Service string
	Phone   string
	Timing  string
}

func (DailyHelpForm) Kind() Kind { return KindDailyHelp }

func (f DailyHelpForm) Validate() error {
	return requireAll(f.Name, f.Service, f.Phone)
}

type AddressForm struct {
	Line1   string
	Line2   string
	City    string
	Pincode string
}

func (AddressForm) Kind() Kind { return KindAddress }

func (f AddressForm) Validate() error {
	return requireAll(f.Line1, f.City, f.Pincode)
}

func requireAll(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrMissingField
		}
	}
	return nil
}
