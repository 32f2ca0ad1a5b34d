package request

type CreateComplaintRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type CreateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Contact     string `json:"contact" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type FamilyMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Relation string `json:"relation" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
}

type VehicleRequest struct {
	Model       string `json:"model" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	ParkingSlot string `json:"parkingSlot"`
}

type PetRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
	Breed   string `json:"breed"`
}

type DailyHelpRequest struct {
	Name    string `json:"name" binding:"required"`
	Service string `json:"service" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Timing  string `json:"timing"`
}

type AddressRequest struct {
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}
