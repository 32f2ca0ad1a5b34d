package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role" binding:"required"`
	ApartmentName string `json:"apartmentName"`
	FloorNumber   string `json:"floorNumber"`
	FlatNumber    string `json:"flatNumber"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" binding:"required"`
	RegisterRequest
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdateProfileRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	ApartmentName string `json:"apartmentName"`
	FloorNumber   string `json:"floorNumber"`
	FlatNumber    string `json:"flatNumber"`
}
