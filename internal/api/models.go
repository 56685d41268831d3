package api

// Slots
type SlotResponse struct {
	LotNo   string `json:"lot_no"`
	IsTaken bool   `json:"isTaken"`
}

// Booking
type BookRequest struct {
	SlotNo        string `json:"slot_no" validate:"required"`
	Name          string `json:"name" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	ParkedAt      string `json:"parked_at" validate:"required"`
	ParkedTill    string `json:"parked_till" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
}

type BookResponse struct {
	SlotNo        string `json:"slot_no"`
	Name          string `json:"name"`
	VehicleNumber string `json:"vehicle_number"`
	ParkedTill    string `json:"parked_till"`
	BookingCode   string `json:"booking_code"`
	QRPNGBase64   string `json:"qr_png_base64"`
}

// Ticket validation
type ValidateRequest struct {
	SlotNo        string `json:"slot_no" validate:"required"`
	Name          string `json:"name" validate:"required"`
	ParkedTill    string `json:"parked_till" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

type ValidateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Auth
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsUser   *bool  `json:"isUser" validate:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsUser  bool   `json:"isUser"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	IsUser bool   `json:"isUser"`
}
