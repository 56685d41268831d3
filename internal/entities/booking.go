package entities

import "time"

type BookingRequest struct {
	LotNo         string
	RenterName    string
	VehicleNumber string
	ParkedAt      time.Time
	ParkedTill    time.Time

	// Optional contact details, used only for the confirmation message.
	RenterEmail string
	RenterPhone string
}

type ValidateRequest struct {
	LotNo         string
	RenterName    string
	VehicleNumber string
	ParkedTill    time.Time
}

// BookingTicket is what the renter gets back: the persisted booking plus a
// QR image encoding the slot and booking code.
type BookingTicket struct {
	Code          string
	LotNo         string
	RenterName    string
	VehicleNumber string
	ParkedAt      time.Time
	ParkedTill    time.Time
	QRPNGBase64   string
}
