package db

import "time"

type Slot struct {
	LotNo   string
	IsTaken bool
}

type Booking struct {
	ID            int
	Code          string
	LotNo         string
	RenterName    string
	VehicleNumber string
	ParkedAt      time.Time
	ParkedTill    time.Time
	// Client-supplied retry key, empty when the client sent none. Stored in
	// full; the short Code is display-only and never used for replay lookup.
	IdempotencyKey string
	CreatedAt      time.Time
}

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	IsUser       bool
	CreatedAt    time.Time
}
