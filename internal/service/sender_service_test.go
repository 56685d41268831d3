package service

import (
	"testing"

	"campusparking/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestBookingEmailContent(t *testing.T) {
	data := entities.BookingEmailData{
		RenterName:          "Alice",
		BookingCode:         "1A2B3C4D",
		LotNo:               "5",
		VehicleNumber:       "KA-01-1234",
		ParkedAtFormatted:   "01 Jan 2024 10:00 UTC",
		ParkedTillFormatted: "01 Jan 2024 12:00 UTC",
		CurrentYear:         2024,
	}

	subject, body := bookingEmailContent(data)
	assert.Contains(t, subject, "1A2B3C4D")
	assert.Contains(t, body, "Hello Alice")
	assert.Contains(t, body, "Slot: 5")
	assert.Contains(t, body, "KA-01-1234")
	assert.Contains(t, body, "01 Jan 2024 12:00 UTC")
	assert.Contains(t, body, "CampusParking 2024. All rights reserved.")
}
