package service

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketQRPNG renders the gate ticket as a QR PNG and returns it base64
// encoded. The payload format is what the gate scanner expects.
func TicketQRPNG(lotNo, code string) (string, error) {
	payload := fmt.Sprintf("Slot: %s, BookingID: %s", lotNo, code)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket QR: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
