package service

import (
	"fmt"
	"log"
	"strings"

	"campusparking/internal/config"
	"campusparking/internal/entities"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SenderService delivers booking confirmations over SendGrid and Twilio.
type SenderService struct {
	cfg *config.Config
}

func NewSenderService(cfg *config.Config) *SenderService {
	return &SenderService{cfg: cfg}
}

func (s *SenderService) SendBookingEmail(toEmail string, data entities.BookingEmailData) {
	subject, body := bookingEmailContent(data)
	if err := s.sendWithSendGrid(toEmail, data.RenterName, subject, body); err != nil {
		log.Printf("ALERT: booking %s confirmed, but the confirmation email to %s failed: %v", data.BookingCode, toEmail, err)
	}
}

func bookingEmailContent(data entities.BookingEmailData) (subject, body string) {
	subject = fmt.Sprintf("Your CampusParking booking is confirmed - Code: %s", data.BookingCode)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour parking slot is booked.\n\n"+
			"Booking Details:\n"+
			"Booking Code: %s\n"+
			"Slot: %s\n"+
			"Vehicle: %s\n"+
			"Parked from: %s\n"+
			"Parked till: %s\n\n"+
			"Show the QR ticket at the gate.\n\n"+
			"CampusParking %d. All rights reserved.",
		data.RenterName, data.BookingCode, data.LotNo, data.VehicleNumber,
		data.ParkedAtFormatted, data.ParkedTillFormatted, data.CurrentYear,
	)
	return subject, body
}

func (s *SenderService) SendBookingSMS(toPhone string, data entities.BookingEmailData) {
	message := fmt.Sprintf("CampusParking: booking %s confirmed!\nSlot %s from %s.\nMore details in your email.",
		data.BookingCode, data.LotNo, data.ParkedAtFormatted)

	if err := s.sendSMS(toPhone, message); err != nil {
		log.Printf("ALERT: booking %s confirmed, but the confirmation SMS to %s failed: %v", data.BookingCode, toPhone, err)
	}
}

func (s *SenderService) sendWithSendGrid(toEmail, toName, subject, plainTextContent string) error {
	if s.cfg.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if s.cfg.SendGridFromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, plainTextContent)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (subject: %s). Status: %d", toEmail, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

func (s *SenderService) sendSMS(toNumber, messageBody string) error {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioAuthToken == "" || s.cfg.TwilioFromNumber == "" {
		return fmt.Errorf("Twilio credentials are not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number '%s' is not in E.164 format (must start with '+'). The SMS may fail.", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   s.cfg.TwilioAccountSID,
		Password:   s.cfg.TwilioAuthToken,
		AccountSid: s.cfg.TwilioAccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}
