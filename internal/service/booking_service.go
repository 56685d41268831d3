package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"campusparking/internal/db"
	"campusparking/internal/entities"
	apperrors "campusparking/internal/errors"

	"github.com/google/uuid"
)

// BookingStore is the persistence surface the booking service needs. The
// implementation must make Book an atomic claim-and-insert: of any number
// of concurrent calls for the same free slot exactly one may succeed.
type BookingStore interface {
	Book(b *db.Booking) error
	GetBookingByIdempotencyKey(key string) (*db.Booking, error)
	MatchActiveBooking(lotNo, renterName, vehicleNumber string, parkedTill time.Time) (bool, error)
	Release(lotNo string) (string, error)
}

// Notifier sends booking confirmations. Failures are logged, never
// propagated: the booking is already durable by the time it is called.
type Notifier interface {
	SendBookingEmail(toEmail string, data entities.BookingEmailData)
	SendBookingSMS(toPhone string, data entities.BookingEmailData)
}

type BookingService struct {
	Repo     BookingStore
	notifier Notifier
}

func NewBookingService(repo BookingStore, notifier Notifier) *BookingService {
	return &BookingService{Repo: repo, notifier: notifier}
}

// Book reserves the slot and returns the ticket. idempotencyKey, when
// non-empty, is stored with the booking so a client retry returns the
// original booking instead of SlotUnavailable.
func (s *BookingService) Book(req entities.BookingRequest, idempotencyKey string) (*entities.BookingTicket, error) {
	if !req.ParkedTill.After(req.ParkedAt) {
		return nil, fmt.Errorf("parked_till must be after parked_at")
	}

	if idempotencyKey != "" {
		if existing, err := s.Repo.GetBookingByIdempotencyKey(idempotencyKey); err == nil {
			return s.ticketFor(existing)
		} else if !errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, err
		}
	}

	booking := &db.Booking{
		Code:           newBookingCode(),
		LotNo:          req.LotNo,
		RenterName:     req.RenterName,
		VehicleNumber:  req.VehicleNumber,
		ParkedAt:       req.ParkedAt.UTC(),
		ParkedTill:     req.ParkedTill.UTC(),
		IdempotencyKey: idempotencyKey,
	}

	err := s.Repo.Book(booking)
	if err != nil && idempotencyKey != "" &&
		(errors.Is(err, apperrors.ErrDuplicateEntry) || errors.Is(err, apperrors.ErrSlotUnavailable)) {
		// A concurrent replay with the same key may have won; if a booking
		// holds our key, return it instead of the conflict.
		if existing, getErr := s.Repo.GetBookingByIdempotencyKey(idempotencyKey); getErr == nil {
			return s.ticketFor(existing)
		}
	}
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketFor(booking)
	if err != nil {
		return nil, err
	}
	s.notifyBooked(booking, req.RenterEmail, req.RenterPhone)
	return ticket, nil
}

// Validate checks a ticket against the active bookings. A mismatch is a
// negative result, not an error.
func (s *BookingService) Validate(req entities.ValidateRequest) (bool, error) {
	return s.Repo.MatchActiveBooking(req.LotNo, req.RenterName, req.VehicleNumber, req.ParkedTill.UTC())
}

// Release frees the slot, deleting its active booking.
func (s *BookingService) Release(lotNo string) error {
	code, err := s.Repo.Release(lotNo)
	if err != nil {
		return err
	}
	log.Printf("Released slot %s (booking %s)", lotNo, code)
	return nil
}

func (s *BookingService) ticketFor(b *db.Booking) (*entities.BookingTicket, error) {
	qr, err := TicketQRPNG(b.LotNo, b.Code)
	if err != nil {
		return nil, fmt.Errorf("error rendering ticket QR for booking %s: %w", b.Code, err)
	}
	return &entities.BookingTicket{
		Code:          b.Code,
		LotNo:         b.LotNo,
		RenterName:    b.RenterName,
		VehicleNumber: b.VehicleNumber,
		ParkedAt:      b.ParkedAt,
		ParkedTill:    b.ParkedTill,
		QRPNGBase64:   qr,
	}, nil
}

func (s *BookingService) notifyBooked(b *db.Booking, email, phone string) {
	if s.notifier == nil || (email == "" && phone == "") {
		return
	}
	data := entities.BookingEmailData{
		RenterName:          b.RenterName,
		BookingCode:         b.Code,
		LotNo:               b.LotNo,
		VehicleNumber:       b.VehicleNumber,
		ParkedAtFormatted:   b.ParkedAt.Format("02 Jan 2006 15:04 MST"),
		ParkedTillFormatted: b.ParkedTill.Format("02 Jan 2006 15:04 MST"),
		CurrentYear:         time.Now().UTC().Year(),
	}
	go func() {
		if email != "" {
			s.notifier.SendBookingEmail(email, data)
		}
		if phone != "" {
			s.notifier.SendBookingSMS(phone, data)
		}
	}()
}

// newBookingCode generates an 8-character code, the first uuid segment
// uppercased.
func newBookingCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
