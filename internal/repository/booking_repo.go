package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusparking/internal/db"
	apperrors "campusparking/internal/errors"

	"github.com/lib/pq"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

// Book claims the slot and inserts the booking in a single transaction.
//
// The claim is a conditional update: it only flips is_taken when it still
// observes FALSE, so of any number of concurrent attempts on the same slot
// exactly one sees RowsAffected == 1. The insert runs only after a
// successful claim and commits with it or not at all.
func (r *BookingRepository) Book(b *db.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting booking transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE parking_slots SET is_taken = TRUE WHERE lot_no = $1 AND is_taken = FALSE`,
		b.LotNo,
	)
	if err != nil {
		return fmt.Errorf("error claiming slot %s: %w", b.LotNo, err)
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected for slot %s: %w", b.LotNo, err)
	}
	if claimed == 0 {
		var exists bool
		err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM parking_slots WHERE lot_no = $1)`, b.LotNo).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking slot %s existence: %w", b.LotNo, err)
		}
		if !exists {
			return apperrors.ErrSlotNotFound
		}
		return apperrors.ErrSlotUnavailable
	}

	err = tx.QueryRow(
		`INSERT INTO bookings (code, lot_no, renter_name, vehicle_number, parked_at, parked_till, idempotency_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		b.Code, b.LotNo, b.RenterName, b.VehicleNumber, b.ParkedAt, b.ParkedTill,
		sql.NullString{String: b.IdempotencyKey, Valid: b.IdempotencyKey != ""}, time.Now().UTC(),
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("error inserting booking for slot %s: %w", b.LotNo, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing booking for slot %s: %w", b.LotNo, err)
	}
	return nil
}

// GetBookingByIdempotencyKey returns the active booking created with the
// given client retry key.
func (r *BookingRepository) GetBookingByIdempotencyKey(key string) (*db.Booking, error) {
	var b db.Booking
	query := `SELECT id, code, lot_no, renter_name, vehicle_number, parked_at, parked_till, idempotency_key, created_at
		FROM bookings WHERE idempotency_key = $1`
	var idemKey sql.NullString
	err := r.DB.QueryRow(query, key).Scan(
		&b.ID, &b.Code, &b.LotNo, &b.RenterName, &b.VehicleNumber, &b.ParkedAt, &b.ParkedTill, &idemKey, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying booking by idempotency key: %w", err)
	}
	b.IdempotencyKey = idemKey.String
	return &b, nil
}

// MatchActiveBooking reports whether an active booking matches all four
// ticket fields exactly. parked_till is compared by instant, no tolerance.
func (r *BookingRepository) MatchActiveBooking(lotNo, renterName, vehicleNumber string, parkedTill time.Time) (bool, error) {
	var matched bool
	query := `SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE lot_no = $1 AND renter_name = $2 AND vehicle_number = $3 AND parked_till = $4
	)`
	err := r.DB.QueryRow(query, lotNo, renterName, vehicleNumber, parkedTill.UTC()).Scan(&matched)
	if err != nil {
		return false, fmt.Errorf("error matching booking for slot %s: %w", lotNo, err)
	}
	return matched, nil
}

// Release deletes the active booking for the slot and resets is_taken,
// both in one transaction. Returns the released booking's code.
func (r *BookingRepository) Release(lotNo string) (string, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("error starting release transaction: %w", err)
	}
	defer tx.Rollback()

	var code string
	err = tx.QueryRow(`DELETE FROM bookings WHERE lot_no = $1 RETURNING code`, lotNo).Scan(&code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrBookingNotFound
		}
		return "", fmt.Errorf("error deleting booking for slot %s: %w", lotNo, err)
	}

	if _, err := tx.Exec(`UPDATE parking_slots SET is_taken = FALSE WHERE lot_no = $1`, lotNo); err != nil {
		return "", fmt.Errorf("error freeing slot %s: %w", lotNo, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("error committing release for slot %s: %w", lotNo, err)
	}
	return code, nil
}
