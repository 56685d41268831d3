package repository

import (
	"database/sql"
	"fmt"

	"campusparking/internal/db"
)

type SlotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// ListSlots returns every slot ordered by lot_no so repeated calls with no
// intervening writes return identical results.
func (r *SlotRepository) ListSlots() ([]db.Slot, error) {
	query := `SELECT lot_no, is_taken FROM parking_slots ORDER BY lot_no ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		if err := rows.Scan(&s.LotNo, &s.IsTaken); err != nil {
			return nil, fmt.Errorf("error scanning slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot rows: %w", err)
	}

	return slots, nil
}

// SeedSlots inserts the fixed slot set, skipping lots that already exist.
func (r *SlotRepository) SeedSlots(lotNos []string) error {
	query := `INSERT INTO parking_slots (lot_no) VALUES ($1) ON CONFLICT (lot_no) DO NOTHING`
	for _, lotNo := range lotNos {
		if _, err := r.DB.Exec(query, lotNo); err != nil {
			return fmt.Errorf("error seeding slot %s: %w", lotNo, err)
		}
	}
	return nil
}
