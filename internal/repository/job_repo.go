package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetExpiredLotNos returns the lots whose active booking ended in the past.
func (r *JobRepository) GetExpiredLotNos() ([]string, error) {
	query := `SELECT lot_no FROM bookings WHERE parked_till < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying expired bookings: %w", err)
	}
	defer rows.Close()

	var lotNos []string
	for rows.Next() {
		var lotNo string
		if err := rows.Scan(&lotNo); err != nil {
			return nil, fmt.Errorf("error scanning expired lot_no: %w", err)
		}
		lotNos = append(lotNos, lotNo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating expired rows: %w", err)
	}
	return lotNos, nil
}

// ReleaseLots deletes the bookings for the given lots and frees the slots,
// all in one transaction.
func (r *JobRepository) ReleaseLots(lotNos []string) error {
	if len(lotNos) == 0 {
		return nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting sweep transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM bookings WHERE lot_no = ANY($1)`, pq.Array(lotNos)); err != nil {
		return fmt.Errorf("error deleting expired bookings: %w", err)
	}

	result, err := tx.Exec(`UPDATE parking_slots SET is_taken = FALSE WHERE lot_no = ANY($1)`, pq.Array(lotNos))
	if err != nil {
		return fmt.Errorf("error freeing expired slots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing sweep: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Released %d expired slots", rowsAffected)
	}
	return nil
}
