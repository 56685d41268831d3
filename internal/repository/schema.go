package repository

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS parking_slots (
		lot_no   TEXT PRIMARY KEY,
		is_taken BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id              SERIAL PRIMARY KEY,
		code            TEXT NOT NULL UNIQUE,
		lot_no          TEXT NOT NULL REFERENCES parking_slots(lot_no),
		renter_name     TEXT NOT NULL,
		vehicle_number  TEXT NOT NULL,
		parked_at       TIMESTAMPTZ NOT NULL,
		parked_till     TIMESTAMPTZ NOT NULL,
		idempotency_key TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_lot_no_key ON bookings (lot_no)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_idempotency_key_key ON bookings (idempotency_key)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_user       BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables if they do not exist yet. The bookings
// table keeps at most one row per slot; the unique index on lot_no is what
// makes "one active booking per slot" a database invariant rather than an
// application promise.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error applying schema statement: %w", err)
		}
	}
	return nil
}
