// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
//
// The database lives in memory only; nothing is written to disk and all
// reservations are gone once the store is closed.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/reservations/internal/models"
	"github.com/mmynk/reservations/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using an in-memory SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// New opens a fresh in-memory database and creates the schema.
func New() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" gets its own database, so pin the pool
	// to a single connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection, discarding all data.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Insert appends a reservation row.
func (s *SQLiteStore) Insert(ctx context.Context, r models.Reservation) error {
	var note sql.NullString
	if r.Note != nil {
		note = sql.NullString{String: *r.Note, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reservations (id, guest_name, start_sec, start_nsec, end_sec, end_nsec, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GuestName,
		r.StartAt.Unix(), r.StartAt.Nanosecond(),
		r.EndAt.Unix(), r.EndAt.Nanosecond(),
		note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

// DeleteByID removes the reservation with the given ID, if any.
func (s *SQLiteStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reservation: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n > 0, nil
}

// All returns every reservation in insertion order.
func (s *SQLiteStore) All(ctx context.Context) ([]models.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, guest_name, start_sec, start_nsec, end_sec, end_nsec, note FROM reservations ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var (
			r                  models.Reservation
			startSec, endSec   int64
			startNsec, endNsec int64
			note               sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.GuestName, &startSec, &startNsec, &endSec, &endNsec, &note); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		r.StartAt = time.Unix(startSec, startNsec).UTC()
		r.EndAt = time.Unix(endSec, endNsec).UTC()
		if note.Valid {
			text := note.String
			r.Note = &text
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}
