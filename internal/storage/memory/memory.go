// Package memory provides a slice-backed implementation of the storage.Store interface.
package memory

import (
	"context"

	"github.com/mmynk/reservations/internal/models"
	"github.com/mmynk/reservations/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps reservations in process memory for the lifetime of the process.
type Store struct {
	reservations []models.Reservation
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Insert appends r to the collection.
func (s *Store) Insert(_ context.Context, r models.Reservation) error {
	s.reservations = append(s.reservations, cloneReservation(r))
	return nil
}

// DeleteByID removes the first reservation with a matching ID.
func (s *Store) DeleteByID(_ context.Context, id string) (bool, error) {
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All(_ context.Context) ([]models.Reservation, error) {
	out := make([]models.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		out[i] = cloneReservation(r)
	}
	return out, nil
}

// Close drops all reservations.
func (s *Store) Close() error {
	s.reservations = nil
	return nil
}

// cloneReservation copies the note so callers never share it with the store.
func cloneReservation(r models.Reservation) models.Reservation {
	if r.Note != nil {
		note := *r.Note
		r.Note = &note
	}
	return r
}
