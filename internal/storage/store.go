// Package storage provides abstractions for reservation storage.
package storage

import (
	"context"

	"github.com/mmynk/reservations/internal/models"
)

// Store defines the interface for reservation storage operations.
// Implementations trust their caller: validation and conflict checks happen
// in the booking service before Insert is called.
//
// Stores are not required to be safe for concurrent use; booking.Service
// serializes access.
type Store interface {
	// Insert appends a reservation to the collection unconditionally.
	Insert(ctx context.Context, r models.Reservation) error

	// DeleteByID removes the reservation with the given ID.
	// Reports whether a record was removed; an unknown ID is not an error.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// All returns a snapshot of every stored reservation.
	// Callers must not rely on any particular order.
	All(ctx context.Context) ([]models.Reservation, error)

	// Close releases any resources held by the store.
	Close() error
}
