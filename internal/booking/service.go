// Package booking validates reservation candidates and commits them to a store.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/reservations/internal/conflict"
	"github.com/mmynk/reservations/internal/models"
	"github.com/mmynk/reservations/internal/storage"
)

// Service owns all writes to the reservation store.
// Every operation holds the same lock, so validate, check and insert happen
// as one step and no other call can interleave.
type Service struct {
	mu    sync.Mutex
	store storage.Store
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator overrides how reservation IDs are generated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates a Service backed by store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates c and, if it passes every rule, stores it as a new
// reservation. The first failing rule is returned as a *ValidationError and
// the store is left untouched.
func (s *Service) Submit(ctx context.Context, c models.Candidate) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(c.GuestName)
	if name == "" {
		return nil, ErrEmptyName
	}
	if c.StartAt.IsZero() || c.EndAt.IsZero() {
		return nil, ErrMissingDateTime
	}
	start, end := c.StartAt.UTC(), c.EndAt.UTC()
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}

	existing, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	if blocking, found := conflict.FindConflict(existing, start, end); found {
		slog.Debug("Candidate overlaps existing reservation",
			"guest_name", name,
			"blocking_id", blocking.ID,
		)
		return nil, ErrConflict
	}

	r := models.Reservation{
		ID:        s.newID(),
		GuestName: name,
		StartAt:   start,
		EndAt:     end,
		Note:      normalizeNote(c.Note),
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to store reservation: %w", err)
	}

	return &r, nil
}

// Delete removes a reservation by ID. Deleting an unknown ID returns false
// and no error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reservation: %w", err)
	}
	return removed, nil
}

// List returns all reservations ordered by start time. Reservations with the
// same start keep their store order.
func (s *Service) List(ctx context.Context) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	SortByStart(all)
	return all, nil
}

// SortByStart orders reservations ascending by StartAt in place.
func SortByStart(rs []models.Reservation) {
	slices.SortStableFunc(rs, func(a, b models.Reservation) int {
		return a.StartAt.Compare(b.StartAt)
	})
}

// normalizeNote trims the note and maps an empty result to nil.
func normalizeNote(note string) *string {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	return &note
}
