package models

import "time"

// Reservation represents one booking of the shared resource.
type Reservation struct {
	// ID is the unique identifier for the reservation (UUID format).
	ID string

	// GuestName is the display name of whoever made the booking.
	// Always non-empty and trimmed.
	GuestName string

	// StartAt is the inclusive start of the booked interval.
	StartAt time.Time

	// EndAt is the exclusive end of the booked interval.
	// Always strictly after StartAt.
	EndAt time.Time

	// Note is an optional free-text annotation. nil means no note.
	Note *string
}

// Candidate is a booking request that has not been validated yet.
// Zero StartAt or EndAt means the value was not provided.
type Candidate struct {
	GuestName string
	StartAt   time.Time
	EndAt     time.Time
	Note      string
}
