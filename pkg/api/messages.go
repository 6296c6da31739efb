// Package api defines the wire messages and Connect bindings for
// reservations.v1.ReservationService.
//
// Messages are plain structs serialized with a JSON codec, so the service can
// be called with any Connect client that speaks application/json, or with
// curl:
//
//	curl -H 'Content-Type: application/json' -d '{}' \
//	    http://localhost:8080/reservations.v1.ReservationService/ListReservations
package api

import "time"

// Reservation is the wire form of a committed reservation.
type Reservation struct {
	Id        string    `json:"id"`
	GuestName string    `json:"guest_name"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Note      *string   `json:"note,omitempty"`
}

// CreateReservationRequest carries a candidate reservation.
// StartAt and EndAt accept RFC 3339 instants or datetime-local values
// ("2006-01-02T15:04"), the latter read in the server's time zone.
type CreateReservationRequest struct {
	GuestName string `json:"guest_name"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
	Note      string `json:"note,omitempty"`
}

type CreateReservationResponse struct {
	Reservation *Reservation `json:"reservation"`
}

type ListReservationsRequest struct{}

// ListReservationsResponse lists reservations ascending by start time.
type ListReservationsResponse struct {
	Reservations []*Reservation `json:"reservations"`
}

type DeleteReservationRequest struct {
	Id string `json:"id"`
}

// DeleteReservationResponse reports whether a reservation was removed.
// Deleting an unknown ID succeeds with Deleted false.
type DeleteReservationResponse struct {
	Deleted bool `json:"deleted"`
}
