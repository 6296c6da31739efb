// Package models defines the core domain models for the reservation manager.
//
// # Models
//
//   - Reservation: a committed booking of the single shared resource
//   - Candidate: a not-yet-validated booking request
//
// A Reservation occupies the half-open interval [StartAt, EndAt). Two
// reservations ending and starting at the same instant do not collide.
//
// # Design Principles
//
//  1. **Immutable records**: a Reservation is never edited after creation; it is
//     only created through booking.Service.Submit and removed by ID.
//  2. **Value types**: the store hands out copies, so callers cannot mutate
//     committed state through a returned slice.
//  3. **UTC instants**: StartAt and EndAt are normalized to UTC before they are
//     stored, so comparisons never depend on the caller's zone.
package models
