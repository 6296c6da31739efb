// Package conflict detects overlapping reservation intervals.
package conflict

import (
	"time"

	"github.com/mmynk/reservations/internal/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. An interval ending exactly when the
// other begins does not overlap it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict returns the first reservation in existing whose interval
// overlaps [start, end). No range validation is done on start and end.
func FindConflict(existing []models.Reservation, start, end time.Time) (models.Reservation, bool) {
	for _, r := range existing {
		if Overlaps(start, end, r.StartAt, r.EndAt) {
			return r, true
		}
	}
	return models.Reservation{}, false
}

// HasConflict reports whether [start, end) overlaps any existing reservation.
func HasConflict(existing []models.Reservation, start, end time.Time) bool {
	_, found := FindConflict(existing, start, end)
	return found
}
