package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/reservations/internal/booking"
	"github.com/mmynk/reservations/internal/metrics"
	"github.com/mmynk/reservations/internal/models"
	"github.com/mmynk/reservations/pkg/api"
)

// Ensure ReservationService implements api.ReservationServiceHandler
var _ api.ReservationServiceHandler = (*ReservationService)(nil)

// ReservationService implements the Connect ReservationService
type ReservationService struct {
	bookings *booking.Service
	metrics  *metrics.Metrics
	loc      *time.Location
}

// NewReservationService creates a ReservationService. loc is the zone used
// for datetime-local inputs that carry no offset.
func NewReservationService(bookings *booking.Service, m *metrics.Metrics, loc *time.Location) *ReservationService {
	if loc == nil {
		loc = time.Local
	}
	return &ReservationService{
		bookings: bookings,
		metrics:  m,
		loc:      loc,
	}
}

// CreateReservation validates and stores a new reservation.
func (s *ReservationService) CreateReservation(ctx context.Context, req *connect.Request[api.CreateReservationRequest]) (*connect.Response[api.CreateReservationResponse], error) {
	slog.Info("CreateReservation request received",
		"guest_name", req.Msg.GuestName,
		"start_at", req.Msg.StartAt,
		"end_at", req.Msg.EndAt,
	)

	candidate := models.Candidate{
		GuestName: req.Msg.GuestName,
		StartAt:   s.parseTime("start_at", req.Msg.StartAt),
		EndAt:     s.parseTime("end_at", req.Msg.EndAt),
		Note:      req.Msg.Note,
	}

	r, err := s.bookings.Submit(ctx, candidate)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			slog.Warn("CreateReservation rejected", "reason", vErr.Kind.String(), "error", err)
			s.metrics.ObserveSubmission(vErr.Kind.String())
			return nil, validationError(vErr)
		}
		slog.Error("CreateReservation failed", "error", err)
		s.metrics.ObserveSubmission(metrics.ResultError)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.ObserveSubmission(metrics.ResultCreated)
	s.metrics.ReservationAdded()
	slog.Info("Reservation created", "reservation_id", r.ID, "guest_name", r.GuestName)

	return connect.NewResponse(&api.CreateReservationResponse{
		Reservation: toAPI(*r),
	}), nil
}

// ListReservations returns every reservation ordered by start time.
func (s *ReservationService) ListReservations(ctx context.Context, req *connect.Request[api.ListReservationsRequest]) (*connect.Response[api.ListReservationsResponse], error) {
	slog.Info("ListReservations request received")

	list, err := s.bookings.List(ctx)
	if err != nil {
		slog.Error("ListReservations failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.SetActive(len(list))

	out := make([]*api.Reservation, len(list))
	for i, r := range list {
		out[i] = toAPI(r)
	}

	slog.Info("ListReservations successful", "count", len(out))

	return connect.NewResponse(&api.ListReservationsResponse{
		Reservations: out,
	}), nil
}

// DeleteReservation removes a reservation by ID. Unknown IDs are not an error.
func (s *ReservationService) DeleteReservation(ctx context.Context, req *connect.Request[api.DeleteReservationRequest]) (*connect.Response[api.DeleteReservationResponse], error) {
	slog.Info("DeleteReservation request received", "reservation_id", req.Msg.Id)

	removed, err := s.bookings.Delete(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("DeleteReservation failed", "reservation_id", req.Msg.Id, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.metrics.ObserveDeletion(removed)
	if removed {
		s.metrics.ReservationRemoved()
		slog.Info("Reservation deleted", "reservation_id", req.Msg.Id)
	} else {
		slog.Info("DeleteReservation found nothing to delete", "reservation_id", req.Msg.Id)
	}

	return connect.NewResponse(&api.DeleteReservationResponse{
		Deleted: removed,
	}), nil
}

// parseTime converts a wire time field. Unparseable values become the zero
// time, which booking reports as a missing date.
func (s *ReservationService) parseTime(field, value string) time.Time {
	t, err := api.ParseInstant(value, s.loc)
	if err != nil {
		slog.Debug("Ignoring time field", "field", field, "value", value, "error", err)
		return time.Time{}
	}
	return t
}

// validationError maps a booking validation failure to a Connect error and
// tags it with the failure kind.
func validationError(vErr *booking.ValidationError) *connect.Error {
	code := connect.CodeInvalidArgument
	if vErr.Kind == booking.KindConflict {
		code = connect.CodeAlreadyExists
	}
	cErr := connect.NewError(code, vErr)
	cErr.Meta().Set(api.ErrorKindHeader, vErr.Kind.String())
	return cErr
}

// ValidationKind recovers the booking validation kind from an error returned
// by a ReservationService client. It returns false for any other error.
func ValidationKind(err error) (booking.Kind, bool) {
	var cErr *connect.Error
	if !errors.As(err, &cErr) {
		return 0, false
	}
	return booking.ParseKind(cErr.Meta().Get(api.ErrorKindHeader))
}

func toAPI(r models.Reservation) *api.Reservation {
	return &api.Reservation{
		Id:        r.ID,
		GuestName: r.GuestName,
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		Note:      r.Note,
	}
}
