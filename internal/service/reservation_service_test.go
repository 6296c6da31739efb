package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/reservations/internal/booking"
	"github.com/mmynk/reservations/internal/metrics"
	"github.com/mmynk/reservations/internal/middleware"
	"github.com/mmynk/reservations/internal/storage"
	"github.com/mmynk/reservations/internal/storage/memory"
	"github.com/mmynk/reservations/internal/storage/sqlite"
	"github.com/mmynk/reservations/pkg/api"
)

// setupTestServer creates a test server backed by the given store
func setupTestServer(t *testing.T, store storage.Store) (api.ReservationServiceClient, func()) {
	t.Helper()

	svc := NewReservationService(booking.NewService(store), metrics.New(), time.UTC)
	path, handler := api.NewReservationServiceHandler(svc,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)

	client := api.NewReservationServiceClient(
		http.DefaultClient,
		server.URL,
	)

	cleanup := func() {
		server.Close()
		store.Close()
	}

	return client, cleanup
}

func create(t *testing.T, client api.ReservationServiceClient, name, start, end string) *api.Reservation {
	t.Helper()
	resp, err := client.CreateReservation(context.Background(), connect.NewRequest(&api.CreateReservationRequest{
		GuestName: name,
		StartAt:   start,
		EndAt:     end,
	}))
	if err != nil {
		t.Fatalf("CreateReservation(%s) failed: %v", name, err)
	}
	return resp.Msg.Reservation
}

func list(t *testing.T, client api.ReservationServiceClient) []*api.Reservation {
	t.Helper()
	resp, err := client.ListReservations(context.Background(), connect.NewRequest(&api.ListReservationsRequest{}))
	if err != nil {
		t.Fatalf("ListReservations failed: %v", err)
	}
	return resp.Msg.Reservations
}

func TestCreateReservation(t *testing.T) {
	client, cleanup := setupTestServer(t, memory.New())
	defer cleanup()

	resp, err := client.CreateReservation(context.Background(), connect.NewRequest(&api.CreateReservationRequest{
		GuestName: " Hanako ",
		StartAt:   "2025-05-01T10:00",
		EndAt:     "2025-05-01T11:00:00Z",
		Note:      "  birthday ",
	}))
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}

	r := resp.Msg.Reservation
	if r == nil {
		t.Fatal("expected reservation in response")
	}
	if r.Id == "" {
		t.Error("expected non-empty reservation ID")
	}
	if r.GuestName != "Hanako" {
		t.Errorf("guest name: expected 'Hanako', got '%s'", r.GuestName)
	}
	wantStart := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	if !r.StartAt.Equal(wantStart) {
		t.Errorf("start: expected %v, got %v", wantStart, r.StartAt)
	}
	if r.Note == nil || *r.Note != "birthday" {
		t.Errorf("note: expected 'birthday', got %v", r.Note)
	}
}

func TestCreateReservation_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		req      *api.CreateReservationRequest
		wantCode connect.Code
		wantKind booking.Kind
	}{
		{
			name:     "empty name",
			req:      &api.CreateReservationRequest{GuestName: "   ", StartAt: "2025-05-01T12:00", EndAt: "2025-05-01T13:00"},
			wantCode: connect.CodeInvalidArgument,
			wantKind: booking.KindEmptyName,
		},
		{
			name:     "missing start",
			req:      &api.CreateReservationRequest{GuestName: "Bob", EndAt: "2025-05-01T13:00"},
			wantCode: connect.CodeInvalidArgument,
			wantKind: booking.KindMissingDateTime,
		},
		{
			name:     "unparseable end",
			req:      &api.CreateReservationRequest{GuestName: "Bob", StartAt: "2025-05-01T12:00", EndAt: "soon"},
			wantCode: connect.CodeInvalidArgument,
			wantKind: booking.KindMissingDateTime,
		},
		{
			name:     "start equals end",
			req:      &api.CreateReservationRequest{GuestName: "Bob", StartAt: "2025-05-01T12:00", EndAt: "2025-05-01T12:00"},
			wantCode: connect.CodeInvalidArgument,
			wantKind: booking.KindInvalidRange,
		},
		{
			name:     "overlap",
			req:      &api.CreateReservationRequest{GuestName: "Bob", StartAt: "2025-05-01T10:30", EndAt: "2025-05-01T10:45"},
			wantCode: connect.CodeAlreadyExists,
			wantKind: booking.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, cleanup := setupTestServer(t, memory.New())
			defer cleanup()

			create(t, client, "Alice", "2025-05-01T10:00", "2025-05-01T11:00")

			_, err := client.CreateReservation(context.Background(), connect.NewRequest(tt.req))
			if err == nil {
				t.Fatal("expected error")
			}

			connectErr, ok := err.(*connect.Error)
			if !ok {
				t.Fatalf("expected connect.Error, got %T", err)
			}
			if connectErr.Code() != tt.wantCode {
				t.Errorf("expected %v, got %v", tt.wantCode, connectErr.Code())
			}

			kind, ok := ValidationKind(err)
			if !ok {
				t.Fatalf("expected %s header on error", api.ErrorKindHeader)
			}
			if kind != tt.wantKind {
				t.Errorf("kind: expected %v, got %v", tt.wantKind, kind)
			}

			if n := len(list(t, client)); n != 1 {
				t.Errorf("expected 1 reservation after rejected create, got %d", n)
			}
		})
	}
}

func TestCreateReservation_TouchingBoundary(t *testing.T) {
	client, cleanup := setupTestServer(t, memory.New())
	defer cleanup()

	create(t, client, "Alice", "2025-05-01T10:00", "2025-05-01T11:00")
	create(t, client, "Bob", "2025-05-01T11:00", "2025-05-01T12:00")

	if n := len(list(t, client)); n != 2 {
		t.Errorf("expected 2 reservations, got %d", n)
	}
}

func TestListReservations_Sorted(t *testing.T) {
	stores := map[string]func(t *testing.T) storage.Store{
		"memory": func(t *testing.T) storage.Store { return memory.New() },
		"sqlite": func(t *testing.T) storage.Store {
			s, err := sqlite.New()
			if err != nil {
				t.Fatalf("failed to create sqlite store: %v", err)
			}
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			client, cleanup := setupTestServer(t, newStore(t))
			defer cleanup()

			if n := len(list(t, client)); n != 0 {
				t.Fatalf("expected empty list, got %d", n)
			}

			create(t, client, "Afternoon", "2025-05-01T13:00", "2025-05-01T14:00")
			create(t, client, "Morning", "2025-05-01T09:00", "2025-05-01T10:00")
			create(t, client, "Midday", "2025-05-01T10:00", "2025-05-01T13:00")

			got := list(t, client)
			want := []string{"Morning", "Midday", "Afternoon"}
			if len(got) != len(want) {
				t.Fatalf("expected %d reservations, got %d", len(want), len(got))
			}
			for i, name := range want {
				if got[i].GuestName != name {
					t.Errorf("position %d: expected %s, got %s", i, name, got[i].GuestName)
				}
			}
		})
	}
}

func TestDeleteReservation(t *testing.T) {
	client, cleanup := setupTestServer(t, memory.New())
	defer cleanup()

	r := create(t, client, "Alice", "2025-05-01T10:00", "2025-05-01T11:00")
	create(t, client, "Bob", "2025-05-01T11:00", "2025-05-01T12:00")

	resp, err := client.DeleteReservation(context.Background(), connect.NewRequest(&api.DeleteReservationRequest{Id: r.Id}))
	if err != nil {
		t.Fatalf("DeleteReservation failed: %v", err)
	}
	if !resp.Msg.Deleted {
		t.Error("expected Deleted=true on first delete")
	}

	resp, err = client.DeleteReservation(context.Background(), connect.NewRequest(&api.DeleteReservationRequest{Id: r.Id}))
	if err != nil {
		t.Fatalf("second DeleteReservation failed: %v", err)
	}
	if resp.Msg.Deleted {
		t.Error("expected Deleted=false on second delete")
	}

	if n := len(list(t, client)); n != 1 {
		t.Errorf("expected 1 reservation, got %d", n)
	}
}

func TestDeleteReservation_EmptyID(t *testing.T) {
	client, cleanup := setupTestServer(t, memory.New())
	defer cleanup()

	create(t, client, "Alice", "2025-05-01T10:00", "2025-05-01T11:00")

	resp, err := client.DeleteReservation(context.Background(), connect.NewRequest(&api.DeleteReservationRequest{}))
	if err != nil {
		t.Fatalf("DeleteReservation with empty id failed: %v", err)
	}
	if resp.Msg.Deleted {
		t.Error("expected Deleted=false for empty id")
	}
	if n := len(list(t, client)); n != 1 {
		t.Errorf("expected 1 reservation, got %d", n)
	}
}

func TestActiveGaugeTracksCreateAndDelete(t *testing.T) {
	m := metrics.New()
	svc := NewReservationService(booking.NewService(memory.New()), m, time.UTC)
	ctx := context.Background()

	var ids []string
	for _, start := range []string{"2025-05-01T09:00", "2025-05-01T10:00"} {
		end := strings.Replace(start, ":00", ":30", 1)
		resp, err := svc.CreateReservation(ctx, connect.NewRequest(&api.CreateReservationRequest{
			GuestName: "Alice", StartAt: start, EndAt: end,
		}))
		if err != nil {
			t.Fatalf("CreateReservation(%s) failed: %v", start, err)
		}
		ids = append(ids, resp.Msg.Reservation.Id)
	}
	if _, err := svc.CreateReservation(ctx, connect.NewRequest(&api.CreateReservationRequest{
		GuestName: "Bob", StartAt: "2025-05-01T09:10", EndAt: "2025-05-01T09:20",
	})); err == nil {
		t.Fatal("expected conflict")
	}
	for _, id := range []string{ids[0], ids[0], ""} {
		if _, err := svc.DeleteReservation(ctx, connect.NewRequest(&api.DeleteReservationRequest{Id: id})); err != nil {
			t.Fatalf("DeleteReservation(%q) failed: %v", id, err)
		}
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "reservations_active 1") {
		t.Errorf("expected active gauge of 1, got:\n%s", rec.Body.String())
	}
}
