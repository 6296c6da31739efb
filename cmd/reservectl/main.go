// Command reservectl talks to a running reservation server.
//
//	reservectl add -name "Hanako Yamada" -start 2025-05-01T10:00 -end 2025-05-01T11:00 [-note text]
//	reservectl list
//	reservectl delete -id <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/reservations/internal/booking"
	"github.com/mmynk/reservations/internal/service"
	"github.com/mmynk/reservations/pkg/api"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, http.DefaultClient); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, httpClient connect.HTTPClient) error {
	global := flag.NewFlagSet("reservectl", flag.ContinueOnError)
	addr := global.String("addr", "http://localhost:8080", "server base URL")
	timeout := global.Duration("timeout", 10*time.Second, "request timeout")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		return fmt.Errorf("usage: reservectl [-addr URL] add|list|delete [flags]")
	}

	client := api.NewReservationServiceClient(httpClient, *addr)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "add":
		return add(ctx, client, rest, out)
	case "list":
		return list(ctx, client, out)
	case "delete":
		return remove(ctx, client, rest, out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func add(ctx context.Context, client api.ReservationServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "guest name")
	start := fs.String("start", "", "start time (2006-01-02T15:04 or RFC 3339)")
	end := fs.String("end", "", "end time (2006-01-02T15:04 or RFC 3339)")
	note := fs.String("note", "", "optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.CreateReservation(ctx, connect.NewRequest(&api.CreateReservationRequest{
		GuestName: *name,
		StartAt:   *start,
		EndAt:     *end,
		Note:      *note,
	}))
	if err != nil {
		return describe(err)
	}

	fmt.Fprintf(out, "created %s\n", resp.Msg.Reservation.Id)
	printReservation(out, resp.Msg.Reservation)
	return nil
}

func list(ctx context.Context, client api.ReservationServiceClient, out io.Writer) error {
	resp, err := client.ListReservations(ctx, connect.NewRequest(&api.ListReservationsRequest{}))
	if err != nil {
		return describe(err)
	}

	if len(resp.Msg.Reservations) == 0 {
		fmt.Fprintln(out, "no reservations")
		return nil
	}
	for _, r := range resp.Msg.Reservations {
		printReservation(out, r)
	}
	return nil
}

func remove(ctx context.Context, client api.ReservationServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.String("id", "", "reservation ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.DeleteReservation(ctx, connect.NewRequest(&api.DeleteReservationRequest{Id: *id}))
	if err != nil {
		return describe(err)
	}

	if resp.Msg.Deleted {
		fmt.Fprintf(out, "deleted %s\n", *id)
	} else {
		fmt.Fprintf(out, "no reservation %s\n", *id)
	}
	return nil
}

// printReservation writes one reservation in the list display format.
func printReservation(out io.Writer, r *api.Reservation) {
	fmt.Fprintf(out, "%s  %s 〜 %s  %s\n",
		r.Id,
		api.FormatInstant(r.StartAt, time.Local),
		api.FormatInstant(r.EndAt, time.Local),
		r.GuestName,
	)
	if r.Note != nil {
		fmt.Fprintf(out, "    %s\n", *r.Note)
	}
}

// describe turns a validation failure into a message for the user.
func describe(err error) error {
	kind, ok := service.ValidationKind(err)
	if !ok {
		return err
	}
	switch kind {
	case booking.KindEmptyName:
		return fmt.Errorf("enter the guest name")
	case booking.KindMissingDateTime:
		return fmt.Errorf("enter both a start and an end time")
	case booking.KindInvalidRange:
		return fmt.Errorf("the start must be before the end")
	case booking.KindConflict:
		return fmt.Errorf("that time slot is already booked")
	default:
		return err
	}
}
