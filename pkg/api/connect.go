package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// ReservationServiceName is the fully-qualified name of the ReservationService service.
const ReservationServiceName = "reservations.v1.ReservationService"

// Procedure paths for every ReservationService RPC.
const (
	ReservationServiceCreateReservationProcedure = "/reservations.v1.ReservationService/CreateReservation"
	ReservationServiceListReservationsProcedure  = "/reservations.v1.ReservationService/ListReservations"
	ReservationServiceDeleteReservationProcedure = "/reservations.v1.ReservationService/DeleteReservation"
)

// ErrorKindHeader carries the validation failure kind on CreateReservation errors.
const ErrorKindHeader = "Reservation-Error"

// ReservationServiceClient is a client for the reservations.v1.ReservationService service.
type ReservationServiceClient interface {
	CreateReservation(context.Context, *connect.Request[CreateReservationRequest]) (*connect.Response[CreateReservationResponse], error)
	ListReservations(context.Context, *connect.Request[ListReservationsRequest]) (*connect.Response[ListReservationsResponse], error)
	DeleteReservation(context.Context, *connect.Request[DeleteReservationRequest]) (*connect.Response[DeleteReservationResponse], error)
}

// NewReservationServiceClient constructs a client for the
// reservations.v1.ReservationService service. baseURL is the server root,
// e.g. http://localhost:8080.
func NewReservationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReservationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &reservationServiceClient{
		createReservation: connect.NewClient[CreateReservationRequest, CreateReservationResponse](
			httpClient,
			baseURL+ReservationServiceCreateReservationProcedure,
			opts...,
		),
		listReservations: connect.NewClient[ListReservationsRequest, ListReservationsResponse](
			httpClient,
			baseURL+ReservationServiceListReservationsProcedure,
			opts...,
		),
		deleteReservation: connect.NewClient[DeleteReservationRequest, DeleteReservationResponse](
			httpClient,
			baseURL+ReservationServiceDeleteReservationProcedure,
			opts...,
		),
	}
}

type reservationServiceClient struct {
	createReservation *connect.Client[CreateReservationRequest, CreateReservationResponse]
	listReservations  *connect.Client[ListReservationsRequest, ListReservationsResponse]
	deleteReservation *connect.Client[DeleteReservationRequest, DeleteReservationResponse]
}

func (c *reservationServiceClient) CreateReservation(ctx context.Context, req *connect.Request[CreateReservationRequest]) (*connect.Response[CreateReservationResponse], error) {
	return c.createReservation.CallUnary(ctx, req)
}

func (c *reservationServiceClient) ListReservations(ctx context.Context, req *connect.Request[ListReservationsRequest]) (*connect.Response[ListReservationsResponse], error) {
	return c.listReservations.CallUnary(ctx, req)
}

func (c *reservationServiceClient) DeleteReservation(ctx context.Context, req *connect.Request[DeleteReservationRequest]) (*connect.Response[DeleteReservationResponse], error) {
	return c.deleteReservation.CallUnary(ctx, req)
}

// ReservationServiceHandler is an implementation of the reservations.v1.ReservationService service.
type ReservationServiceHandler interface {
	CreateReservation(context.Context, *connect.Request[CreateReservationRequest]) (*connect.Response[CreateReservationResponse], error)
	ListReservations(context.Context, *connect.Request[ListReservationsRequest]) (*connect.Response[ListReservationsResponse], error)
	DeleteReservation(context.Context, *connect.Request[DeleteReservationRequest]) (*connect.Response[DeleteReservationResponse], error)
}

// NewReservationServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewReservationServiceHandler(svc ReservationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	createReservationHandler := connect.NewUnaryHandler(
		ReservationServiceCreateReservationProcedure,
		svc.CreateReservation,
		opts...,
	)
	listReservationsHandler := connect.NewUnaryHandler(
		ReservationServiceListReservationsProcedure,
		svc.ListReservations,
		opts...,
	)
	deleteReservationHandler := connect.NewUnaryHandler(
		ReservationServiceDeleteReservationProcedure,
		svc.DeleteReservation,
		opts...,
	)
	return "/reservations.v1.ReservationService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReservationServiceCreateReservationProcedure:
			createReservationHandler.ServeHTTP(w, r)
		case ReservationServiceListReservationsProcedure:
			listReservationsHandler.ServeHTTP(w, r)
		case ReservationServiceDeleteReservationProcedure:
			deleteReservationHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
