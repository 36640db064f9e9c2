// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: kursus/v1/enrollment.proto

package kursusv1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	v1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
	http "net/http"
	strings "strings"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// EnrollmentServiceName is the fully-qualified name of the EnrollmentService service.
	EnrollmentServiceName = "kursus.v1.EnrollmentService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// EnrollmentServiceEnrollProcedure is the fully-qualified name of the EnrollmentService's Enroll
	// RPC.
	EnrollmentServiceEnrollProcedure = "/kursus.v1.EnrollmentService/Enroll"
	// EnrollmentServiceUnenrollProcedure is the fully-qualified name of the EnrollmentService's
	// Unenroll RPC.
	EnrollmentServiceUnenrollProcedure = "/kursus.v1.EnrollmentService/Unenroll"
	// EnrollmentServiceListMyEnrollmentsProcedure is the fully-qualified name of the
	// EnrollmentService's ListMyEnrollments RPC.
	EnrollmentServiceListMyEnrollmentsProcedure = "/kursus.v1.EnrollmentService/ListMyEnrollments"
	// EnrollmentServiceFavoriteProcedure is the fully-qualified name of the EnrollmentService's
	// Favorite RPC.
	EnrollmentServiceFavoriteProcedure = "/kursus.v1.EnrollmentService/Favorite"
	// EnrollmentServiceUnfavoriteProcedure is the fully-qualified name of the EnrollmentService's
	// Unfavorite RPC.
	EnrollmentServiceUnfavoriteProcedure = "/kursus.v1.EnrollmentService/Unfavorite"
	// EnrollmentServiceListMyFavoritesProcedure is the fully-qualified name of the EnrollmentService's
	// ListMyFavorites RPC.
	EnrollmentServiceListMyFavoritesProcedure = "/kursus.v1.EnrollmentService/ListMyFavorites"
)

// EnrollmentServiceClient is a client for the kursus.v1.EnrollmentService service.
type EnrollmentServiceClient interface {
	Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error)
	Unenroll(context.Context, *connect.Request[v1.UnenrollRequest]) (*connect.Response[v1.UnenrollResponse], error)
	ListMyEnrollments(context.Context, *connect.Request[v1.ListMyEnrollmentsRequest]) (*connect.Response[v1.ListMyEnrollmentsResponse], error)
	Favorite(context.Context, *connect.Request[v1.FavoriteRequest]) (*connect.Response[v1.FavoriteResponse], error)
	Unfavorite(context.Context, *connect.Request[v1.UnfavoriteRequest]) (*connect.Response[v1.UnfavoriteResponse], error)
	ListMyFavorites(context.Context, *connect.Request[v1.ListMyFavoritesRequest]) (*connect.Response[v1.ListMyFavoritesResponse], error)
}

// NewEnrollmentServiceClient constructs a client for the kursus.v1.EnrollmentService service. By
// default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses,
// and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewEnrollmentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EnrollmentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	enrollmentServiceMethods := v1.File_kursus_v1_enrollment_proto.Services().ByName("EnrollmentService").Methods()
	return &enrollmentServiceClient{
		enroll: connect.NewClient[v1.EnrollRequest, v1.EnrollResponse](
			httpClient,
			baseURL+EnrollmentServiceEnrollProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("Enroll")),
			connect.WithClientOptions(opts...),
		),
		unenroll: connect.NewClient[v1.UnenrollRequest, v1.UnenrollResponse](
			httpClient,
			baseURL+EnrollmentServiceUnenrollProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("Unenroll")),
			connect.WithClientOptions(opts...),
		),
		listMyEnrollments: connect.NewClient[v1.ListMyEnrollmentsRequest, v1.ListMyEnrollmentsResponse](
			httpClient,
			baseURL+EnrollmentServiceListMyEnrollmentsProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("ListMyEnrollments")),
			connect.WithClientOptions(opts...),
		),
		favorite: connect.NewClient[v1.FavoriteRequest, v1.FavoriteResponse](
			httpClient,
			baseURL+EnrollmentServiceFavoriteProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("Favorite")),
			connect.WithClientOptions(opts...),
		),
		unfavorite: connect.NewClient[v1.UnfavoriteRequest, v1.UnfavoriteResponse](
			httpClient,
			baseURL+EnrollmentServiceUnfavoriteProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("Unfavorite")),
			connect.WithClientOptions(opts...),
		),
		listMyFavorites: connect.NewClient[v1.ListMyFavoritesRequest, v1.ListMyFavoritesResponse](
			httpClient,
			baseURL+EnrollmentServiceListMyFavoritesProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("ListMyFavorites")),
			connect.WithClientOptions(opts...),
		),
	}
}

// enrollmentServiceClient implements EnrollmentServiceClient.
type enrollmentServiceClient struct {
	enroll            *connect.Client[v1.EnrollRequest, v1.EnrollResponse]
	unenroll          *connect.Client[v1.UnenrollRequest, v1.UnenrollResponse]
	listMyEnrollments *connect.Client[v1.ListMyEnrollmentsRequest, v1.ListMyEnrollmentsResponse]
	favorite          *connect.Client[v1.FavoriteRequest, v1.FavoriteResponse]
	unfavorite        *connect.Client[v1.UnfavoriteRequest, v1.UnfavoriteResponse]
	listMyFavorites   *connect.Client[v1.ListMyFavoritesRequest, v1.ListMyFavoritesResponse]
}

// Enroll calls kursus.v1.EnrollmentService.Enroll.
func (c *enrollmentServiceClient) Enroll(ctx context.Context, req *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error) {
	return c.enroll.CallUnary(ctx, req)
}

// Unenroll calls kursus.v1.EnrollmentService.Unenroll.
func (c *enrollmentServiceClient) Unenroll(ctx context.Context, req *connect.Request[v1.UnenrollRequest]) (*connect.Response[v1.UnenrollResponse], error) {
	return c.unenroll.CallUnary(ctx, req)
}

// ListMyEnrollments calls kursus.v1.EnrollmentService.ListMyEnrollments.
func (c *enrollmentServiceClient) ListMyEnrollments(ctx context.Context, req *connect.Request[v1.ListMyEnrollmentsRequest]) (*connect.Response[v1.ListMyEnrollmentsResponse], error) {
	return c.listMyEnrollments.CallUnary(ctx, req)
}

// Favorite calls kursus.v1.EnrollmentService.Favorite.
func (c *enrollmentServiceClient) Favorite(ctx context.Context, req *connect.Request[v1.FavoriteRequest]) (*connect.Response[v1.FavoriteResponse], error) {
	return c.favorite.CallUnary(ctx, req)
}

// Unfavorite calls kursus.v1.EnrollmentService.Unfavorite.
func (c *enrollmentServiceClient) Unfavorite(ctx context.Context, req *connect.Request[v1.UnfavoriteRequest]) (*connect.Response[v1.UnfavoriteResponse], error) {
	return c.unfavorite.CallUnary(ctx, req)
}

// ListMyFavorites calls kursus.v1.EnrollmentService.ListMyFavorites.
func (c *enrollmentServiceClient) ListMyFavorites(ctx context.Context, req *connect.Request[v1.ListMyFavoritesRequest]) (*connect.Response[v1.ListMyFavoritesResponse], error) {
	return c.listMyFavorites.CallUnary(ctx, req)
}

// EnrollmentServiceHandler is an implementation of the kursus.v1.EnrollmentService service.
type EnrollmentServiceHandler interface {
	Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error)
	Unenroll(context.Context, *connect.Request[v1.UnenrollRequest]) (*connect.Response[v1.UnenrollResponse], error)
	ListMyEnrollments(context.Context, *connect.Request[v1.ListMyEnrollmentsRequest]) (*connect.Response[v1.ListMyEnrollmentsResponse], error)
	Favorite(context.Context, *connect.Request[v1.FavoriteRequest]) (*connect.Response[v1.FavoriteResponse], error)
	Unfavorite(context.Context, *connect.Request[v1.UnfavoriteRequest]) (*connect.Response[v1.UnfavoriteResponse], error)
	ListMyFavorites(context.Context, *connect.Request[v1.ListMyFavoritesRequest]) (*connect.Response[v1.ListMyFavoritesResponse], error)
}

// NewEnrollmentServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewEnrollmentServiceHandler(svc EnrollmentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	enrollmentServiceMethods := v1.File_kursus_v1_enrollment_proto.Services().ByName("EnrollmentService").Methods()
	enrollmentServiceEnrollHandler := connect.NewUnaryHandler(
		EnrollmentServiceEnrollProcedure,
		svc.Enroll,
		connect.WithSchema(enrollmentServiceMethods.ByName("Enroll")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceUnenrollHandler := connect.NewUnaryHandler(
		EnrollmentServiceUnenrollProcedure,
		svc.Unenroll,
		connect.WithSchema(enrollmentServiceMethods.ByName("Unenroll")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceListMyEnrollmentsHandler := connect.NewUnaryHandler(
		EnrollmentServiceListMyEnrollmentsProcedure,
		svc.ListMyEnrollments,
		connect.WithSchema(enrollmentServiceMethods.ByName("ListMyEnrollments")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceFavoriteHandler := connect.NewUnaryHandler(
		EnrollmentServiceFavoriteProcedure,
		svc.Favorite,
		connect.WithSchema(enrollmentServiceMethods.ByName("Favorite")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceUnfavoriteHandler := connect.NewUnaryHandler(
		EnrollmentServiceUnfavoriteProcedure,
		svc.Unfavorite,
		connect.WithSchema(enrollmentServiceMethods.ByName("Unfavorite")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceListMyFavoritesHandler := connect.NewUnaryHandler(
		EnrollmentServiceListMyFavoritesProcedure,
		svc.ListMyFavorites,
		connect.WithSchema(enrollmentServiceMethods.ByName("ListMyFavorites")),
		connect.WithHandlerOptions(opts...),
	)
	return "/kursus.v1.EnrollmentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EnrollmentServiceEnrollProcedure:
			enrollmentServiceEnrollHandler.ServeHTTP(w, r)
		case EnrollmentServiceUnenrollProcedure:
			enrollmentServiceUnenrollHandler.ServeHTTP(w, r)
		case EnrollmentServiceListMyEnrollmentsProcedure:
			enrollmentServiceListMyEnrollmentsHandler.ServeHTTP(w, r)
		case EnrollmentServiceFavoriteProcedure:
			enrollmentServiceFavoriteHandler.ServeHTTP(w, r)
		case EnrollmentServiceUnfavoriteProcedure:
			enrollmentServiceUnfavoriteHandler.ServeHTTP(w, r)
		case EnrollmentServiceListMyFavoritesProcedure:
			enrollmentServiceListMyFavoritesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedEnrollmentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedEnrollmentServiceHandler struct{}

func (UnimplementedEnrollmentServiceHandler) Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.Enroll is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) Unenroll(context.Context, *connect.Request[v1.UnenrollRequest]) (*connect.Response[v1.UnenrollResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.Unenroll is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) ListMyEnrollments(context.Context, *connect.Request[v1.ListMyEnrollmentsRequest]) (*connect.Response[v1.ListMyEnrollmentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.ListMyEnrollments is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) Favorite(context.Context, *connect.Request[v1.FavoriteRequest]) (*connect.Response[v1.FavoriteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.Favorite is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) Unfavorite(context.Context, *connect.Request[v1.UnfavoriteRequest]) (*connect.Response[v1.UnfavoriteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.Unfavorite is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) ListMyFavorites(context.Context, *connect.Request[v1.ListMyFavoritesRequest]) (*connect.Response[v1.ListMyFavoritesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.EnrollmentService.ListMyFavorites is not implemented"))
}
