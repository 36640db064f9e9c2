// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: kursus/v1/lesson.proto

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
	// LessonServiceName is the fully-qualified name of the LessonService service.
	LessonServiceName = "kursus.v1.LessonService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// LessonServiceCreateLessonProcedure is the fully-qualified name of the LessonService's
	// CreateLesson RPC.
	LessonServiceCreateLessonProcedure = "/kursus.v1.LessonService/CreateLesson"
	// LessonServiceGetLessonProcedure is the fully-qualified name of the LessonService's GetLesson RPC.
	LessonServiceGetLessonProcedure = "/kursus.v1.LessonService/GetLesson"
	// LessonServiceListLessonStubsProcedure is the fully-qualified name of the LessonService's
	// ListLessonStubs RPC.
	LessonServiceListLessonStubsProcedure = "/kursus.v1.LessonService/ListLessonStubs"
	// LessonServiceUpdateLessonProcedure is the fully-qualified name of the LessonService's
	// UpdateLesson RPC.
	LessonServiceUpdateLessonProcedure = "/kursus.v1.LessonService/UpdateLesson"
	// LessonServiceMoveLessonProcedure is the fully-qualified name of the LessonService's MoveLesson
	// RPC.
	LessonServiceMoveLessonProcedure = "/kursus.v1.LessonService/MoveLesson"
	// LessonServiceDeleteLessonProcedure is the fully-qualified name of the LessonService's
	// DeleteLesson RPC.
	LessonServiceDeleteLessonProcedure = "/kursus.v1.LessonService/DeleteLesson"
)

// LessonServiceClient is a client for the kursus.v1.LessonService service.
type LessonServiceClient interface {
	CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error)
	GetLesson(context.Context, *connect.Request[v1.GetLessonRequest]) (*connect.Response[v1.GetLessonResponse], error)
	ListLessonStubs(context.Context, *connect.Request[v1.ListLessonStubsRequest]) (*connect.Response[v1.ListLessonStubsResponse], error)
	UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error)
	MoveLesson(context.Context, *connect.Request[v1.MoveLessonRequest]) (*connect.Response[v1.MoveLessonResponse], error)
	DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error)
}

// NewLessonServiceClient constructs a client for the kursus.v1.LessonService service. By default,
// it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and
// sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC()
// or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLessonServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LessonServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	lessonServiceMethods := v1.File_kursus_v1_lesson_proto.Services().ByName("LessonService").Methods()
	return &lessonServiceClient{
		createLesson: connect.NewClient[v1.CreateLessonRequest, v1.CreateLessonResponse](
			httpClient,
			baseURL+LessonServiceCreateLessonProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("CreateLesson")),
			connect.WithClientOptions(opts...),
		),
		getLesson: connect.NewClient[v1.GetLessonRequest, v1.GetLessonResponse](
			httpClient,
			baseURL+LessonServiceGetLessonProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("GetLesson")),
			connect.WithClientOptions(opts...),
		),
		listLessonStubs: connect.NewClient[v1.ListLessonStubsRequest, v1.ListLessonStubsResponse](
			httpClient,
			baseURL+LessonServiceListLessonStubsProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("ListLessonStubs")),
			connect.WithClientOptions(opts...),
		),
		updateLesson: connect.NewClient[v1.UpdateLessonRequest, v1.UpdateLessonResponse](
			httpClient,
			baseURL+LessonServiceUpdateLessonProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("UpdateLesson")),
			connect.WithClientOptions(opts...),
		),
		moveLesson: connect.NewClient[v1.MoveLessonRequest, v1.MoveLessonResponse](
			httpClient,
			baseURL+LessonServiceMoveLessonProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("MoveLesson")),
			connect.WithClientOptions(opts...),
		),
		deleteLesson: connect.NewClient[v1.DeleteLessonRequest, v1.DeleteLessonResponse](
			httpClient,
			baseURL+LessonServiceDeleteLessonProcedure,
			connect.WithSchema(lessonServiceMethods.ByName("DeleteLesson")),
			connect.WithClientOptions(opts...),
		),
	}
}

// lessonServiceClient implements LessonServiceClient.
type lessonServiceClient struct {
	createLesson    *connect.Client[v1.CreateLessonRequest, v1.CreateLessonResponse]
	getLesson       *connect.Client[v1.GetLessonRequest, v1.GetLessonResponse]
	listLessonStubs *connect.Client[v1.ListLessonStubsRequest, v1.ListLessonStubsResponse]
	updateLesson    *connect.Client[v1.UpdateLessonRequest, v1.UpdateLessonResponse]
	moveLesson      *connect.Client[v1.MoveLessonRequest, v1.MoveLessonResponse]
	deleteLesson    *connect.Client[v1.DeleteLessonRequest, v1.DeleteLessonResponse]
}

// CreateLesson calls kursus.v1.LessonService.CreateLesson.
func (c *lessonServiceClient) CreateLesson(ctx context.Context, req *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error) {
	return c.createLesson.CallUnary(ctx, req)
}

// GetLesson calls kursus.v1.LessonService.GetLesson.
func (c *lessonServiceClient) GetLesson(ctx context.Context, req *connect.Request[v1.GetLessonRequest]) (*connect.Response[v1.GetLessonResponse], error) {
	return c.getLesson.CallUnary(ctx, req)
}

// ListLessonStubs calls kursus.v1.LessonService.ListLessonStubs.
func (c *lessonServiceClient) ListLessonStubs(ctx context.Context, req *connect.Request[v1.ListLessonStubsRequest]) (*connect.Response[v1.ListLessonStubsResponse], error) {
	return c.listLessonStubs.CallUnary(ctx, req)
}

// UpdateLesson calls kursus.v1.LessonService.UpdateLesson.
func (c *lessonServiceClient) UpdateLesson(ctx context.Context, req *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error) {
	return c.updateLesson.CallUnary(ctx, req)
}

// MoveLesson calls kursus.v1.LessonService.MoveLesson.
func (c *lessonServiceClient) MoveLesson(ctx context.Context, req *connect.Request[v1.MoveLessonRequest]) (*connect.Response[v1.MoveLessonResponse], error) {
	return c.moveLesson.CallUnary(ctx, req)
}

// DeleteLesson calls kursus.v1.LessonService.DeleteLesson.
func (c *lessonServiceClient) DeleteLesson(ctx context.Context, req *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error) {
	return c.deleteLesson.CallUnary(ctx, req)
}

// LessonServiceHandler is an implementation of the kursus.v1.LessonService service.
type LessonServiceHandler interface {
	CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error)
	GetLesson(context.Context, *connect.Request[v1.GetLessonRequest]) (*connect.Response[v1.GetLessonResponse], error)
	ListLessonStubs(context.Context, *connect.Request[v1.ListLessonStubsRequest]) (*connect.Response[v1.ListLessonStubsResponse], error)
	UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error)
	MoveLesson(context.Context, *connect.Request[v1.MoveLessonRequest]) (*connect.Response[v1.MoveLessonResponse], error)
	DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error)
}

// NewLessonServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewLessonServiceHandler(svc LessonServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	lessonServiceMethods := v1.File_kursus_v1_lesson_proto.Services().ByName("LessonService").Methods()
	lessonServiceCreateLessonHandler := connect.NewUnaryHandler(
		LessonServiceCreateLessonProcedure,
		svc.CreateLesson,
		connect.WithSchema(lessonServiceMethods.ByName("CreateLesson")),
		connect.WithHandlerOptions(opts...),
	)
	lessonServiceGetLessonHandler := connect.NewUnaryHandler(
		LessonServiceGetLessonProcedure,
		svc.GetLesson,
		connect.WithSchema(lessonServiceMethods.ByName("GetLesson")),
		connect.WithHandlerOptions(opts...),
	)
	lessonServiceListLessonStubsHandler := connect.NewUnaryHandler(
		LessonServiceListLessonStubsProcedure,
		svc.ListLessonStubs,
		connect.WithSchema(lessonServiceMethods.ByName("ListLessonStubs")),
		connect.WithHandlerOptions(opts...),
	)
	lessonServiceUpdateLessonHandler := connect.NewUnaryHandler(
		LessonServiceUpdateLessonProcedure,
		svc.UpdateLesson,
		connect.WithSchema(lessonServiceMethods.ByName("UpdateLesson")),
		connect.WithHandlerOptions(opts...),
	)
	lessonServiceMoveLessonHandler := connect.NewUnaryHandler(
		LessonServiceMoveLessonProcedure,
		svc.MoveLesson,
		connect.WithSchema(lessonServiceMethods.ByName("MoveLesson")),
		connect.WithHandlerOptions(opts...),
	)
	lessonServiceDeleteLessonHandler := connect.NewUnaryHandler(
		LessonServiceDeleteLessonProcedure,
		svc.DeleteLesson,
		connect.WithSchema(lessonServiceMethods.ByName("DeleteLesson")),
		connect.WithHandlerOptions(opts...),
	)
	return "/kursus.v1.LessonService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LessonServiceCreateLessonProcedure:
			lessonServiceCreateLessonHandler.ServeHTTP(w, r)
		case LessonServiceGetLessonProcedure:
			lessonServiceGetLessonHandler.ServeHTTP(w, r)
		case LessonServiceListLessonStubsProcedure:
			lessonServiceListLessonStubsHandler.ServeHTTP(w, r)
		case LessonServiceUpdateLessonProcedure:
			lessonServiceUpdateLessonHandler.ServeHTTP(w, r)
		case LessonServiceMoveLessonProcedure:
			lessonServiceMoveLessonHandler.ServeHTTP(w, r)
		case LessonServiceDeleteLessonProcedure:
			lessonServiceDeleteLessonHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLessonServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLessonServiceHandler struct{}

func (UnimplementedLessonServiceHandler) CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.CreateLesson is not implemented"))
}

func (UnimplementedLessonServiceHandler) GetLesson(context.Context, *connect.Request[v1.GetLessonRequest]) (*connect.Response[v1.GetLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.GetLesson is not implemented"))
}

func (UnimplementedLessonServiceHandler) ListLessonStubs(context.Context, *connect.Request[v1.ListLessonStubsRequest]) (*connect.Response[v1.ListLessonStubsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.ListLessonStubs is not implemented"))
}

func (UnimplementedLessonServiceHandler) UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.UpdateLesson is not implemented"))
}

func (UnimplementedLessonServiceHandler) MoveLesson(context.Context, *connect.Request[v1.MoveLessonRequest]) (*connect.Response[v1.MoveLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.MoveLesson is not implemented"))
}

func (UnimplementedLessonServiceHandler) DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.LessonService.DeleteLesson is not implemented"))
}
