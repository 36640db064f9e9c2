// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: kursus/v1/catalog.proto

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
	// CatalogServiceName is the fully-qualified name of the CatalogService service.
	CatalogServiceName = "kursus.v1.CatalogService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// CatalogServiceListCoursesProcedure is the fully-qualified name of the CatalogService's
	// ListCourses RPC.
	CatalogServiceListCoursesProcedure = "/kursus.v1.CatalogService/ListCourses"
	// CatalogServiceGetCourseProcedure is the fully-qualified name of the CatalogService's GetCourse
	// RPC.
	CatalogServiceGetCourseProcedure = "/kursus.v1.CatalogService/GetCourse"
	// CatalogServiceFeaturedCoursesProcedure is the fully-qualified name of the CatalogService's
	// FeaturedCourses RPC.
	CatalogServiceFeaturedCoursesProcedure = "/kursus.v1.CatalogService/FeaturedCourses"
	// CatalogServiceMyCoursesProcedure is the fully-qualified name of the CatalogService's MyCourses
	// RPC.
	CatalogServiceMyCoursesProcedure = "/kursus.v1.CatalogService/MyCourses"
	// CatalogServiceCreateCourseProcedure is the fully-qualified name of the CatalogService's
	// CreateCourse RPC.
	CatalogServiceCreateCourseProcedure = "/kursus.v1.CatalogService/CreateCourse"
	// CatalogServiceUpdateCourseProcedure is the fully-qualified name of the CatalogService's
	// UpdateCourse RPC.
	CatalogServiceUpdateCourseProcedure = "/kursus.v1.CatalogService/UpdateCourse"
	// CatalogServiceDeleteCourseProcedure is the fully-qualified name of the CatalogService's
	// DeleteCourse RPC.
	CatalogServiceDeleteCourseProcedure = "/kursus.v1.CatalogService/DeleteCourse"
	// CatalogServiceListCategoriesProcedure is the fully-qualified name of the CatalogService's
	// ListCategories RPC.
	CatalogServiceListCategoriesProcedure = "/kursus.v1.CatalogService/ListCategories"
	// CatalogServiceCreateCategoryProcedure is the fully-qualified name of the CatalogService's
	// CreateCategory RPC.
	CatalogServiceCreateCategoryProcedure = "/kursus.v1.CatalogService/CreateCategory"
	// CatalogServiceCreateThumbnailUploadProcedure is the fully-qualified name of the CatalogService's
	// CreateThumbnailUpload RPC.
	CatalogServiceCreateThumbnailUploadProcedure = "/kursus.v1.CatalogService/CreateThumbnailUpload"
)

// CatalogServiceClient is a client for the kursus.v1.CatalogService service.
type CatalogServiceClient interface {
	ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error)
	GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error)
	FeaturedCourses(context.Context, *connect.Request[v1.FeaturedCoursesRequest]) (*connect.Response[v1.FeaturedCoursesResponse], error)
	MyCourses(context.Context, *connect.Request[v1.MyCoursesRequest]) (*connect.Response[v1.MyCoursesResponse], error)
	CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error)
	UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error)
	ListCategories(context.Context, *connect.Request[v1.ListCategoriesRequest]) (*connect.Response[v1.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[v1.CreateCategoryRequest]) (*connect.Response[v1.CreateCategoryResponse], error)
	CreateThumbnailUpload(context.Context, *connect.Request[v1.CreateThumbnailUploadRequest]) (*connect.Response[v1.CreateThumbnailUploadResponse], error)
}

// NewCatalogServiceClient constructs a client for the kursus.v1.CatalogService service. By default,
// it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and
// sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC()
// or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	catalogServiceMethods := v1.File_kursus_v1_catalog_proto.Services().ByName("CatalogService").Methods()
	return &catalogServiceClient{
		listCourses: connect.NewClient[v1.ListCoursesRequest, v1.ListCoursesResponse](
			httpClient,
			baseURL+CatalogServiceListCoursesProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("ListCourses")),
			connect.WithClientOptions(opts...),
		),
		getCourse: connect.NewClient[v1.GetCourseRequest, v1.GetCourseResponse](
			httpClient,
			baseURL+CatalogServiceGetCourseProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("GetCourse")),
			connect.WithClientOptions(opts...),
		),
		featuredCourses: connect.NewClient[v1.FeaturedCoursesRequest, v1.FeaturedCoursesResponse](
			httpClient,
			baseURL+CatalogServiceFeaturedCoursesProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("FeaturedCourses")),
			connect.WithClientOptions(opts...),
		),
		myCourses: connect.NewClient[v1.MyCoursesRequest, v1.MyCoursesResponse](
			httpClient,
			baseURL+CatalogServiceMyCoursesProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("MyCourses")),
			connect.WithClientOptions(opts...),
		),
		createCourse: connect.NewClient[v1.CreateCourseRequest, v1.CreateCourseResponse](
			httpClient,
			baseURL+CatalogServiceCreateCourseProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("CreateCourse")),
			connect.WithClientOptions(opts...),
		),
		updateCourse: connect.NewClient[v1.UpdateCourseRequest, v1.UpdateCourseResponse](
			httpClient,
			baseURL+CatalogServiceUpdateCourseProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("UpdateCourse")),
			connect.WithClientOptions(opts...),
		),
		deleteCourse: connect.NewClient[v1.DeleteCourseRequest, v1.DeleteCourseResponse](
			httpClient,
			baseURL+CatalogServiceDeleteCourseProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("DeleteCourse")),
			connect.WithClientOptions(opts...),
		),
		listCategories: connect.NewClient[v1.ListCategoriesRequest, v1.ListCategoriesResponse](
			httpClient,
			baseURL+CatalogServiceListCategoriesProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("ListCategories")),
			connect.WithClientOptions(opts...),
		),
		createCategory: connect.NewClient[v1.CreateCategoryRequest, v1.CreateCategoryResponse](
			httpClient,
			baseURL+CatalogServiceCreateCategoryProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("CreateCategory")),
			connect.WithClientOptions(opts...),
		),
		createThumbnailUpload: connect.NewClient[v1.CreateThumbnailUploadRequest, v1.CreateThumbnailUploadResponse](
			httpClient,
			baseURL+CatalogServiceCreateThumbnailUploadProcedure,
			connect.WithSchema(catalogServiceMethods.ByName("CreateThumbnailUpload")),
			connect.WithClientOptions(opts...),
		),
	}
}

// catalogServiceClient implements CatalogServiceClient.
type catalogServiceClient struct {
	listCourses           *connect.Client[v1.ListCoursesRequest, v1.ListCoursesResponse]
	getCourse             *connect.Client[v1.GetCourseRequest, v1.GetCourseResponse]
	featuredCourses       *connect.Client[v1.FeaturedCoursesRequest, v1.FeaturedCoursesResponse]
	myCourses             *connect.Client[v1.MyCoursesRequest, v1.MyCoursesResponse]
	createCourse          *connect.Client[v1.CreateCourseRequest, v1.CreateCourseResponse]
	updateCourse          *connect.Client[v1.UpdateCourseRequest, v1.UpdateCourseResponse]
	deleteCourse          *connect.Client[v1.DeleteCourseRequest, v1.DeleteCourseResponse]
	listCategories        *connect.Client[v1.ListCategoriesRequest, v1.ListCategoriesResponse]
	createCategory        *connect.Client[v1.CreateCategoryRequest, v1.CreateCategoryResponse]
	createThumbnailUpload *connect.Client[v1.CreateThumbnailUploadRequest, v1.CreateThumbnailUploadResponse]
}

// ListCourses calls kursus.v1.CatalogService.ListCourses.
func (c *catalogServiceClient) ListCourses(ctx context.Context, req *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error) {
	return c.listCourses.CallUnary(ctx, req)
}

// GetCourse calls kursus.v1.CatalogService.GetCourse.
func (c *catalogServiceClient) GetCourse(ctx context.Context, req *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error) {
	return c.getCourse.CallUnary(ctx, req)
}

// FeaturedCourses calls kursus.v1.CatalogService.FeaturedCourses.
func (c *catalogServiceClient) FeaturedCourses(ctx context.Context, req *connect.Request[v1.FeaturedCoursesRequest]) (*connect.Response[v1.FeaturedCoursesResponse], error) {
	return c.featuredCourses.CallUnary(ctx, req)
}

// MyCourses calls kursus.v1.CatalogService.MyCourses.
func (c *catalogServiceClient) MyCourses(ctx context.Context, req *connect.Request[v1.MyCoursesRequest]) (*connect.Response[v1.MyCoursesResponse], error) {
	return c.myCourses.CallUnary(ctx, req)
}

// CreateCourse calls kursus.v1.CatalogService.CreateCourse.
func (c *catalogServiceClient) CreateCourse(ctx context.Context, req *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error) {
	return c.createCourse.CallUnary(ctx, req)
}

// UpdateCourse calls kursus.v1.CatalogService.UpdateCourse.
func (c *catalogServiceClient) UpdateCourse(ctx context.Context, req *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error) {
	return c.updateCourse.CallUnary(ctx, req)
}

// DeleteCourse calls kursus.v1.CatalogService.DeleteCourse.
func (c *catalogServiceClient) DeleteCourse(ctx context.Context, req *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error) {
	return c.deleteCourse.CallUnary(ctx, req)
}

// ListCategories calls kursus.v1.CatalogService.ListCategories.
func (c *catalogServiceClient) ListCategories(ctx context.Context, req *connect.Request[v1.ListCategoriesRequest]) (*connect.Response[v1.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// CreateCategory calls kursus.v1.CatalogService.CreateCategory.
func (c *catalogServiceClient) CreateCategory(ctx context.Context, req *connect.Request[v1.CreateCategoryRequest]) (*connect.Response[v1.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

// CreateThumbnailUpload calls kursus.v1.CatalogService.CreateThumbnailUpload.
func (c *catalogServiceClient) CreateThumbnailUpload(ctx context.Context, req *connect.Request[v1.CreateThumbnailUploadRequest]) (*connect.Response[v1.CreateThumbnailUploadResponse], error) {
	return c.createThumbnailUpload.CallUnary(ctx, req)
}

// CatalogServiceHandler is an implementation of the kursus.v1.CatalogService service.
type CatalogServiceHandler interface {
	ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error)
	GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error)
	FeaturedCourses(context.Context, *connect.Request[v1.FeaturedCoursesRequest]) (*connect.Response[v1.FeaturedCoursesResponse], error)
	MyCourses(context.Context, *connect.Request[v1.MyCoursesRequest]) (*connect.Response[v1.MyCoursesResponse], error)
	CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error)
	UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error)
	ListCategories(context.Context, *connect.Request[v1.ListCategoriesRequest]) (*connect.Response[v1.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[v1.CreateCategoryRequest]) (*connect.Response[v1.CreateCategoryResponse], error)
	CreateThumbnailUpload(context.Context, *connect.Request[v1.CreateThumbnailUploadRequest]) (*connect.Response[v1.CreateThumbnailUploadResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	catalogServiceMethods := v1.File_kursus_v1_catalog_proto.Services().ByName("CatalogService").Methods()
	catalogServiceListCoursesHandler := connect.NewUnaryHandler(
		CatalogServiceListCoursesProcedure,
		svc.ListCourses,
		connect.WithSchema(catalogServiceMethods.ByName("ListCourses")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceGetCourseHandler := connect.NewUnaryHandler(
		CatalogServiceGetCourseProcedure,
		svc.GetCourse,
		connect.WithSchema(catalogServiceMethods.ByName("GetCourse")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceFeaturedCoursesHandler := connect.NewUnaryHandler(
		CatalogServiceFeaturedCoursesProcedure,
		svc.FeaturedCourses,
		connect.WithSchema(catalogServiceMethods.ByName("FeaturedCourses")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceMyCoursesHandler := connect.NewUnaryHandler(
		CatalogServiceMyCoursesProcedure,
		svc.MyCourses,
		connect.WithSchema(catalogServiceMethods.ByName("MyCourses")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceCreateCourseHandler := connect.NewUnaryHandler(
		CatalogServiceCreateCourseProcedure,
		svc.CreateCourse,
		connect.WithSchema(catalogServiceMethods.ByName("CreateCourse")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceUpdateCourseHandler := connect.NewUnaryHandler(
		CatalogServiceUpdateCourseProcedure,
		svc.UpdateCourse,
		connect.WithSchema(catalogServiceMethods.ByName("UpdateCourse")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceDeleteCourseHandler := connect.NewUnaryHandler(
		CatalogServiceDeleteCourseProcedure,
		svc.DeleteCourse,
		connect.WithSchema(catalogServiceMethods.ByName("DeleteCourse")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceListCategoriesHandler := connect.NewUnaryHandler(
		CatalogServiceListCategoriesProcedure,
		svc.ListCategories,
		connect.WithSchema(catalogServiceMethods.ByName("ListCategories")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceCreateCategoryHandler := connect.NewUnaryHandler(
		CatalogServiceCreateCategoryProcedure,
		svc.CreateCategory,
		connect.WithSchema(catalogServiceMethods.ByName("CreateCategory")),
		connect.WithHandlerOptions(opts...),
	)
	catalogServiceCreateThumbnailUploadHandler := connect.NewUnaryHandler(
		CatalogServiceCreateThumbnailUploadProcedure,
		svc.CreateThumbnailUpload,
		connect.WithSchema(catalogServiceMethods.ByName("CreateThumbnailUpload")),
		connect.WithHandlerOptions(opts...),
	)
	return "/kursus.v1.CatalogService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceListCoursesProcedure:
			catalogServiceListCoursesHandler.ServeHTTP(w, r)
		case CatalogServiceGetCourseProcedure:
			catalogServiceGetCourseHandler.ServeHTTP(w, r)
		case CatalogServiceFeaturedCoursesProcedure:
			catalogServiceFeaturedCoursesHandler.ServeHTTP(w, r)
		case CatalogServiceMyCoursesProcedure:
			catalogServiceMyCoursesHandler.ServeHTTP(w, r)
		case CatalogServiceCreateCourseProcedure:
			catalogServiceCreateCourseHandler.ServeHTTP(w, r)
		case CatalogServiceUpdateCourseProcedure:
			catalogServiceUpdateCourseHandler.ServeHTTP(w, r)
		case CatalogServiceDeleteCourseProcedure:
			catalogServiceDeleteCourseHandler.ServeHTTP(w, r)
		case CatalogServiceListCategoriesProcedure:
			catalogServiceListCategoriesHandler.ServeHTTP(w, r)
		case CatalogServiceCreateCategoryProcedure:
			catalogServiceCreateCategoryHandler.ServeHTTP(w, r)
		case CatalogServiceCreateThumbnailUploadProcedure:
			catalogServiceCreateThumbnailUploadHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.ListCourses is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.GetCourse is not implemented"))
}

func (UnimplementedCatalogServiceHandler) FeaturedCourses(context.Context, *connect.Request[v1.FeaturedCoursesRequest]) (*connect.Response[v1.FeaturedCoursesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.FeaturedCourses is not implemented"))
}

func (UnimplementedCatalogServiceHandler) MyCourses(context.Context, *connect.Request[v1.MyCoursesRequest]) (*connect.Response[v1.MyCoursesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.MyCourses is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.CreateCourse is not implemented"))
}

func (UnimplementedCatalogServiceHandler) UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.UpdateCourse is not implemented"))
}

func (UnimplementedCatalogServiceHandler) DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.DeleteCourse is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListCategories(context.Context, *connect.Request[v1.ListCategoriesRequest]) (*connect.Response[v1.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.ListCategories is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateCategory(context.Context, *connect.Request[v1.CreateCategoryRequest]) (*connect.Response[v1.CreateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.CreateCategory is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateThumbnailUpload(context.Context, *connect.Request[v1.CreateThumbnailUploadRequest]) (*connect.Response[v1.CreateThumbnailUploadResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.CatalogService.CreateThumbnailUpload is not implemented"))
}
