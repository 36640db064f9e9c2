// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: kursus/v1/user.proto

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
	// UserServiceName is the fully-qualified name of the UserService service.
	UserServiceName = "kursus.v1.UserService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// UserServiceRegisterProcedure is the fully-qualified name of the UserService's Register RPC.
	UserServiceRegisterProcedure = "/kursus.v1.UserService/Register"
	// UserServiceLoginProcedure is the fully-qualified name of the UserService's Login RPC.
	UserServiceLoginProcedure = "/kursus.v1.UserService/Login"
	// UserServiceGetMeProcedure is the fully-qualified name of the UserService's GetMe RPC.
	UserServiceGetMeProcedure = "/kursus.v1.UserService/GetMe"
	// UserServiceUpdateMeProcedure is the fully-qualified name of the UserService's UpdateMe RPC.
	UserServiceUpdateMeProcedure = "/kursus.v1.UserService/UpdateMe"
	// UserServiceChangePasswordProcedure is the fully-qualified name of the UserService's
	// ChangePassword RPC.
	UserServiceChangePasswordProcedure = "/kursus.v1.UserService/ChangePassword"
	// UserServiceBecomeInstructorProcedure is the fully-qualified name of the UserService's
	// BecomeInstructor RPC.
	UserServiceBecomeInstructorProcedure = "/kursus.v1.UserService/BecomeInstructor"
	// UserServiceDeleteMeProcedure is the fully-qualified name of the UserService's DeleteMe RPC.
	UserServiceDeleteMeProcedure = "/kursus.v1.UserService/DeleteMe"
)

// UserServiceClient is a client for the kursus.v1.UserService service.
type UserServiceClient interface {
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.RegisterResponse], error)
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error)
	GetMe(context.Context, *connect.Request[v1.GetMeRequest]) (*connect.Response[v1.GetMeResponse], error)
	UpdateMe(context.Context, *connect.Request[v1.UpdateMeRequest]) (*connect.Response[v1.UpdateMeResponse], error)
	ChangePassword(context.Context, *connect.Request[v1.ChangePasswordRequest]) (*connect.Response[v1.ChangePasswordResponse], error)
	BecomeInstructor(context.Context, *connect.Request[v1.BecomeInstructorRequest]) (*connect.Response[v1.BecomeInstructorResponse], error)
	DeleteMe(context.Context, *connect.Request[v1.DeleteMeRequest]) (*connect.Response[v1.DeleteMeResponse], error)
}

// NewUserServiceClient constructs a client for the kursus.v1.UserService service. By default, it
// uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and sends
// uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC() or
// connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	userServiceMethods := v1.File_kursus_v1_user_proto.Services().ByName("UserService").Methods()
	return &userServiceClient{
		register: connect.NewClient[v1.RegisterRequest, v1.RegisterResponse](
			httpClient,
			baseURL+UserServiceRegisterProcedure,
			connect.WithSchema(userServiceMethods.ByName("Register")),
			connect.WithClientOptions(opts...),
		),
		login: connect.NewClient[v1.LoginRequest, v1.LoginResponse](
			httpClient,
			baseURL+UserServiceLoginProcedure,
			connect.WithSchema(userServiceMethods.ByName("Login")),
			connect.WithClientOptions(opts...),
		),
		getMe: connect.NewClient[v1.GetMeRequest, v1.GetMeResponse](
			httpClient,
			baseURL+UserServiceGetMeProcedure,
			connect.WithSchema(userServiceMethods.ByName("GetMe")),
			connect.WithClientOptions(opts...),
		),
		updateMe: connect.NewClient[v1.UpdateMeRequest, v1.UpdateMeResponse](
			httpClient,
			baseURL+UserServiceUpdateMeProcedure,
			connect.WithSchema(userServiceMethods.ByName("UpdateMe")),
			connect.WithClientOptions(opts...),
		),
		changePassword: connect.NewClient[v1.ChangePasswordRequest, v1.ChangePasswordResponse](
			httpClient,
			baseURL+UserServiceChangePasswordProcedure,
			connect.WithSchema(userServiceMethods.ByName("ChangePassword")),
			connect.WithClientOptions(opts...),
		),
		becomeInstructor: connect.NewClient[v1.BecomeInstructorRequest, v1.BecomeInstructorResponse](
			httpClient,
			baseURL+UserServiceBecomeInstructorProcedure,
			connect.WithSchema(userServiceMethods.ByName("BecomeInstructor")),
			connect.WithClientOptions(opts...),
		),
		deleteMe: connect.NewClient[v1.DeleteMeRequest, v1.DeleteMeResponse](
			httpClient,
			baseURL+UserServiceDeleteMeProcedure,
			connect.WithSchema(userServiceMethods.ByName("DeleteMe")),
			connect.WithClientOptions(opts...),
		),
	}
}

// userServiceClient implements UserServiceClient.
type userServiceClient struct {
	register         *connect.Client[v1.RegisterRequest, v1.RegisterResponse]
	login            *connect.Client[v1.LoginRequest, v1.LoginResponse]
	getMe            *connect.Client[v1.GetMeRequest, v1.GetMeResponse]
	updateMe         *connect.Client[v1.UpdateMeRequest, v1.UpdateMeResponse]
	changePassword   *connect.Client[v1.ChangePasswordRequest, v1.ChangePasswordResponse]
	becomeInstructor *connect.Client[v1.BecomeInstructorRequest, v1.BecomeInstructorResponse]
	deleteMe         *connect.Client[v1.DeleteMeRequest, v1.DeleteMeResponse]
}

// Register calls kursus.v1.UserService.Register.
func (c *userServiceClient) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

// Login calls kursus.v1.UserService.Login.
func (c *userServiceClient) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// GetMe calls kursus.v1.UserService.GetMe.
func (c *userServiceClient) GetMe(ctx context.Context, req *connect.Request[v1.GetMeRequest]) (*connect.Response[v1.GetMeResponse], error) {
	return c.getMe.CallUnary(ctx, req)
}

// UpdateMe calls kursus.v1.UserService.UpdateMe.
func (c *userServiceClient) UpdateMe(ctx context.Context, req *connect.Request[v1.UpdateMeRequest]) (*connect.Response[v1.UpdateMeResponse], error) {
	return c.updateMe.CallUnary(ctx, req)
}

// ChangePassword calls kursus.v1.UserService.ChangePassword.
func (c *userServiceClient) ChangePassword(ctx context.Context, req *connect.Request[v1.ChangePasswordRequest]) (*connect.Response[v1.ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

// BecomeInstructor calls kursus.v1.UserService.BecomeInstructor.
func (c *userServiceClient) BecomeInstructor(ctx context.Context, req *connect.Request[v1.BecomeInstructorRequest]) (*connect.Response[v1.BecomeInstructorResponse], error) {
	return c.becomeInstructor.CallUnary(ctx, req)
}

// DeleteMe calls kursus.v1.UserService.DeleteMe.
func (c *userServiceClient) DeleteMe(ctx context.Context, req *connect.Request[v1.DeleteMeRequest]) (*connect.Response[v1.DeleteMeResponse], error) {
	return c.deleteMe.CallUnary(ctx, req)
}

// UserServiceHandler is an implementation of the kursus.v1.UserService service.
type UserServiceHandler interface {
	Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.RegisterResponse], error)
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error)
	GetMe(context.Context, *connect.Request[v1.GetMeRequest]) (*connect.Response[v1.GetMeResponse], error)
	UpdateMe(context.Context, *connect.Request[v1.UpdateMeRequest]) (*connect.Response[v1.UpdateMeResponse], error)
	ChangePassword(context.Context, *connect.Request[v1.ChangePasswordRequest]) (*connect.Response[v1.ChangePasswordResponse], error)
	BecomeInstructor(context.Context, *connect.Request[v1.BecomeInstructorRequest]) (*connect.Response[v1.BecomeInstructorResponse], error)
	DeleteMe(context.Context, *connect.Request[v1.DeleteMeRequest]) (*connect.Response[v1.DeleteMeResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation. It returns the path
// on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	userServiceMethods := v1.File_kursus_v1_user_proto.Services().ByName("UserService").Methods()
	userServiceRegisterHandler := connect.NewUnaryHandler(
		UserServiceRegisterProcedure,
		svc.Register,
		connect.WithSchema(userServiceMethods.ByName("Register")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceLoginHandler := connect.NewUnaryHandler(
		UserServiceLoginProcedure,
		svc.Login,
		connect.WithSchema(userServiceMethods.ByName("Login")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceGetMeHandler := connect.NewUnaryHandler(
		UserServiceGetMeProcedure,
		svc.GetMe,
		connect.WithSchema(userServiceMethods.ByName("GetMe")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceUpdateMeHandler := connect.NewUnaryHandler(
		UserServiceUpdateMeProcedure,
		svc.UpdateMe,
		connect.WithSchema(userServiceMethods.ByName("UpdateMe")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceChangePasswordHandler := connect.NewUnaryHandler(
		UserServiceChangePasswordProcedure,
		svc.ChangePassword,
		connect.WithSchema(userServiceMethods.ByName("ChangePassword")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceBecomeInstructorHandler := connect.NewUnaryHandler(
		UserServiceBecomeInstructorProcedure,
		svc.BecomeInstructor,
		connect.WithSchema(userServiceMethods.ByName("BecomeInstructor")),
		connect.WithHandlerOptions(opts...),
	)
	userServiceDeleteMeHandler := connect.NewUnaryHandler(
		UserServiceDeleteMeProcedure,
		svc.DeleteMe,
		connect.WithSchema(userServiceMethods.ByName("DeleteMe")),
		connect.WithHandlerOptions(opts...),
	)
	return "/kursus.v1.UserService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceRegisterProcedure:
			userServiceRegisterHandler.ServeHTTP(w, r)
		case UserServiceLoginProcedure:
			userServiceLoginHandler.ServeHTTP(w, r)
		case UserServiceGetMeProcedure:
			userServiceGetMeHandler.ServeHTTP(w, r)
		case UserServiceUpdateMeProcedure:
			userServiceUpdateMeHandler.ServeHTTP(w, r)
		case UserServiceChangePasswordProcedure:
			userServiceChangePasswordHandler.ServeHTTP(w, r)
		case UserServiceBecomeInstructorProcedure:
			userServiceBecomeInstructorHandler.ServeHTTP(w, r)
		case UserServiceDeleteMeProcedure:
			userServiceDeleteMeHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) Register(context.Context, *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.Register is not implemented"))
}

func (UnimplementedUserServiceHandler) Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.Login is not implemented"))
}

func (UnimplementedUserServiceHandler) GetMe(context.Context, *connect.Request[v1.GetMeRequest]) (*connect.Response[v1.GetMeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.GetMe is not implemented"))
}

func (UnimplementedUserServiceHandler) UpdateMe(context.Context, *connect.Request[v1.UpdateMeRequest]) (*connect.Response[v1.UpdateMeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.UpdateMe is not implemented"))
}

func (UnimplementedUserServiceHandler) ChangePassword(context.Context, *connect.Request[v1.ChangePasswordRequest]) (*connect.Response[v1.ChangePasswordResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.ChangePassword is not implemented"))
}

func (UnimplementedUserServiceHandler) BecomeInstructor(context.Context, *connect.Request[v1.BecomeInstructorRequest]) (*connect.Response[v1.BecomeInstructorResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.BecomeInstructor is not implemented"))
}

func (UnimplementedUserServiceHandler) DeleteMe(context.Context, *connect.Request[v1.DeleteMeRequest]) (*connect.Response[v1.DeleteMeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kursus.v1.UserService.DeleteMe is not implemented"))
}
