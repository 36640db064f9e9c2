package transport

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/kursuslab/kursus/internal/core"
	kursusv1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
	"github.com/kursuslab/kursus/pkg/api/kursus/v1/kursusv1connect"
)

// UserHandler implements the generated Connect service for accounts.
type UserHandler struct {
	service core.UserService
}

// NewUserHandler constructs a User handler backed by the provided service.
func NewUserHandler(service core.UserService) *UserHandler {
	return &UserHandler{service: service}
}

var _ kursusv1connect.UserServiceHandler = (*UserHandler)(nil)

// Register creates a new student account.
func (h *UserHandler) Register(ctx context.Context, req *connect.Request[kursusv1.RegisterRequest]) (*connect.Response[kursusv1.RegisterResponse], error) {
	user, err := h.service.Register(ctx, core.RegisterParams{
		Name:     req.Msg.GetName(),
		Username: req.Msg.GetUsername(),
		Email:    req.Msg.GetEmail(),
		Password: req.Msg.GetPassword(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.RegisterResponse{
		User: toProtoUser(user),
	}), nil
}

// Login verifies credentials and returns an access token.
func (h *UserHandler) Login(ctx context.Context, req *connect.Request[kursusv1.LoginRequest]) (*connect.Response[kursusv1.LoginResponse], error) {
	user, token, err := h.service.Login(ctx, req.Msg.GetEmail(), req.Msg.GetPassword())
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.LoginResponse{
		User:  toProtoUser(user),
		Token: toProtoToken(token),
	}), nil
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(ctx context.Context, req *connect.Request[kursusv1.GetMeRequest]) (*connect.Response[kursusv1.GetMeResponse], error) {
	requester := RequesterFromContext(ctx)
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in first", core.ErrNotAuthorized)
	}

	user, err := h.service.Get(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.GetMeResponse{
		User: toProtoUser(user),
	}), nil
}

// UpdateMe applies partial profile updates.
func (h *UserHandler) UpdateMe(ctx context.Context, req *connect.Request[kursusv1.UpdateMeRequest]) (*connect.Response[kursusv1.UpdateMeResponse], error) {
	user, err := h.service.UpdateProfile(ctx, RequesterFromContext(ctx), core.UpdateUserParams{
		Name:     req.Msg.Name,
		Username: req.Msg.Username,
		Email:    req.Msg.Email,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.UpdateMeResponse{
		User: toProtoUser(user),
	}), nil
}

// ChangePassword replaces the password after verifying the current one.
func (h *UserHandler) ChangePassword(ctx context.Context, req *connect.Request[kursusv1.ChangePasswordRequest]) (*connect.Response[kursusv1.ChangePasswordResponse], error) {
	err := h.service.ChangePassword(ctx, RequesterFromContext(ctx), req.Msg.GetCurrentPassword(), req.Msg.GetNewPassword())
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ChangePasswordResponse{}), nil
}

// BecomeInstructor upgrades the requester to the instructor role.
func (h *UserHandler) BecomeInstructor(ctx context.Context, req *connect.Request[kursusv1.BecomeInstructorRequest]) (*connect.Response[kursusv1.BecomeInstructorResponse], error) {
	user, token, err := h.service.BecomeInstructor(ctx, RequesterFromContext(ctx))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.BecomeInstructorResponse{
		User:  toProtoUser(user),
		Token: toProtoToken(token),
	}), nil
}

// DeleteMe removes the requester's account.
func (h *UserHandler) DeleteMe(ctx context.Context, req *connect.Request[kursusv1.DeleteMeRequest]) (*connect.Response[kursusv1.DeleteMeResponse], error) {
	if err := h.service.DeleteAccount(ctx, RequesterFromContext(ctx)); err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.DeleteMeResponse{}), nil
}

func toProtoUser(user *core.User) *kursusv1.User {
	if user == nil {
		return nil
	}
	return &kursusv1.User{
		Id:        user.ID.String(),
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Role:      toProtoRole(user.Role),
		CreatedAt: timestamppb.New(user.CreatedAt),
		UpdatedAt: timestamppb.New(user.UpdatedAt),
	}
}

func toProtoToken(token core.Token) *kursusv1.Token {
	return &kursusv1.Token{
		AccessToken: token.AccessToken,
		ExpiresAt:   timestamppb.New(token.ExpiresAt),
	}
}

func toProtoRole(role core.Role) kursusv1.Role {
	switch role {
	case core.RoleStudent:
		return kursusv1.Role_ROLE_STUDENT
	case core.RoleInstructor:
		return kursusv1.Role_ROLE_INSTRUCTOR
	default:
		return kursusv1.Role_ROLE_UNSPECIFIED
	}
}
