package transport

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/kursuslab/kursus/internal/core"
	kursusv1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
	"github.com/kursuslab/kursus/pkg/api/kursus/v1/kursusv1connect"
)

// EnrollmentHandler implements the generated Connect service for enrollments
// and favorites.
type EnrollmentHandler struct {
	service core.EnrollmentService
}

// NewEnrollmentHandler constructs an Enrollment handler backed by the provided service.
func NewEnrollmentHandler(service core.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

var _ kursusv1connect.EnrollmentServiceHandler = (*EnrollmentHandler)(nil)

// Enroll grants the requester access to a course.
func (h *EnrollmentHandler) Enroll(ctx context.Context, req *connect.Request[kursusv1.EnrollRequest]) (*connect.Response[kursusv1.EnrollResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	enrollment, err := h.service.Enroll(ctx, RequesterFromContext(ctx), courseID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.EnrollResponse{
		Enrollment: toProtoEnrollment(enrollment),
	}), nil
}

// Unenroll revokes the requester's enrollment.
func (h *EnrollmentHandler) Unenroll(ctx context.Context, req *connect.Request[kursusv1.UnenrollRequest]) (*connect.Response[kursusv1.UnenrollResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	if err := h.service.Unenroll(ctx, RequesterFromContext(ctx), courseID); err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.UnenrollResponse{}), nil
}

// ListMyEnrollments lists the requester's enrollments.
func (h *EnrollmentHandler) ListMyEnrollments(ctx context.Context, req *connect.Request[kursusv1.ListMyEnrollmentsRequest]) (*connect.Response[kursusv1.ListMyEnrollmentsResponse], error) {
	enrollments, err := h.service.ListMyEnrollments(ctx, RequesterFromContext(ctx))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ListMyEnrollmentsResponse{
		Enrollments: lo.Map(enrollments, func(enrollment core.Enrollment, _ int) *kursusv1.Enrollment {
			return toProtoEnrollment(&enrollment)
		}),
	}), nil
}

// Favorite bookmarks a course for the requester.
func (h *EnrollmentHandler) Favorite(ctx context.Context, req *connect.Request[kursusv1.FavoriteRequest]) (*connect.Response[kursusv1.FavoriteResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	favorite, err := h.service.Favorite(ctx, RequesterFromContext(ctx), courseID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.FavoriteResponse{
		Favorite: toProtoFavorite(favorite),
	}), nil
}

// Unfavorite removes a course from the requester's favorites.
func (h *EnrollmentHandler) Unfavorite(ctx context.Context, req *connect.Request[kursusv1.UnfavoriteRequest]) (*connect.Response[kursusv1.UnfavoriteResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	if err := h.service.Unfavorite(ctx, RequesterFromContext(ctx), courseID); err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.UnfavoriteResponse{}), nil
}

// ListMyFavorites lists the requester's favorites.
func (h *EnrollmentHandler) ListMyFavorites(ctx context.Context, req *connect.Request[kursusv1.ListMyFavoritesRequest]) (*connect.Response[kursusv1.ListMyFavoritesResponse], error) {
	favorites, err := h.service.ListMyFavorites(ctx, RequesterFromContext(ctx))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ListMyFavoritesResponse{
		Favorites: lo.Map(favorites, func(favorite core.Favorite, _ int) *kursusv1.Favorite {
			return toProtoFavorite(&favorite)
		}),
	}), nil
}

func toProtoEnrollment(enrollment *core.Enrollment) *kursusv1.Enrollment {
	if enrollment == nil {
		return nil
	}
	return &kursusv1.Enrollment{
		Id:         enrollment.ID.String(),
		Course:     toProtoCourse(enrollment.Course),
		EnrolledAt: timestamppb.New(enrollment.EnrolledAt),
	}
}

func toProtoFavorite(favorite *core.Favorite) *kursusv1.Favorite {
	if favorite == nil {
		return nil
	}
	return &kursusv1.Favorite{
		Id:        favorite.ID.String(),
		Course:    toProtoCourse(favorite.Course),
		CreatedAt: timestamppb.New(favorite.CreatedAt),
	}
}
