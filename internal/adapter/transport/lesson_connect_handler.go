package transport

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/samber/lo"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/kursuslab/kursus/internal/core"
	kursusv1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
	"github.com/kursuslab/kursus/pkg/api/kursus/v1/kursusv1connect"
)

// LessonHandler implements the generated Connect service for lesson operations.
type LessonHandler struct {
	service core.LessonService
}

// NewLessonHandler constructs a Lesson handler backed by the provided service.
func NewLessonHandler(service core.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

var _ kursusv1connect.LessonServiceHandler = (*LessonHandler)(nil)

// CreateLesson adds a lesson to a course at the requested position.
func (h *LessonHandler) CreateLesson(ctx context.Context, req *connect.Request[kursusv1.CreateLessonRequest]) (*connect.Response[kursusv1.CreateLessonResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.CreateLesson(ctx, RequesterFromContext(ctx), core.CreateLessonParams{
		CourseID: courseID,
		Title:    req.Msg.GetTitle(),
		Position: int(req.Msg.GetPosition()),
		VideoURL: req.Msg.GetVideoUrl(),
		Content:  req.Msg.GetContent(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.CreateLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

// GetLesson returns the full lesson body for owners and enrolled students.
func (h *LessonHandler) GetLesson(ctx context.Context, req *connect.Request[kursusv1.GetLessonRequest]) (*connect.Response[kursusv1.GetLessonResponse], error) {
	id, err := parseID(req.Msg.GetLessonId(), "lesson_id")
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.ReadLesson(ctx, RequesterFromContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.GetLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

// ListLessonStubs returns the public table of contents for a course.
func (h *LessonHandler) ListLessonStubs(ctx context.Context, req *connect.Request[kursusv1.ListLessonStubsRequest]) (*connect.Response[kursusv1.ListLessonStubsResponse], error) {
	courseID, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	stubs, err := h.service.ListLessonStubs(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ListLessonStubsResponse{
		Lessons: lo.Map(stubs, func(stub core.LessonStub, _ int) *kursusv1.LessonStub {
			return toProtoLessonStub(stub)
		}),
	}), nil
}

// UpdateLesson applies partial updates to a lesson.
func (h *LessonHandler) UpdateLesson(ctx context.Context, req *connect.Request[kursusv1.UpdateLessonRequest]) (*connect.Response[kursusv1.UpdateLessonResponse], error) {
	id, err := parseID(req.Msg.GetLessonId(), "lesson_id")
	if err != nil {
		return nil, err
	}

	params := core.UpdateLessonParams{
		ID:       id,
		Title:    req.Msg.Title,
		VideoURL: req.Msg.VideoUrl,
		Content:  req.Msg.Content,
	}
	if req.Msg.Position != nil {
		position := int(req.Msg.GetPosition())
		params.Position = &position
	}

	lesson, err := h.service.UpdateLesson(ctx, RequesterFromContext(ctx), params)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.UpdateLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

// MoveLesson relocates a lesson within its course.
func (h *LessonHandler) MoveLesson(ctx context.Context, req *connect.Request[kursusv1.MoveLessonRequest]) (*connect.Response[kursusv1.MoveLessonResponse], error) {
	id, err := parseID(req.Msg.GetLessonId(), "lesson_id")
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.MoveLesson(ctx, RequesterFromContext(ctx), id, int(req.Msg.GetPosition()))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.MoveLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

// DeleteLesson removes a lesson and compacts the remaining positions.
func (h *LessonHandler) DeleteLesson(ctx context.Context, req *connect.Request[kursusv1.DeleteLessonRequest]) (*connect.Response[kursusv1.DeleteLessonResponse], error) {
	id, err := parseID(req.Msg.GetLessonId(), "lesson_id")
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteLesson(ctx, RequesterFromContext(ctx), id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.DeleteLessonResponse{}), nil
}

func toProtoLesson(lesson *core.Lesson) *kursusv1.Lesson {
	if lesson == nil {
		return nil
	}
	return &kursusv1.Lesson{
		Id:        lesson.ID.String(),
		CourseId:  lesson.CourseID.String(),
		Title:     lesson.Title,
		VideoUrl:  lesson.VideoURL,
		Content:   lesson.Content,
		Position:  int32(lesson.Position),
		CreatedAt: timestamppb.New(lesson.CreatedAt),
		UpdatedAt: timestamppb.New(lesson.UpdatedAt),
	}
}

func toProtoLessonStub(stub core.LessonStub) *kursusv1.LessonStub {
	return &kursusv1.LessonStub{
		Id:       stub.ID.String(),
		Title:    stub.Title,
		Position: int32(stub.Position),
	}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", core.ErrValidation, field, raw)
	}
	return id, nil
}
