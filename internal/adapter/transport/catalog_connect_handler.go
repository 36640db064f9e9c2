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

// CatalogHandler implements the generated Connect service for courses and
// categories.
type CatalogHandler struct {
	service core.CourseService
}

// NewCatalogHandler constructs a Catalog handler backed by the provided service.
func NewCatalogHandler(service core.CourseService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

var _ kursusv1connect.CatalogServiceHandler = (*CatalogHandler)(nil)

// ListCourses returns a filtered, paginated collection of courses.
func (h *CatalogHandler) ListCourses(ctx context.Context, req *connect.Request[kursusv1.ListCoursesRequest]) (*connect.Response[kursusv1.ListCoursesResponse], error) {
	courses, nextToken, err := h.service.ListCourses(ctx, core.CourseListFilter{
		PageSize:  int(req.Msg.GetPageSize()),
		PageToken: req.Msg.GetPageToken(),
		Query:     req.Msg.GetQuery(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ListCoursesResponse{
		Courses:       toProtoCourses(courses),
		NextPageToken: nextToken,
	}), nil
}

// GetCourse returns details for a single course including its lesson stubs.
func (h *CatalogHandler) GetCourse(ctx context.Context, req *connect.Request[kursusv1.GetCourseRequest]) (*connect.Response[kursusv1.GetCourseResponse], error) {
	id, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	course, err := h.service.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.GetCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// FeaturedCourses returns the most enrolled courses.
func (h *CatalogHandler) FeaturedCourses(ctx context.Context, req *connect.Request[kursusv1.FeaturedCoursesRequest]) (*connect.Response[kursusv1.FeaturedCoursesResponse], error) {
	courses, err := h.service.FeaturedCourses(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.FeaturedCoursesResponse{
		Courses: toProtoCourses(courses),
	}), nil
}

// MyCourses lists the courses owned by the requesting instructor.
func (h *CatalogHandler) MyCourses(ctx context.Context, req *connect.Request[kursusv1.MyCoursesRequest]) (*connect.Response[kursusv1.MyCoursesResponse], error) {
	courses, err := h.service.MyCourses(ctx, RequesterFromContext(ctx))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.MyCoursesResponse{
		Courses: toProtoCourses(courses),
	}), nil
}

// CreateCourse creates a course owned by the requesting instructor.
func (h *CatalogHandler) CreateCourse(ctx context.Context, req *connect.Request[kursusv1.CreateCourseRequest]) (*connect.Response[kursusv1.CreateCourseResponse], error) {
	categoryID, err := parseID(req.Msg.GetCategoryId(), "category_id")
	if err != nil {
		return nil, err
	}

	course, err := h.service.CreateCourse(ctx, RequesterFromContext(ctx), core.CourseDraft{
		Title:        req.Msg.GetTitle(),
		Description:  req.Msg.GetDescription(),
		CategoryID:   categoryID,
		ThumbnailURL: req.Msg.GetThumbnailUrl(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.CreateCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// UpdateCourse applies partial updates to a course owned by the requester.
func (h *CatalogHandler) UpdateCourse(ctx context.Context, req *connect.Request[kursusv1.UpdateCourseRequest]) (*connect.Response[kursusv1.UpdateCourseResponse], error) {
	id, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	params := core.UpdateCourseParams{
		ID:           id,
		Title:        req.Msg.Title,
		Description:  req.Msg.Description,
		ThumbnailURL: req.Msg.ThumbnailUrl,
	}
	if req.Msg.CategoryId != nil {
		categoryID, err := parseID(req.Msg.GetCategoryId(), "category_id")
		if err != nil {
			return nil, err
		}
		params.CategoryID = &categoryID
	}

	course, err := h.service.UpdateCourse(ctx, RequesterFromContext(ctx), params)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.UpdateCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// DeleteCourse removes a course and all content hanging off it.
func (h *CatalogHandler) DeleteCourse(ctx context.Context, req *connect.Request[kursusv1.DeleteCourseRequest]) (*connect.Response[kursusv1.DeleteCourseResponse], error) {
	id, err := parseID(req.Msg.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteCourse(ctx, RequesterFromContext(ctx), id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.DeleteCourseResponse{}), nil
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(ctx context.Context, req *connect.Request[kursusv1.ListCategoriesRequest]) (*connect.Response[kursusv1.ListCategoriesResponse], error) {
	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.ListCategoriesResponse{
		Categories: lo.Map(categories, func(category core.Category, _ int) *kursusv1.Category {
			return toProtoCategory(&category)
		}),
	}), nil
}

// CreateCategory adds a browsing category.
func (h *CatalogHandler) CreateCategory(ctx context.Context, req *connect.Request[kursusv1.CreateCategoryRequest]) (*connect.Response[kursusv1.CreateCategoryResponse], error) {
	category, err := h.service.CreateCategory(ctx, RequesterFromContext(ctx), req.Msg.GetName())
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.CreateCategoryResponse{
		Category: toProtoCategory(category),
	}), nil
}

// CreateThumbnailUpload issues a pre-signed upload target for a thumbnail.
func (h *CatalogHandler) CreateThumbnailUpload(ctx context.Context, req *connect.Request[kursusv1.CreateThumbnailUploadRequest]) (*connect.Response[kursusv1.CreateThumbnailUploadResponse], error) {
	upload, err := h.service.CreateThumbnailUpload(ctx, RequesterFromContext(ctx), req.Msg.GetFilename())
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&kursusv1.CreateThumbnailUploadResponse{
		UploadUrl: upload.UploadURL,
		Method:    upload.Method,
		Headers:   upload.Headers,
		PublicUrl: upload.PublicURL,
		ExpiresAt: timestamppb.New(upload.ExpiresAt),
	}), nil
}

func toProtoCourses(courses []core.Course) []*kursusv1.Course {
	return lo.Map(courses, func(course core.Course, _ int) *kursusv1.Course {
		return toProtoCourse(&course)
	})
}

func toProtoCourse(course *core.Course) *kursusv1.Course {
	if course == nil {
		return nil
	}

	proto := &kursusv1.Course{
		Id:              course.ID.String(),
		OwnerId:         course.OwnerID.String(),
		OwnerUsername:   course.OwnerUsername,
		Title:           course.Title,
		Description:     course.Description,
		ThumbnailUrl:    course.ThumbnailURL,
		EnrollmentCount: int32(course.EnrollmentCount),
		CreatedAt:       timestamppb.New(course.CreatedAt),
		UpdatedAt:       timestamppb.New(course.UpdatedAt),
	}

	if course.Category != nil {
		proto.Category = toProtoCategory(course.Category)
	}
	if len(course.Lessons) > 0 {
		proto.Lessons = lo.Map(course.Lessons, func(stub core.LessonStub, _ int) *kursusv1.LessonStub {
			return toProtoLessonStub(stub)
		})
	}

	return proto
}

func toProtoCategory(category *core.Category) *kursusv1.Category {
	if category == nil {
		return nil
	}
	return &kursusv1.Category{
		Id:   category.ID.String(),
		Name: category.Name,
	}
}
