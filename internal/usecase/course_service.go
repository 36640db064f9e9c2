package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

const featuredCourseCount = 4

// CourseService coordinates catalog use cases: course CRUD, category lookup
// and the cascading course lifecycle.
type CourseService struct {
	courses    core.CourseRepository
	categories core.CategoryRepository
	thumbnails core.ThumbnailStore
	now        func() time.Time
}

// NewCourseService constructs a CourseService backed by the provided repositories.
func NewCourseService(courses core.CourseRepository, categories core.CategoryRepository, thumbnails core.ThumbnailStore) *CourseService {
	return &CourseService{
		courses:    courses,
		categories: categories,
		thumbnails: thumbnails,
		now:        time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CourseService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.CourseService = (*CourseService)(nil)

// ListCourses returns a filtered, paginated collection of courses.
func (s *CourseService) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	return s.courses.ListCourses(ctx, filter)
}

// FeaturedCourses returns the most enrolled courses for the landing page.
func (s *CourseService) FeaturedCourses(ctx context.Context) ([]core.Course, error) {
	return s.courses.MostEnrolled(ctx, featuredCourseCount)
}

// MyCourses lists the courses owned by the requesting instructor.
func (s *CourseService) MyCourses(ctx context.Context, requester core.Requester) ([]core.Course, error) {
	if err := core.AuthorizeInstructor(requester); err != nil {
		return nil, err
	}
	courses, _, err := s.courses.ListCourses(ctx, core.CourseListFilter{OwnerID: requester.ID})
	return courses, err
}

// GetCourse returns details for a single course, including its lesson stubs.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	return s.courses.GetCourse(ctx, id, core.CourseQueryOptions{IncludeLessons: true})
}

// CreateCourse creates a course owned by the requesting instructor. The
// owner never changes afterwards.
func (s *CourseService) CreateCourse(ctx context.Context, requester core.Requester, draft core.CourseDraft) (*core.Course, error) {
	if err := core.AuthorizeInstructor(requester); err != nil {
		return nil, err
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: course title required", core.ErrValidation)
	}
	if draft.CategoryID == uuid.Nil {
		return nil, fmt.Errorf("%w: category id required", core.ErrValidation)
	}
	if _, err := s.categories.GetCategory(ctx, draft.CategoryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	course := core.Course{
		ID:           uuid.New(),
		OwnerID:      requester.ID,
		CategoryID:   draft.CategoryID,
		Title:        draft.Title,
		Description:  draft.Description,
		ThumbnailURL: draft.ThumbnailURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.courses.CreateCourse(ctx, course)
}

// UpdateCourse applies partial updates to a course owned by the requester.
func (s *CourseService) UpdateCourse(ctx context.Context, requester core.Requester, params core.UpdateCourseParams) (*core.Course, error) {
	if params.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	course, err := s.courses.GetCourse(ctx, params.ID, core.CourseQueryOptions{})
	if err != nil {
		return nil, err
	}
	if err := core.AuthorizeOwner(requester, course.OwnerID); err != nil {
		return nil, err
	}
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, fmt.Errorf("%w: course title required", core.ErrValidation)
	}
	if params.CategoryID != nil {
		if _, err := s.categories.GetCategory(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
	}

	params.UpdatedAt = s.now().UTC()
	return s.courses.UpdateCourse(ctx, params)
}

// DeleteCourse removes a course and cascades to its lessons, enrollments and
// favorites; only the owner may trigger it.
func (s *CourseService) DeleteCourse(ctx context.Context, requester core.Requester, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	course, err := s.courses.GetCourse(ctx, id, core.CourseQueryOptions{})
	if err != nil {
		return err
	}
	if err := core.AuthorizeOwner(requester, course.OwnerID); err != nil {
		return err
	}
	return s.courses.DeleteCourse(ctx, id)
}

// ListCategories returns every category; public.
func (s *CourseService) ListCategories(ctx context.Context) ([]core.Category, error) {
	return s.categories.ListCategories(ctx)
}

// CreateCategory adds a browsing category; instructors only.
func (s *CourseService) CreateCategory(ctx context.Context, requester core.Requester, name string) (*core.Category, error) {
	if err := core.AuthorizeInstructor(requester); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: category name required", core.ErrValidation)
	}
	return s.categories.CreateCategory(ctx, core.Category{ID: uuid.New(), Name: name})
}

// CreateThumbnailUpload issues a pre-signed upload target for a course
// thumbnail; instructors only.
func (s *CourseService) CreateThumbnailUpload(ctx context.Context, requester core.Requester, filename string) (*core.ThumbnailUpload, error) {
	if err := core.AuthorizeInstructor(requester); err != nil {
		return nil, err
	}
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename required", core.ErrValidation)
	}
	return s.thumbnails.CreateThumbnailUpload(ctx, filename)
}
