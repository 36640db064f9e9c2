package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

func TestCourseService_CreateCourse(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	instructorID := uuid.New()
	categoryID := uuid.New()

	var captured core.Course
	courses := &stubCourseRepo{
		createCourseFn: func(ctx context.Context, course core.Course) (*core.Course, error) {
			captured = course
			copy := course
			return &copy, nil
		},
	}
	categories := &stubCategoryRepo{
		getCategoryFn: func(ctx context.Context, id uuid.UUID) (*core.Category, error) {
			return &core.Category{ID: categoryID, Name: "Go"}, nil
		},
	}

	service := NewCourseService(courses, categories, &stubThumbnailStore{})
	service.WithClock(func() time.Time { return fixedNow })

	requester := core.Requester{ID: instructorID, Role: core.RoleInstructor}
	got, err := service.CreateCourse(context.Background(), requester, core.CourseDraft{
		CategoryID:  categoryID,
		Title:       "Practical Go",
		Description: "From zero",
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if got == nil {
		t.Fatal("CreateCourse() returned nil course")
	}
	if captured.OwnerID != instructorID {
		t.Fatalf("expected owner %s, got %s", instructorID, captured.OwnerID)
	}
	if captured.CreatedAt != fixedNow || captured.UpdatedAt != fixedNow {
		t.Fatalf("unexpected timestamps %+v", captured)
	}
}

func TestCourseService_CreateCourseRejectsStudent(t *testing.T) {
	service := NewCourseService(&stubCourseRepo{}, &stubCategoryRepo{}, &stubThumbnailStore{})

	_, err := service.CreateCourse(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleStudent}, core.CourseDraft{
		CategoryID: uuid.New(),
		Title:      "Practical Go",
	})
	if !errors.Is(err, core.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestCourseService_CreateCourseRejectsUnknownCategory(t *testing.T) {
	categories := &stubCategoryRepo{
		getCategoryFn: func(ctx context.Context, id uuid.UUID) (*core.Category, error) {
			return nil, core.ErrNotFound
		},
	}
	service := NewCourseService(&stubCourseRepo{}, categories, &stubThumbnailStore{})

	_, err := service.CreateCourse(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleInstructor}, core.CourseDraft{
		CategoryID: uuid.New(),
		Title:      "Practical Go",
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseService_UpdateCourseStampsClock(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ownerID := uuid.New()
	courseID := uuid.New()

	var captured core.UpdateCourseParams
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
		updateCourseFn: func(ctx context.Context, params core.UpdateCourseParams) (*core.Course, error) {
			captured = params
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})
	service.WithClock(func() time.Time { return fixedNow })

	title := "New title"
	_, err := service.UpdateCourse(context.Background(), core.Requester{ID: ownerID, Role: core.RoleInstructor}, core.UpdateCourseParams{
		ID:    courseID,
		Title: &title,
	})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}
	if captured.UpdatedAt != fixedNow {
		t.Fatalf("expected UpdatedAt %v, got %v", fixedNow, captured.UpdatedAt)
	}
}

func TestCourseService_UpdateCourseRejectsNonOwner(t *testing.T) {
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: uuid.New()}, nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})

	title := "New title"
	_, err := service.UpdateCourse(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleInstructor}, core.UpdateCourseParams{
		ID:    courseID,
		Title: &title,
	})
	if !errors.Is(err, core.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestCourseService_DeleteCourse(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	deleted := false
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
		deleteCourseFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})

	if err := service.DeleteCourse(context.Background(), core.Requester{ID: ownerID, Role: core.RoleInstructor}, courseID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	if !deleted {
		t.Fatal("expected repository delete to be invoked")
	}
}

func TestCourseService_GetCourseIncludesLessons(t *testing.T) {
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			if !opts.IncludeLessons {
				t.Fatal("expected lesson stubs to be requested")
			}
			return &core.Course{ID: courseID}, nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})

	if _, err := service.GetCourse(context.Background(), courseID); err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
}

func TestCourseService_FeaturedCourses(t *testing.T) {
	courses := &stubCourseRepo{
		mostEnrolledFn: func(ctx context.Context, limit int) ([]core.Course, error) {
			if limit != 4 {
				t.Fatalf("expected limit 4, got %d", limit)
			}
			return []core.Course{{ID: uuid.New()}}, nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})

	got, err := service.FeaturedCourses(context.Background())
	if err != nil {
		t.Fatalf("FeaturedCourses() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 course, got %d", len(got))
	}
}

func TestCourseService_MyCoursesFiltersByOwner(t *testing.T) {
	instructorID := uuid.New()
	courses := &stubCourseRepo{
		listCoursesFn: func(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
			if filter.OwnerID != instructorID {
				t.Fatalf("expected owner filter %s, got %s", instructorID, filter.OwnerID)
			}
			return nil, "", nil
		},
	}
	service := NewCourseService(courses, &stubCategoryRepo{}, &stubThumbnailStore{})

	if _, err := service.MyCourses(context.Background(), core.Requester{ID: instructorID, Role: core.RoleInstructor}); err != nil {
		t.Fatalf("MyCourses() error = %v", err)
	}
}

func TestCourseService_CreateThumbnailUpload(t *testing.T) {
	thumbnails := &stubThumbnailStore{
		createUploadFn: func(ctx context.Context, filename string) (*core.ThumbnailUpload, error) {
			return &core.ThumbnailUpload{UploadURL: "https://upload.test/" + filename}, nil
		},
	}
	service := NewCourseService(&stubCourseRepo{}, &stubCategoryRepo{}, thumbnails)

	got, err := service.CreateThumbnailUpload(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleInstructor}, "cover.png")
	if err != nil {
		t.Fatalf("CreateThumbnailUpload() error = %v", err)
	}
	if got.UploadURL == "" {
		t.Fatal("expected upload URL")
	}

	_, err = service.CreateThumbnailUpload(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleStudent}, "cover.png")
	if !errors.Is(err, core.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for students, got %v", err)
	}
}

type stubCategoryRepo struct {
	listCategoriesFn func(ctx context.Context) ([]core.Category, error)
	createCategoryFn func(ctx context.Context, category core.Category) (*core.Category, error)
	getCategoryFn    func(ctx context.Context, id uuid.UUID) (*core.Category, error)
}

func (s *stubCategoryRepo) ListCategories(ctx context.Context) ([]core.Category, error) {
	if s.listCategoriesFn != nil {
		return s.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubCategoryRepo) CreateCategory(ctx context.Context, category core.Category) (*core.Category, error) {
	if s.createCategoryFn != nil {
		return s.createCategoryFn(ctx, category)
	}
	return &category, nil
}

func (s *stubCategoryRepo) GetCategory(ctx context.Context, id uuid.UUID) (*core.Category, error) {
	if s.getCategoryFn != nil {
		return s.getCategoryFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

type stubThumbnailStore struct {
	createUploadFn func(ctx context.Context, filename string) (*core.ThumbnailUpload, error)
}

func (s *stubThumbnailStore) CreateThumbnailUpload(ctx context.Context, filename string) (*core.ThumbnailUpload, error) {
	if s.createUploadFn != nil {
		return s.createUploadFn(ctx, filename)
	}
	return &core.ThumbnailUpload{}, nil
}
