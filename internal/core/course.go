package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category is a browsing label attached to courses.
type Category struct {
	ID   uuid.UUID
	Name string
}

// Course represents a published course owned by an instructor. The owner is
// immutable after creation; no transfer operation exists.
type Course struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerUsername   string
	CategoryID      uuid.UUID
	Category        *Category
	Title           string
	Description     string
	ThumbnailURL    string
	EnrollmentCount int
	Lessons         []LessonStub
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CourseDraft contains user-modifiable course attributes.
type CourseDraft struct {
	Title        string
	Description  string
	CategoryID   uuid.UUID
	ThumbnailURL string
}

// UpdateCourseParams holds optional course updates; nil fields are left
// unchanged. UpdatedAt is stamped by the service clock.
type UpdateCourseParams struct {
	ID           uuid.UUID
	Title        *string
	Description  *string
	CategoryID   *uuid.UUID
	ThumbnailURL *string
	UpdatedAt    time.Time
}

// CourseListFilter describes pagination and search options when listing courses.
type CourseListFilter struct {
	PageSize  int
	PageToken string
	Query     string
	OwnerID   uuid.UUID
}

// CourseQueryOptions customise loaded associations for a single course.
type CourseQueryOptions struct {
	IncludeLessons bool
}

// CourseRepository defines persistence operations for courses and categories.
type CourseRepository interface {
	ListCourses(ctx context.Context, filter CourseListFilter) ([]Course, string, error)
	CreateCourse(ctx context.Context, course Course) (*Course, error)
	GetCourse(ctx context.Context, id uuid.UUID, opts CourseQueryOptions) (*Course, error)
	UpdateCourse(ctx context.Context, params UpdateCourseParams) (*Course, error)
	// DeleteCourse removes the course together with all its lessons,
	// enrollments and favorites in a single transaction.
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	MostEnrolled(ctx context.Context, limit int) ([]Course, error)
	CountOwnedBy(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, category Category) (*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
}

// CourseService exposes the catalog use cases to adapters.
type CourseService interface {
	ListCourses(ctx context.Context, filter CourseListFilter) ([]Course, string, error)
	FeaturedCourses(ctx context.Context) ([]Course, error)
	MyCourses(ctx context.Context, requester Requester) ([]Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	CreateCourse(ctx context.Context, requester Requester, draft CourseDraft) (*Course, error)
	UpdateCourse(ctx context.Context, requester Requester, params UpdateCourseParams) (*Course, error)
	DeleteCourse(ctx context.Context, requester Requester, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, requester Requester, name string) (*Category, error)
	CreateThumbnailUpload(ctx context.Context, requester Requester, filename string) (*ThumbnailUpload, error)
}
