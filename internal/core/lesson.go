package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lesson represents an ordered content unit within a course. Position is the
// 1-based dense rank of the lesson among its siblings.
type Lesson struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	Title     string
	VideoURL  string
	Content   string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stub reduces a lesson to its table-of-contents form.
func (l Lesson) Stub() LessonStub {
	return LessonStub{ID: l.ID, Title: l.Title, Position: l.Position}
}

// LessonStub is the public table-of-contents view of a lesson: never body or
// video content.
type LessonStub struct {
	ID       uuid.UUID
	Title    string
	Position int
}

// CreateLessonParams describes the inputs required to create a lesson.
type CreateLessonParams struct {
	CourseID uuid.UUID
	Title    string
	Position int
	VideoURL string
	Content  string
}

// UpdateLessonParams holds optional lesson updates; nil fields are left
// unchanged. A non-nil Position triggers a reorder of the siblings.
type UpdateLessonParams struct {
	ID       uuid.UUID
	Title    *string
	Position *int
	VideoURL *string
	Content  *string
}

// LessonRepository defines persistence operations for lessons. Insert, Update
// and Remove apply the triggering write together with the supplied sibling
// shifts as one atomic transaction; on any failure no partial shift may remain
// visible. Shifts must be applied in slice order: the caller sequences them so
// that the unique (course, position) constraint holds after every single
// update (the moving row is parked at position 0 first during an Update).
type LessonRepository interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]Lesson, error)
	ListStubs(ctx context.Context, courseID uuid.UUID) ([]LessonStub, error)
	Get(ctx context.Context, id uuid.UUID) (*Lesson, error)
	Insert(ctx context.Context, lesson Lesson, shifts []PositionShift) (*Lesson, error)
	Update(ctx context.Context, lesson Lesson, shifts []PositionShift) (*Lesson, error)
	Remove(ctx context.Context, id uuid.UUID, shifts []PositionShift) error
}

// LessonService exposes the lesson use cases to adapters.
type LessonService interface {
	CreateLesson(ctx context.Context, requester Requester, params CreateLessonParams) (*Lesson, error)
	UpdateLesson(ctx context.Context, requester Requester, params UpdateLessonParams) (*Lesson, error)
	MoveLesson(ctx context.Context, requester Requester, id uuid.UUID, newPosition int) (*Lesson, error)
	DeleteLesson(ctx context.Context, requester Requester, id uuid.UUID) error
	ListLessonStubs(ctx context.Context, courseID uuid.UUID) ([]LessonStub, error)
	ReadLesson(ctx context.Context, requester Requester, id uuid.UUID) (*Lesson, error)
}
