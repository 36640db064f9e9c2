package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

// LessonService coordinates lesson use cases: ordered inserts, moves and
// deletes against one course's dense lesson sequence, and visibility-gated
// reads.
type LessonService struct {
	lessons     core.LessonRepository
	courses     core.CourseRepository
	enrollments core.EnrollmentRepository
	locks       keyedMutex
	now         func() time.Time
}

// NewLessonService constructs a LessonService backed by the provided repositories.
func NewLessonService(lessons core.LessonRepository, courses core.CourseRepository, enrollments core.EnrollmentRepository) *LessonService {
	return &LessonService{
		lessons:     lessons,
		courses:     courses,
		enrollments: enrollments,
		now:         time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *LessonService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.LessonService = (*LessonService)(nil)

// CreateLesson adds a lesson at the requested position, shifting later
// siblings down by one. Only the course owner may create lessons.
func (s *LessonService) CreateLesson(ctx context.Context, requester core.Requester, params core.CreateLessonParams) (*core.Lesson, error) {
	if params.CourseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: lesson title required", core.ErrValidation)
	}

	course, err := s.courses.GetCourse(ctx, params.CourseID, core.CourseQueryOptions{})
	if err != nil {
		return nil, err
	}
	if err := core.AuthorizeOwner(requester, course.OwnerID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(course.ID)
	defer unlock()

	siblings, err := s.lessons.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	index, err := core.NewOrderIndex(siblings)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	lesson := core.Lesson{
		ID:        uuid.New(),
		CourseID:  course.ID,
		Title:     params.Title,
		VideoURL:  params.VideoURL,
		Content:   params.Content,
		Position:  params.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	shifts, err := index.InsertAt(lesson.ID, params.Position)
	if err != nil {
		return nil, err
	}

	return s.lessons.Insert(ctx, lesson, shifts)
}

// UpdateLesson applies partial updates to a lesson. A position change
// reorders the siblings; moving a lesson onto its current position is a
// clean no-op for the ordering.
func (s *LessonService) UpdateLesson(ctx context.Context, requester core.Requester, params core.UpdateLessonParams) (*core.Lesson, error) {
	if params.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}

	lesson, err := s.lessons.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetCourse(ctx, lesson.CourseID, core.CourseQueryOptions{})
	if err != nil {
		return nil, err
	}
	if err := core.AuthorizeOwner(requester, course.OwnerID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(course.ID)
	defer unlock()

	// The first read only located the course for the lock. Re-read under the
	// lock so the snapshot, and in particular the position, cannot be stale
	// against a concurrent sibling mutation.
	lesson, err = s.lessons.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	updated := *lesson
	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, fmt.Errorf("%w: lesson title required", core.ErrValidation)
		}
		updated.Title = *params.Title
	}
	if params.VideoURL != nil {
		updated.VideoURL = *params.VideoURL
	}
	if params.Content != nil {
		updated.Content = *params.Content
	}

	var shifts []core.PositionShift
	if params.Position != nil && *params.Position != lesson.Position {
		siblings, err := s.lessons.ListByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		index, err := core.NewOrderIndex(siblings)
		if err != nil {
			return nil, err
		}
		shifts, err = index.Move(lesson.ID, *params.Position)
		if err != nil {
			return nil, err
		}
		updated.Position = *params.Position
	}

	updated.UpdatedAt = s.now().UTC()
	return s.lessons.Update(ctx, updated, shifts)
}

// MoveLesson relocates a lesson within its course.
func (s *LessonService) MoveLesson(ctx context.Context, requester core.Requester, id uuid.UUID, newPosition int) (*core.Lesson, error) {
	return s.UpdateLesson(ctx, requester, core.UpdateLessonParams{ID: id, Position: &newPosition})
}

// DeleteLesson removes a lesson and compacts the remaining sibling positions
// as one atomic unit.
func (s *LessonService) DeleteLesson(ctx context.Context, requester core.Requester, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}

	lesson, err := s.lessons.Get(ctx, id)
	if err != nil {
		return err
	}
	course, err := s.courses.GetCourse(ctx, lesson.CourseID, core.CourseQueryOptions{})
	if err != nil {
		return err
	}
	if err := core.AuthorizeOwner(requester, course.OwnerID); err != nil {
		return err
	}

	unlock := s.locks.Lock(course.ID)
	defer unlock()

	siblings, err := s.lessons.ListByCourse(ctx, course.ID)
	if err != nil {
		return err
	}
	index, err := core.NewOrderIndex(siblings)
	if err != nil {
		return err
	}
	_, shifts, err := index.Remove(lesson.ID)
	if err != nil {
		return err
	}

	return s.lessons.Remove(ctx, lesson.ID, shifts)
}

// ListLessonStubs returns the public table of contents for a course: id,
// title and position only, for any caller.
func (s *LessonService) ListLessonStubs(ctx context.Context, courseID uuid.UUID) ([]core.LessonStub, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if _, err := s.courses.GetCourse(ctx, courseID, core.CourseQueryOptions{}); err != nil {
		return nil, err
	}
	return s.lessons.ListStubs(ctx, courseID)
}

// ReadLesson returns the full lesson when the requester is the course owner
// or holds an active enrollment; everyone else is denied. The enrollment
// check runs on every call.
func (s *LessonService) ReadLesson(ctx context.Context, requester core.Requester, id uuid.UUID) (*core.Lesson, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: lesson id required", core.ErrValidation)
	}

	lesson, err := s.lessons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetCourse(ctx, lesson.CourseID, core.CourseQueryOptions{})
	if err != nil {
		return nil, err
	}

	enrolled := false
	if !requester.IsAnonymous() && requester.ID != course.OwnerID {
		enrolled, err = s.enrollments.Exists(ctx, requester.ID, course.ID)
		if err != nil {
			return nil, err
		}
	}

	if core.LessonVisibility(requester, course.OwnerID, enrolled) != core.VisibilityFull {
		return nil, fmt.Errorf("%w: enroll in the course to view this lesson", core.ErrNotAuthorized)
	}
	return lesson, nil
}
