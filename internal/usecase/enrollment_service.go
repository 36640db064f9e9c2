package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

// EnrollmentService coordinates enrollment and favorite use cases.
type EnrollmentService struct {
	enrollments core.EnrollmentRepository
	favorites   core.FavoriteRepository
	courses     core.CourseRepository
	now         func() time.Time
}

// NewEnrollmentService constructs an EnrollmentService backed by the provided repositories.
func NewEnrollmentService(enrollments core.EnrollmentRepository, favorites core.FavoriteRepository, courses core.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		favorites:   favorites,
		courses:     courses,
		now:         time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *EnrollmentService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.EnrollmentService = (*EnrollmentService)(nil)

// Enroll grants the requester access to a course. Owners cannot enroll in
// their own courses and duplicate enrollments are rejected.
func (s *EnrollmentService) Enroll(ctx context.Context, requester core.Requester, courseID uuid.UUID) (*core.Enrollment, error) {
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in to enroll", core.ErrNotAuthorized)
	}
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	course, err := s.courses.GetCourse(ctx, courseID, core.CourseQueryOptions{})
	if err != nil {
		return nil, err
	}
	if course.OwnerID == requester.ID {
		return nil, core.ErrSelfEnrollment
	}

	exists, err := s.enrollments.Exists(ctx, requester.ID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.ErrAlreadyEnrolled
	}

	enrollment := core.Enrollment{
		ID:         uuid.New(),
		UserID:     requester.ID,
		CourseID:   courseID,
		EnrolledAt: s.now().UTC(),
	}
	return s.enrollments.Create(ctx, enrollment)
}

// Unenroll revokes the requester's enrollment for a course.
func (s *EnrollmentService) Unenroll(ctx context.Context, requester core.Requester, courseID uuid.UUID) error {
	if requester.IsAnonymous() {
		return fmt.Errorf("%w: sign in to unenroll", core.ErrNotAuthorized)
	}
	if courseID == uuid.Nil {
		return fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	return s.enrollments.Delete(ctx, requester.ID, courseID)
}

// ListMyEnrollments lists the requester's enrollments with their courses.
func (s *EnrollmentService) ListMyEnrollments(ctx context.Context, requester core.Requester) ([]core.Enrollment, error) {
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in to view enrollments", core.ErrNotAuthorized)
	}
	return s.enrollments.ListByUser(ctx, requester.ID)
}

// Favorite bookmarks a course for the requester. Owners may favorite their
// own courses; a favorite grants no access.
func (s *EnrollmentService) Favorite(ctx context.Context, requester core.Requester, courseID uuid.UUID) (*core.Favorite, error) {
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in to favorite", core.ErrNotAuthorized)
	}
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	if _, err := s.courses.GetCourse(ctx, courseID, core.CourseQueryOptions{}); err != nil {
		return nil, err
	}

	exists, err := s.favorites.Exists(ctx, requester.ID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.ErrAlreadyFavorited
	}

	favorite := core.Favorite{
		ID:        uuid.New(),
		UserID:    requester.ID,
		CourseID:  courseID,
		CreatedAt: s.now().UTC(),
	}
	return s.favorites.Create(ctx, favorite)
}

// Unfavorite removes a course from the requester's favorites.
func (s *EnrollmentService) Unfavorite(ctx context.Context, requester core.Requester, courseID uuid.UUID) error {
	if requester.IsAnonymous() {
		return fmt.Errorf("%w: sign in to unfavorite", core.ErrNotAuthorized)
	}
	if courseID == uuid.Nil {
		return fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	return s.favorites.Delete(ctx, requester.ID, courseID)
}

// ListMyFavorites lists the requester's favorites with their courses.
func (s *EnrollmentService) ListMyFavorites(ctx context.Context, requester core.Requester) ([]core.Favorite, error) {
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in to view favorites", core.ErrNotAuthorized)
	}
	return s.favorites.ListByUser(ctx, requester.ID)
}
