package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	courseID := uuid.New()
	studentID := uuid.New()

	var captured core.Enrollment
	enrollments := &stubEnrollmentRepo{
		createFn: func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
			captured = enrollment
			copy := enrollment
			return &copy, nil
		},
	}
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: uuid.New()}, nil
		},
	}

	service := NewEnrollmentService(enrollments, &stubFavoriteRepo{}, courses)
	service.WithClock(func() time.Time { return fixedNow })

	got, err := service.Enroll(context.Background(), core.Requester{ID: studentID, Role: core.RoleStudent}, courseID)
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if got == nil {
		t.Fatal("Enroll() returned nil enrollment")
	}
	if captured.UserID != studentID || captured.CourseID != courseID {
		t.Fatalf("unexpected enrollment %+v", captured)
	}
	if captured.EnrolledAt != fixedNow {
		t.Fatalf("expected EnrolledAt %v, got %v", fixedNow, captured.EnrolledAt)
	}
}

func TestEnrollmentService_EnrollRejectsOwner(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}

	service := NewEnrollmentService(&stubEnrollmentRepo{}, &stubFavoriteRepo{}, courses)

	_, err := service.Enroll(context.Background(), core.Requester{ID: ownerID, Role: core.RoleInstructor}, courseID)
	if !errors.Is(err, core.ErrSelfEnrollment) {
		t.Fatalf("expected ErrSelfEnrollment, got %v", err)
	}
}

func TestEnrollmentService_EnrollRejectsDuplicate(t *testing.T) {
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: uuid.New()}, nil
		},
	}
	enrollments := &stubEnrollmentRepo{
		existsFn: func(ctx context.Context, userID, cID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	service := NewEnrollmentService(enrollments, &stubFavoriteRepo{}, courses)

	_, err := service.Enroll(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleStudent}, courseID)
	if !errors.Is(err, core.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollmentService_EnrollRejectsAnonymous(t *testing.T) {
	service := NewEnrollmentService(&stubEnrollmentRepo{}, &stubFavoriteRepo{}, &stubCourseRepo{})

	_, err := service.Enroll(context.Background(), core.Requester{}, uuid.New())
	if !errors.Is(err, core.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestEnrollmentService_UnenrollMissing(t *testing.T) {
	enrollments := &stubEnrollmentRepo{
		deleteFn: func(ctx context.Context, userID, courseID uuid.UUID) error {
			return core.ErrNotEnrolled
		},
	}
	service := NewEnrollmentService(enrollments, &stubFavoriteRepo{}, &stubCourseRepo{})

	err := service.Unenroll(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleStudent}, uuid.New())
	if !errors.Is(err, core.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestEnrollmentService_FavoriteAllowsOwner(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	favorites := &stubFavoriteRepo{
		createFn: func(ctx context.Context, favorite core.Favorite) (*core.Favorite, error) {
			copy := favorite
			return &copy, nil
		},
	}

	service := NewEnrollmentService(&stubEnrollmentRepo{}, favorites, courses)

	if _, err := service.Favorite(context.Background(), core.Requester{ID: ownerID, Role: core.RoleInstructor}, courseID); err != nil {
		t.Fatalf("Favorite() error = %v", err)
	}
}

func TestEnrollmentService_FavoriteRejectsDuplicate(t *testing.T) {
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: uuid.New()}, nil
		},
	}
	favorites := &stubFavoriteRepo{
		existsFn: func(ctx context.Context, userID, cID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	service := NewEnrollmentService(&stubEnrollmentRepo{}, favorites, courses)

	_, err := service.Favorite(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleStudent}, courseID)
	if !errors.Is(err, core.ErrAlreadyFavorited) {
		t.Fatalf("expected ErrAlreadyFavorited, got %v", err)
	}
}

func TestEnrollmentService_ListMyEnrollments(t *testing.T) {
	studentID := uuid.New()
	enrollments := &stubEnrollmentRepo{
		listByUserFn: func(ctx context.Context, userID uuid.UUID) ([]core.Enrollment, error) {
			if userID != studentID {
				t.Fatalf("unexpected user id %s", userID)
			}
			return []core.Enrollment{{ID: uuid.New(), UserID: studentID}}, nil
		},
	}
	service := NewEnrollmentService(enrollments, &stubFavoriteRepo{}, &stubCourseRepo{})

	got, err := service.ListMyEnrollments(context.Background(), core.Requester{ID: studentID, Role: core.RoleStudent})
	if err != nil {
		t.Fatalf("ListMyEnrollments() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(got))
	}
}

type stubFavoriteRepo struct {
	createFn     func(ctx context.Context, favorite core.Favorite) (*core.Favorite, error)
	existsFn     func(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	deleteFn     func(ctx context.Context, userID, courseID uuid.UUID) error
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]core.Favorite, error)
}

func (s *stubFavoriteRepo) Create(ctx context.Context, favorite core.Favorite) (*core.Favorite, error) {
	if s.createFn != nil {
		return s.createFn(ctx, favorite)
	}
	return &favorite, nil
}

func (s *stubFavoriteRepo) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, userID, courseID)
	}
	return false, nil
}

func (s *stubFavoriteRepo) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, courseID)
	}
	return nil
}

func (s *stubFavoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]core.Favorite, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}
