package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Enrollment grants a student access to a course's full lesson content.
// At most one enrollment exists per (user, course) pair.
type Enrollment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CourseID   uuid.UUID
	Course     *Course
	EnrolledAt time.Time
}

// Favorite bookmarks a course for a user. It confers no access rights.
type Favorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CourseID  uuid.UUID
	Course    *Course
	CreatedAt time.Time
}

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment Enrollment) (*Enrollment, error)
	Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, courseID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error)
}

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite Favorite) (*Favorite, error)
	Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, courseID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
}

// EnrollmentService exposes enrollment and favorite use cases to adapters.
type EnrollmentService interface {
	Enroll(ctx context.Context, requester Requester, courseID uuid.UUID) (*Enrollment, error)
	Unenroll(ctx context.Context, requester Requester, courseID uuid.UUID) error
	ListMyEnrollments(ctx context.Context, requester Requester) ([]Enrollment, error)
	Favorite(ctx context.Context, requester Requester, courseID uuid.UUID) (*Favorite, error)
	Unfavorite(ctx context.Context, requester Requester, courseID uuid.UUID) error
	ListMyFavorites(ctx context.Context, requester Requester) ([]Favorite, error)
}
