package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	ententrollment "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/enrollment"
	"github.com/kursuslab/kursus/internal/core"
)

// EnrollmentRepository persists enrollments using Ent.
type EnrollmentRepository struct {
	client *entgenerated.Client
}

// NewEnrollmentRepository constructs an Ent-backed enrollment repository.
func NewEnrollmentRepository(client *entgenerated.Client) *EnrollmentRepository {
	return &EnrollmentRepository{client: client}
}

var _ core.EnrollmentRepository = (*EnrollmentRepository)(nil)

// Create inserts a new enrollment row.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	row, err := r.client.Enrollment.Create().
		SetID(enrollment.ID).
		SetUserID(enrollment.UserID).
		SetCourseID(enrollment.CourseID).
		SetEnrolledAt(enrollment.EnrolledAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

// Exists reports whether the user is enrolled in the course.
func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	return r.client.Enrollment.Query().
		Where(
			ententrollment.UserIDEQ(userID),
			ententrollment.CourseIDEQ(courseID),
		).
		Exist(ctx)
}

// Delete removes the enrollment for a (user, course) pair.
func (r *EnrollmentRepository) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	deleted, err := r.client.Enrollment.Delete().
		Where(
			ententrollment.UserIDEQ(userID),
			ententrollment.CourseIDEQ(courseID),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return core.ErrNotEnrolled
	}
	return nil
}

// ListByUser returns the user's enrollments with their courses, newest first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]core.Enrollment, error) {
	rows, err := r.client.Enrollment.Query().
		Where(ententrollment.UserIDEQ(userID)).
		WithCourse(func(cq *entgenerated.CourseQuery) {
			cq.WithOwner().WithCategory().WithEnrollments()
		}).
		Order(entgenerated.Desc(ententrollment.FieldEnrolledAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Enrollment, _ int) core.Enrollment {
		return *toDomainEnrollment(row)
	}), nil
}

func toDomainEnrollment(row *entgenerated.Enrollment) *core.Enrollment {
	if row == nil {
		return nil
	}
	enrollment := &core.Enrollment{
		ID:         row.ID,
		UserID:     row.UserID,
		CourseID:   row.CourseID,
		EnrolledAt: row.EnrolledAt,
	}
	if row.Edges.Course != nil {
		enrollment.Course = toDomainCourse(row.Edges.Course, false)
	}
	return enrollment
}
