package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	entlesson "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/lesson"
	"github.com/kursuslab/kursus/internal/core"
)

// LessonRepository persists lessons using Ent. Every mutation applies the
// sibling position shifts handed down by the caller inside the same
// transaction, one row at a time in slice order, so the unique
// (course_id, position) index holds throughout.
type LessonRepository struct {
	client *entgenerated.Client
}

// NewLessonRepository constructs an Ent-backed lesson repository.
func NewLessonRepository(client *entgenerated.Client) *LessonRepository {
	return &LessonRepository{client: client}
}

var _ core.LessonRepository = (*LessonRepository)(nil)

// ListByCourse returns all lessons of a course ordered by position.
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.CourseIDEQ(courseID)).
		Order(entlesson.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Lesson, _ int) core.Lesson {
		return *toDomainLesson(row)
	}), nil
}

// ListStubs returns the table-of-contents view of a course's lessons.
func (r *LessonRepository) ListStubs(ctx context.Context, courseID uuid.UUID) ([]core.LessonStub, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.CourseIDEQ(courseID)).
		Order(entlesson.ByPosition()).
		Select(entlesson.FieldID, entlesson.FieldTitle, entlesson.FieldPosition).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Lesson, _ int) core.LessonStub {
		return core.LessonStub{ID: row.ID, Title: row.Title, Position: row.Position}
	}), nil
}

// Get fetches a lesson by id.
func (r *LessonRepository) Get(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainLesson(row), nil
}

// Insert creates a lesson after shifting its siblings out of the way.
func (r *LessonRepository) Insert(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if err := applyShifts(ctx, tx, shifts); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	row, err := tx.Lesson.Create().
		SetID(lesson.ID).
		SetCourseID(lesson.CourseID).
		SetPosition(lesson.Position).
		SetTitle(lesson.Title).
		SetVideoURL(lesson.VideoURL).
		SetContent(lesson.Content).
		SetCreatedAt(lesson.CreatedAt).
		SetUpdatedAt(lesson.UpdatedAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toDomainLesson(row), nil
}

// Update overwrites a lesson's attributes and applies the accompanying
// sibling shifts. When the lesson itself is moving, it is parked at position
// 0 first so the interval shifts never collide with its old slot. Position
// is written only when shifts accompany the update; an attribute-only update
// leaves whatever position the row currently holds untouched.
func (r *LessonRepository) Update(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if len(shifts) > 0 {
		if err := tx.Lesson.UpdateOneID(lesson.ID).SetPosition(0).Exec(ctx); err != nil {
			_ = tx.Rollback()
			if entgenerated.IsNotFound(err) {
				return nil, core.ErrNotFound
			}
			return nil, err
		}
		if err := applyShifts(ctx, tx, shifts); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	builder := tx.Lesson.UpdateOneID(lesson.ID).
		SetTitle(lesson.Title).
		SetVideoURL(lesson.VideoURL).
		SetContent(lesson.Content).
		SetUpdatedAt(lesson.UpdatedAt)
	if len(shifts) > 0 {
		builder.SetPosition(lesson.Position)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return toDomainLesson(row), nil
}

// Remove deletes a lesson and compacts the remaining sibling positions.
func (r *LessonRepository) Remove(ctx context.Context, id uuid.UUID, shifts []core.PositionShift) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if err := tx.Lesson.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}

	if err := applyShifts(ctx, tx, shifts); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func applyShifts(ctx context.Context, tx *entgenerated.Tx, shifts []core.PositionShift) error {
	for _, shift := range shifts {
		err := tx.Lesson.UpdateOneID(shift.LessonID).
			SetPosition(shift.Position).
			Exec(ctx)
		if err != nil {
			if entgenerated.IsNotFound(err) {
				return core.ErrNotFound
			}
			return err
		}
	}
	return nil
}

func toDomainLesson(row *entgenerated.Lesson) *core.Lesson {
	if row == nil {
		return nil
	}
	return &core.Lesson{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		VideoURL:  row.VideoURL,
		Content:   row.Content,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
