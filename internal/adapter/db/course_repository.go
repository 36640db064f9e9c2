package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	entcategory "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/category"
	entcourse "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/course"
	ententrollment "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/enrollment"
	entfavorite "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/favorite"
	entlesson "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/lesson"
	"github.com/kursuslab/kursus/internal/core"
)

// CourseRepository persists courses using Ent.
type CourseRepository struct {
	client *entgenerated.Client
}

// NewCourseRepository constructs an Ent-backed course repository.
func NewCourseRepository(client *entgenerated.Client) *CourseRepository {
	return &CourseRepository{client: client}
}

var _ core.CourseRepository = (*CourseRepository)(nil)

// ListCourses retrieves courses matching the supplied filter, newest first.
func (r *CourseRepository) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	offset, err := parseOffsetToken(filter.PageToken)
	if err != nil {
		return nil, "", err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	q := r.courseQuery(core.CourseQueryOptions{})

	if filter.OwnerID != uuid.Nil {
		q = q.Where(entcourse.OwnerIDEQ(filter.OwnerID))
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		q = q.Where(entcourse.Or(
			entcourse.TitleContainsFold(query),
			entcourse.HasCategoryWith(entcategory.NameContainsFold(query)),
		))
	}

	rows, err := q.
		Order(entcourse.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(pageSize + 1).
		All(ctx)
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		nextToken = strconv.Itoa(offset + pageSize)
	}

	courses := lo.Map(rows, func(row *entgenerated.Course, _ int) core.Course {
		return *toDomainCourse(row, false)
	})

	return courses, nextToken, nil
}

// CreateCourse persists a new course.
func (r *CourseRepository) CreateCourse(ctx context.Context, course core.Course) (*core.Course, error) {
	_, err := r.client.Course.Create().
		SetID(course.ID).
		SetOwnerID(course.OwnerID).
		SetCategoryID(course.CategoryID).
		SetTitle(course.Title).
		SetDescription(course.Description).
		SetThumbnailURL(course.ThumbnailURL).
		SetCreatedAt(course.CreatedAt).
		SetUpdatedAt(course.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: unknown owner or category", core.ErrValidation)
		}
		return nil, err
	}
	return r.GetCourse(ctx, course.ID, core.CourseQueryOptions{})
}

// GetCourse fetches a course by id with optional expansions.
func (r *CourseRepository) GetCourse(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
	row, err := r.courseQuery(opts).
		Where(entcourse.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCourse(row, opts.IncludeLessons), nil
}

// UpdateCourse applies the non-nil fields of params to an existing course.
func (r *CourseRepository) UpdateCourse(ctx context.Context, params core.UpdateCourseParams) (*core.Course, error) {
	builder := r.client.Course.UpdateOneID(params.ID).
		SetUpdatedAt(params.UpdatedAt)

	if params.Title != nil {
		builder.SetTitle(*params.Title)
	}
	if params.Description != nil {
		builder.SetDescription(*params.Description)
	}
	if params.CategoryID != nil {
		builder.SetCategoryID(*params.CategoryID)
	}
	if params.ThumbnailURL != nil {
		builder.SetThumbnailURL(*params.ThumbnailURL)
	}

	if err := builder.Exec(ctx); err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return r.GetCourse(ctx, params.ID, core.CourseQueryOptions{})
}

// DeleteCourse removes a course together with its lessons, enrollments and
// favorites in a single transaction.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	exists, err := tx.Course.Query().Where(entcourse.IDEQ(id)).Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if !exists {
		_ = tx.Rollback()
		return core.ErrNotFound
	}

	if _, err := tx.Lesson.Delete().Where(entlesson.CourseIDEQ(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Enrollment.Delete().Where(ententrollment.CourseIDEQ(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Favorite.Delete().Where(entfavorite.CourseIDEQ(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Course.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// MostEnrolled returns up to limit courses ordered by enrollment count.
func (r *CourseRepository) MostEnrolled(ctx context.Context, limit int) ([]core.Course, error) {
	if limit <= 0 {
		limit = 4
	}

	rows, err := r.courseQuery(core.CourseQueryOptions{}).
		Order(
			entcourse.ByEnrollmentsCount(sql.OrderDesc()),
			entcourse.ByCreatedAt(sql.OrderDesc()),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *entgenerated.Course, _ int) core.Course {
		return *toDomainCourse(row, false)
	}), nil
}

// CountOwnedBy returns the number of courses owned by the given user.
func (r *CourseRepository) CountOwnedBy(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return r.client.Course.Query().
		Where(entcourse.OwnerIDEQ(ownerID)).
		Count(ctx)
}

func (r *CourseRepository) courseQuery(opts core.CourseQueryOptions) *entgenerated.CourseQuery {
	q := r.client.Course.Query().
		WithOwner().
		WithCategory().
		WithEnrollments()
	if opts.IncludeLessons {
		q = q.WithLessons(func(lq *entgenerated.LessonQuery) {
			lq.Order(entlesson.ByPosition())
		})
	}
	return q
}

func toDomainCourse(row *entgenerated.Course, includeLessons bool) *core.Course {
	if row == nil {
		return nil
	}

	course := &core.Course{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		CategoryID:      row.CategoryID,
		Title:           row.Title,
		Description:     row.Description,
		ThumbnailURL:    row.ThumbnailURL,
		EnrollmentCount: len(row.Edges.Enrollments),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if row.Edges.Owner != nil {
		course.OwnerUsername = row.Edges.Owner.Username
	}
	if row.Edges.Category != nil {
		course.Category = &core.Category{
			ID:   row.Edges.Category.ID,
			Name: row.Edges.Category.Name,
		}
	}
	if includeLessons && row.Edges.Lessons != nil {
		course.Lessons = lo.Map(row.Edges.Lessons, func(l *entgenerated.Lesson, _ int) core.LessonStub {
			return core.LessonStub{ID: l.ID, Title: l.Title, Position: l.Position}
		})
	}

	return course
}

func parseOffsetToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidPageToken, token)
	}
	return offset, nil
}
