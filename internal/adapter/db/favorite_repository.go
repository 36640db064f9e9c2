package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	entfavorite "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/favorite"
	"github.com/kursuslab/kursus/internal/core"
)

// FavoriteRepository persists favorites using Ent.
type FavoriteRepository struct {
	client *entgenerated.Client
}

// NewFavoriteRepository constructs an Ent-backed favorite repository.
func NewFavoriteRepository(client *entgenerated.Client) *FavoriteRepository {
	return &FavoriteRepository{client: client}
}

var _ core.FavoriteRepository = (*FavoriteRepository)(nil)

// Create inserts a new favorite row.
func (r *FavoriteRepository) Create(ctx context.Context, favorite core.Favorite) (*core.Favorite, error) {
	row, err := r.client.Favorite.Create().
		SetID(favorite.ID).
		SetUserID(favorite.UserID).
		SetCourseID(favorite.CourseID).
		SetCreatedAt(favorite.CreatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrAlreadyFavorited
		}
		return nil, err
	}
	return toDomainFavorite(row), nil
}

// Exists reports whether the user has favorited the course.
func (r *FavoriteRepository) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	return r.client.Favorite.Query().
		Where(
			entfavorite.UserIDEQ(userID),
			entfavorite.CourseIDEQ(courseID),
		).
		Exist(ctx)
}

// Delete removes the favorite for a (user, course) pair.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	deleted, err := r.client.Favorite.Delete().
		Where(
			entfavorite.UserIDEQ(userID),
			entfavorite.CourseIDEQ(courseID),
		).
		Exec(ctx)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return core.ErrNotFavorited
	}
	return nil
}

// ListByUser returns the user's favorites with their courses, newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]core.Favorite, error) {
	rows, err := r.client.Favorite.Query().
		Where(entfavorite.UserIDEQ(userID)).
		WithCourse(func(cq *entgenerated.CourseQuery) {
			cq.WithOwner().WithCategory().WithEnrollments()
		}).
		Order(entgenerated.Desc(entfavorite.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *entgenerated.Favorite, _ int) core.Favorite {
		return *toDomainFavorite(row)
	}), nil
}

func toDomainFavorite(row *entgenerated.Favorite) *core.Favorite {
	if row == nil {
		return nil
	}
	favorite := &core.Favorite{
		ID:        row.ID,
		UserID:    row.UserID,
		CourseID:  row.CourseID,
		CreatedAt: row.CreatedAt,
	}
	if row.Edges.Course != nil {
		favorite.Course = toDomainCourse(row.Edges.Course, false)
	}
	return favorite
}
