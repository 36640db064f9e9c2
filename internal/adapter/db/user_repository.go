package db

import (
	"context"
	"strings"

	"github.com/google/uuid"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	ententrollment "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/enrollment"
	entfavorite "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/favorite"
	entuser "github.com/kursuslab/kursus/internal/adapter/db/ent/generated/user"
	"github.com/kursuslab/kursus/internal/core"
)

// UserRepository persists users using Ent.
type UserRepository struct {
	client *entgenerated.Client
}

// NewUserRepository constructs an Ent-backed user repository.
func NewUserRepository(client *entgenerated.Client) *UserRepository {
	return &UserRepository{client: client}
}

var _ core.UserRepository = (*UserRepository)(nil)

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user core.User) (*core.User, error) {
	row, err := r.client.User.Create().
		SetID(user.ID).
		SetName(user.Name).
		SetUsername(user.Username).
		SetEmail(user.Email).
		SetPasswordHash(user.PasswordHash).
		SetRole(int(user.Role)).
		SetCreatedAt(user.CreatedAt).
		SetUpdatedAt(user.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, takenError(err)
		}
		return nil, err
	}
	return toDomainUser(row), nil
}

// takenError maps a unique-constraint violation on users to the column that
// tripped it. Both the postgres constraint name and the sqlite error text
// carry the column name.
func takenError(err error) error {
	if strings.Contains(err.Error(), "username") {
		return core.ErrUsernameTaken
	}
	return core.ErrEmailTaken
}

// Get fetches a user by id.
func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*core.User, error) {
	row, err := r.client.User.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(row), nil
}

// GetByEmail fetches a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*core.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(row), nil
}

// GetByUsername fetches a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*core.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(row), nil
}

// Update overwrites the user's attributes.
func (r *UserRepository) Update(ctx context.Context, user core.User) (*core.User, error) {
	row, err := r.client.User.UpdateOneID(user.ID).
		SetName(user.Name).
		SetUsername(user.Username).
		SetEmail(user.Email).
		SetPasswordHash(user.PasswordHash).
		SetRole(int(user.Role)).
		SetUpdatedAt(user.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(row), nil
}

// Delete removes a user together with their enrollments and favorites.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	exists, err := tx.User.Query().Where(entuser.IDEQ(id)).Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if !exists {
		_ = tx.Rollback()
		return core.ErrNotFound
	}

	if _, err := tx.Enrollment.Delete().Where(ententrollment.UserIDEQ(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Favorite.Delete().Where(entfavorite.UserIDEQ(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.User.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func toDomainUser(row *entgenerated.User) *core.User {
	if row == nil {
		return nil
	}
	return &core.User{
		ID:           row.ID,
		Name:         row.Name,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         core.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
