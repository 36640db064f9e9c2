package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	"github.com/kursuslab/kursus/internal/adapter/db/ent/generated/enttest"
	"github.com/kursuslab/kursus/internal/core"
)

func TestUserRepository_CreateDistinguishesTakenColumns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupUserRepo(t, ctx, "user_repo_taken")
	defer client.Close()

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	first := core.User{
		ID:           uuid.New(),
		Name:         "First",
		Username:     "first",
		Email:        "first@example.com",
		PasswordHash: "hash",
		Role:         core.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sameUsername := first
	sameUsername.ID = uuid.New()
	sameUsername.Email = "other@example.com"
	if _, err := repo.Create(ctx, sameUsername); !errors.Is(err, core.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken for duplicate username, got %v", err)
	}

	sameEmail := first
	sameEmail.ID = uuid.New()
	sameEmail.Username = "second"
	if _, err := repo.Create(ctx, sameEmail); !errors.Is(err, core.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for duplicate email, got %v", err)
	}
}

func setupUserRepo(t *testing.T, ctx context.Context, name string) (*UserRepository, *entgenerated.Client) {
	t.Helper()
	drv, err := stdsql.Open("sqlite", "file:"+name+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	driver := entsql.OpenDB(dialect.SQLite, drv)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	return NewUserRepository(client), client
}
