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

func TestLessonRepository_InsertAppliesShifts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupLessonRepo(t, ctx, "lesson_repo_insert")
	defer client.Close()

	courseID := seedCourse(t, ctx, client)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	first := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "First", Position: 1, CreatedAt: now, UpdatedAt: now}
	second := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "Second", Position: 2, CreatedAt: now, UpdatedAt: now}
	if _, err := repo.Insert(ctx, first, nil); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, err := repo.Insert(ctx, second, nil); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Insert at the head: both existing rows shift down, highest first, so
	// the unique (course_id, position) index never trips.
	head := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "Head", Position: 1, CreatedAt: now, UpdatedAt: now}
	shifts := []core.PositionShift{
		{LessonID: second.ID, Position: 3},
		{LessonID: first.ID, Position: 2},
	}
	if _, err := repo.Insert(ctx, head, shifts); err != nil {
		t.Fatalf("Insert() with shifts error = %v", err)
	}

	assertLessonOrder(t, ctx, repo, courseID, []uuid.UUID{head.ID, first.ID, second.ID})
}

func TestLessonRepository_UpdateMovesWithinCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupLessonRepo(t, ctx, "lesson_repo_move")
	defer client.Close()

	courseID := seedCourse(t, ctx, client)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	a := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "A", Position: 1, CreatedAt: now, UpdatedAt: now}
	b := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "B", Position: 2, CreatedAt: now, UpdatedAt: now}
	c := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "C", Position: 3, CreatedAt: now, UpdatedAt: now}
	for _, l := range []core.Lesson{a, b, c} {
		if _, err := repo.Insert(ctx, l, nil); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	// Move C to the head: A and B slide down from the vacated end, then C
	// lands on position 1.
	moved := c
	moved.Position = 1
	shifts := []core.PositionShift{
		{LessonID: b.ID, Position: 3},
		{LessonID: a.ID, Position: 2},
		{LessonID: c.ID, Position: 1},
	}
	if _, err := repo.Update(ctx, moved, shifts); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	assertLessonOrder(t, ctx, repo, courseID, []uuid.UUID{c.ID, a.ID, b.ID})
}

func TestLessonRepository_UpdateWithoutShiftsKeepsStoredPosition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupLessonRepo(t, ctx, "lesson_repo_attr_update")
	defer client.Close()

	courseID := seedCourse(t, ctx, client)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	a := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "A", Position: 1, CreatedAt: now, UpdatedAt: now}
	b := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "B", Position: 2, CreatedAt: now, UpdatedAt: now}
	for _, l := range []core.Lesson{a, b} {
		if _, err := repo.Insert(ctx, l, nil); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	// An attribute-only update carries whatever position its caller last saw.
	// Without shifts that snapshot must not reach the row, even when stale.
	renamed := b
	renamed.Title = "B renamed"
	renamed.Position = 7
	got, err := repo.Update(ctx, renamed, nil)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Title != "B renamed" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if got.Position != 2 {
		t.Fatalf("expected stored position 2, got %d", got.Position)
	}

	assertLessonOrder(t, ctx, repo, courseID, []uuid.UUID{a.ID, b.ID})
}

func TestLessonRepository_RemoveCompacts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupLessonRepo(t, ctx, "lesson_repo_remove")
	defer client.Close()

	courseID := seedCourse(t, ctx, client)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	a := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "A", Position: 1, CreatedAt: now, UpdatedAt: now}
	b := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "B", Position: 2, CreatedAt: now, UpdatedAt: now}
	c := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "C", Position: 3, CreatedAt: now, UpdatedAt: now}
	for _, l := range []core.Lesson{a, b, c} {
		if _, err := repo.Insert(ctx, l, nil); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	shifts := []core.PositionShift{
		{LessonID: b.ID, Position: 1},
		{LessonID: c.ID, Position: 2},
	}
	if err := repo.Remove(ctx, a.ID, shifts); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	assertLessonOrder(t, ctx, repo, courseID, []uuid.UUID{b.ID, c.ID})

	if _, err := repo.Get(ctx, a.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for removed lesson, got %v", err)
	}
}

func TestLessonRepository_ListStubsOmitsContent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupLessonRepo(t, ctx, "lesson_repo_stubs")
	defer client.Close()

	courseID := seedCourse(t, ctx, client)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	lesson := core.Lesson{
		ID:        uuid.New(),
		CourseID:  courseID,
		Title:     "Full",
		VideoURL:  "https://cdn.local/v.mp4",
		Content:   "secret body",
		Position:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := repo.Insert(ctx, lesson, nil); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	stubs, err := repo.ListStubs(ctx, courseID)
	if err != nil {
		t.Fatalf("ListStubs() error = %v", err)
	}
	if len(stubs) != 1 {
		t.Fatalf("expected 1 stub, got %d", len(stubs))
	}
	if stubs[0].ID != lesson.ID || stubs[0].Title != "Full" || stubs[0].Position != 1 {
		t.Fatalf("unexpected stub %+v", stubs[0])
	}
}

func setupLessonRepo(t *testing.T, ctx context.Context, name string) (*LessonRepository, *entgenerated.Client) {
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
	return NewLessonRepository(client), client
}

func seedCourse(t *testing.T, ctx context.Context, client *entgenerated.Client) uuid.UUID {
	t.Helper()

	owner, err := client.User.Create().
		SetName("Owner").
		SetUsername("owner-" + uuid.NewString()[:8]).
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("hash").
		SetRole(int(core.RoleInstructor)).
		Save(ctx)
	if err != nil {
		t.Fatalf("failed creating owner: %v", err)
	}

	category, err := client.Category.Create().
		SetName("Category " + uuid.NewString()[:8]).
		Save(ctx)
	if err != nil {
		t.Fatalf("failed creating category: %v", err)
	}

	course, err := client.Course.Create().
		SetOwnerID(owner.ID).
		SetCategoryID(category.ID).
		SetTitle("Course").
		Save(ctx)
	if err != nil {
		t.Fatalf("failed creating course: %v", err)
	}
	return course.ID
}

func assertLessonOrder(t *testing.T, ctx context.Context, repo *LessonRepository, courseID uuid.UUID, want []uuid.UUID) {
	t.Helper()

	lessons, err := repo.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse() error = %v", err)
	}
	if len(lessons) != len(want) {
		t.Fatalf("expected %d lessons, got %d", len(want), len(lessons))
	}
	for i, lesson := range lessons {
		if lesson.Position != i+1 {
			t.Fatalf("expected dense positions, got %d at index %d", lesson.Position, i)
		}
		if lesson.ID != want[i] {
			t.Fatalf("unexpected lesson %s at position %d", lesson.ID, i+1)
		}
	}
}
