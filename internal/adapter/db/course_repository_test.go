package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	entgenerated "github.com/kursuslab/kursus/internal/adapter/db/ent/generated"
	"github.com/kursuslab/kursus/internal/adapter/db/ent/generated/enttest"
	"github.com/kursuslab/kursus/internal/core"
)

func TestCourseRepository_SearchMatchesTitleAndCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupCourseRepo(t, ctx, "course_repo_search")
	defer client.Close()

	ownerID := seedUser(t, ctx, client, core.RoleInstructor)
	golang := seedCategory(t, ctx, client, "Golang")
	design := seedCategory(t, ctx, client, "Design")

	mustCreateCourse(t, ctx, repo, core.Course{ID: uuid.New(), OwnerID: ownerID, CategoryID: golang, Title: "Backend APIs"})
	mustCreateCourse(t, ctx, repo, core.Course{ID: uuid.New(), OwnerID: ownerID, CategoryID: design, Title: "Intro to Figma"})
	mustCreateCourse(t, ctx, repo, core.Course{ID: uuid.New(), OwnerID: ownerID, CategoryID: design, Title: "Golang posters"})

	// Matches "Golang posters" by title and "Backend APIs" by category name.
	courses, _, err := repo.ListCourses(ctx, core.CourseListFilter{Query: "golang"})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(courses))
	}
}

func TestCourseRepository_Pagination(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupCourseRepo(t, ctx, "course_repo_paging")
	defer client.Close()

	ownerID := seedUser(t, ctx, client, core.RoleInstructor)
	categoryID := seedCategory(t, ctx, client, "Golang")

	for i := 0; i < 5; i++ {
		mustCreateCourse(t, ctx, repo, core.Course{ID: uuid.New(), OwnerID: ownerID, CategoryID: categoryID, Title: "Course"})
	}

	page1, token, err := repo.ListCourses(ctx, core.CourseListFilter{PageSize: 2})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page1) != 2 || token == "" {
		t.Fatalf("expected a full first page with a token, got %d courses, token %q", len(page1), token)
	}

	page2, token, err := repo.ListCourses(ctx, core.CourseListFilter{PageSize: 2, PageToken: token})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page2) != 2 || token == "" {
		t.Fatalf("expected a full second page with a token, got %d courses, token %q", len(page2), token)
	}

	page3, token, err := repo.ListCourses(ctx, core.CourseListFilter{PageSize: 2, PageToken: token})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(page3) != 1 || token != "" {
		t.Fatalf("expected a final page of 1 with no token, got %d courses, token %q", len(page3), token)
	}

	if _, _, err := repo.ListCourses(ctx, core.CourseListFilter{PageToken: "bogus"}); !errors.Is(err, core.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestCourseRepository_DeleteCascades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupCourseRepo(t, ctx, "course_repo_cascade")
	defer client.Close()

	ownerID := seedUser(t, ctx, client, core.RoleInstructor)
	studentID := seedUser(t, ctx, client, core.RoleStudent)
	categoryID := seedCategory(t, ctx, client, "Golang")

	courseID := uuid.New()
	mustCreateCourse(t, ctx, repo, core.Course{ID: courseID, OwnerID: ownerID, CategoryID: categoryID, Title: "Course"})

	lessons := NewLessonRepository(client)
	if _, err := lessons.Insert(ctx, core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "L1", Position: 1}, nil); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	enrollments := NewEnrollmentRepository(client)
	if _, err := enrollments.Create(ctx, core.Enrollment{ID: uuid.New(), UserID: studentID, CourseID: courseID}); err != nil {
		t.Fatalf("Create() enrollment error = %v", err)
	}
	favorites := NewFavoriteRepository(client)
	if _, err := favorites.Create(ctx, core.Favorite{ID: uuid.New(), UserID: studentID, CourseID: courseID}); err != nil {
		t.Fatalf("Create() favorite error = %v", err)
	}

	if err := repo.DeleteCourse(ctx, courseID); err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}

	if _, err := repo.GetCourse(ctx, courseID, core.CourseQueryOptions{}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	remaining, err := lessons.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no lessons after cascade, got %d", len(remaining))
	}
	enrolled, err := enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if enrolled {
		t.Fatal("expected enrollment to be cascaded away")
	}
}

func TestCourseRepository_MostEnrolled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupCourseRepo(t, ctx, "course_repo_featured")
	defer client.Close()

	ownerID := seedUser(t, ctx, client, core.RoleInstructor)
	categoryID := seedCategory(t, ctx, client, "Golang")

	popular := uuid.New()
	quiet := uuid.New()
	mustCreateCourse(t, ctx, repo, core.Course{ID: popular, OwnerID: ownerID, CategoryID: categoryID, Title: "Popular"})
	mustCreateCourse(t, ctx, repo, core.Course{ID: quiet, OwnerID: ownerID, CategoryID: categoryID, Title: "Quiet"})

	enrollments := NewEnrollmentRepository(client)
	for i := 0; i < 3; i++ {
		studentID := seedUser(t, ctx, client, core.RoleStudent)
		if _, err := enrollments.Create(ctx, core.Enrollment{ID: uuid.New(), UserID: studentID, CourseID: popular}); err != nil {
			t.Fatalf("Create() enrollment error = %v", err)
		}
	}

	featured, err := repo.MostEnrolled(ctx, 4)
	if err != nil {
		t.Fatalf("MostEnrolled() error = %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(featured))
	}
	if featured[0].ID != popular {
		t.Fatalf("expected the popular course first, got %s", featured[0].ID)
	}
	if featured[0].EnrollmentCount != 3 {
		t.Fatalf("expected enrollment count 3, got %d", featured[0].EnrollmentCount)
	}
}

func TestCourseRepository_GetCourseWithLessons(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, client := setupCourseRepo(t, ctx, "course_repo_lessons")
	defer client.Close()

	ownerID := seedUser(t, ctx, client, core.RoleInstructor)
	categoryID := seedCategory(t, ctx, client, "Golang")
	courseID := uuid.New()
	mustCreateCourse(t, ctx, repo, core.Course{ID: courseID, OwnerID: ownerID, CategoryID: categoryID, Title: "Course"})

	lessons := NewLessonRepository(client)
	for i := 1; i <= 3; i++ {
		if _, err := lessons.Insert(ctx, core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "L", Position: i}, nil); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := repo.GetCourse(ctx, courseID, core.CourseQueryOptions{IncludeLessons: true})
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if len(got.Lessons) != 3 {
		t.Fatalf("expected 3 lesson stubs, got %d", len(got.Lessons))
	}
	for i, stub := range got.Lessons {
		if stub.Position != i+1 {
			t.Fatalf("expected stubs ordered by position, got %d at index %d", stub.Position, i)
		}
	}
}

func setupCourseRepo(t *testing.T, ctx context.Context, name string) (*CourseRepository, *entgenerated.Client) {
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
	return NewCourseRepository(client), client
}

func seedUser(t *testing.T, ctx context.Context, client *entgenerated.Client, role core.Role) uuid.UUID {
	t.Helper()
	user, err := client.User.Create().
		SetName("User").
		SetUsername("user-" + uuid.NewString()[:8]).
		SetEmail(uuid.NewString() + "@example.com").
		SetPasswordHash("hash").
		SetRole(int(role)).
		Save(ctx)
	if err != nil {
		t.Fatalf("failed creating user: %v", err)
	}
	return user.ID
}

func seedCategory(t *testing.T, ctx context.Context, client *entgenerated.Client, name string) uuid.UUID {
	t.Helper()
	category, err := client.Category.Create().
		SetName(name + " " + uuid.NewString()[:8]).
		Save(ctx)
	if err != nil {
		t.Fatalf("failed creating category: %v", err)
	}
	return category.ID
}

func mustCreateCourse(t *testing.T, ctx context.Context, repo *CourseRepository, course core.Course) {
	t.Helper()
	if _, err := repo.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
}
