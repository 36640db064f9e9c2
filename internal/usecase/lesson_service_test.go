package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

func TestLessonService_CreateLesson(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ownerID := uuid.New()
	courseID := uuid.New()
	existing := []core.Lesson{
		{ID: uuid.New(), CourseID: courseID, Position: 1},
		{ID: uuid.New(), CourseID: courseID, Position: 2},
	}

	var capturedLesson core.Lesson
	var capturedShifts []core.PositionShift

	lessons := &stubLessonRepo{
		listByCourseFn: func(ctx context.Context, id uuid.UUID) ([]core.Lesson, error) {
			return existing, nil
		},
		insertFn: func(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
			capturedLesson = lesson
			capturedShifts = shifts
			copy := lesson
			return &copy, nil
		},
	}
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}

	service := NewLessonService(lessons, courses, &stubEnrollmentRepo{})
	service.WithClock(func() time.Time { return fixedNow })

	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}
	got, err := service.CreateLesson(context.Background(), requester, core.CreateLessonParams{
		CourseID: courseID,
		Title:    "Lesson",
		Position: 1,
	})
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	if got == nil {
		t.Fatal("CreateLesson() returned nil lesson")
	}
	if capturedLesson.ID == uuid.Nil {
		t.Fatal("expected generated lesson ID")
	}
	if capturedLesson.Position != 1 {
		t.Fatalf("expected position 1, got %d", capturedLesson.Position)
	}
	if capturedLesson.CreatedAt != fixedNow {
		t.Fatalf("expected CreatedAt %v, got %v", fixedNow, capturedLesson.CreatedAt)
	}
	// Both existing lessons shift down, highest position first.
	if len(capturedShifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(capturedShifts))
	}
	if capturedShifts[0].LessonID != existing[1].ID || capturedShifts[0].Position != 3 {
		t.Fatalf("unexpected first shift %+v", capturedShifts[0])
	}
	if capturedShifts[1].LessonID != existing[0].ID || capturedShifts[1].Position != 2 {
		t.Fatalf("unexpected second shift %+v", capturedShifts[1])
	}
}

func TestLessonService_CreateLessonRejectsNonOwner(t *testing.T) {
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: uuid.New()}, nil
		},
	}
	lessons := &stubLessonRepo{
		insertFn: func(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
			t.Fatal("insert must not be called")
			return nil, nil
		},
	}

	service := NewLessonService(lessons, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: uuid.New(), Role: core.RoleInstructor}

	_, err := service.CreateLesson(context.Background(), requester, core.CreateLessonParams{
		CourseID: courseID,
		Title:    "Lesson",
		Position: 1,
	})
	if !errors.Is(err, core.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestLessonService_CreateLessonRejectsOutOfRangePosition(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	lessons := &stubLessonRepo{
		listByCourseFn: func(ctx context.Context, id uuid.UUID) ([]core.Lesson, error) {
			return []core.Lesson{{ID: uuid.New(), CourseID: courseID, Position: 1}}, nil
		},
	}

	service := NewLessonService(lessons, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}

	_, err := service.CreateLesson(context.Background(), requester, core.CreateLessonParams{
		CourseID: courseID,
		Title:    "Lesson",
		Position: 5,
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for out-of-range position, got %v", err)
	}
}

func TestLessonService_MoveLessonNoOpSkipsSiblingLoad(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	lessonID := uuid.New()

	var capturedShifts []core.PositionShift
	listCalled := false

	lessons := &stubLessonRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
			return &core.Lesson{ID: lessonID, CourseID: courseID, Title: "L", Position: 2}, nil
		},
		listByCourseFn: func(ctx context.Context, id uuid.UUID) ([]core.Lesson, error) {
			listCalled = true
			return nil, nil
		},
		updateFn: func(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
			capturedShifts = shifts
			copy := lesson
			return &copy, nil
		},
	}
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}

	service := NewLessonService(lessons, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}

	if _, err := service.MoveLesson(context.Background(), requester, lessonID, 2); err != nil {
		t.Fatalf("MoveLesson() error = %v", err)
	}
	if listCalled {
		t.Fatal("expected no sibling load for a no-op move")
	}
	if capturedShifts != nil {
		t.Fatalf("expected no shifts for a no-op move, got %+v", capturedShifts)
	}
}

func TestLessonService_ReadLessonVisibility(t *testing.T) {
	ownerID := uuid.New()
	studentID := uuid.New()
	strangerID := uuid.New()
	courseID := uuid.New()
	lessonID := uuid.New()

	lessons := &stubLessonRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
			return &core.Lesson{ID: lessonID, CourseID: courseID, Title: "L", Content: "body", Position: 1}, nil
		},
	}
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	enrollments := &stubEnrollmentRepo{
		existsFn: func(ctx context.Context, userID, cID uuid.UUID) (bool, error) {
			return userID == studentID, nil
		},
	}

	service := NewLessonService(lessons, courses, enrollments)

	cases := []struct {
		name      string
		requester core.Requester
		wantErr   bool
	}{
		{"owner", core.Requester{ID: ownerID, Role: core.RoleInstructor}, false},
		{"enrolled student", core.Requester{ID: studentID, Role: core.RoleStudent}, false},
		{"stranger", core.Requester{ID: strangerID, Role: core.RoleStudent}, true},
		{"anonymous", core.Requester{}, true},
	}
	for _, tc := range cases {
		got, err := service.ReadLesson(context.Background(), tc.requester, lessonID)
		if tc.wantErr {
			if !errors.Is(err, core.ErrNotAuthorized) {
				t.Fatalf("%s: expected ErrNotAuthorized, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: ReadLesson() error = %v", tc.name, err)
		}
		if got.Content != "body" {
			t.Fatalf("%s: expected full content", tc.name)
		}
	}
}

func TestLessonService_DeleteLessonCompacts(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	var capturedShifts []core.PositionShift
	lessons := &stubLessonRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
			return &core.Lesson{ID: a, CourseID: courseID, Position: 1}, nil
		},
		listByCourseFn: func(ctx context.Context, id uuid.UUID) ([]core.Lesson, error) {
			return []core.Lesson{
				{ID: a, CourseID: courseID, Position: 1},
				{ID: b, CourseID: courseID, Position: 2},
				{ID: c, CourseID: courseID, Position: 3},
			}, nil
		},
		removeFn: func(ctx context.Context, id uuid.UUID, shifts []core.PositionShift) error {
			capturedShifts = shifts
			return nil
		},
	}
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}

	service := NewLessonService(lessons, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}

	if err := service.DeleteLesson(context.Background(), requester, a); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	want := []core.PositionShift{{LessonID: b, Position: 1}, {LessonID: c, Position: 2}}
	if len(capturedShifts) != len(want) {
		t.Fatalf("expected %d shifts, got %d", len(want), len(capturedShifts))
	}
	for i := range want {
		if capturedShifts[i] != want[i] {
			t.Fatalf("shift %d: expected %+v, got %+v", i, want[i], capturedShifts[i])
		}
	}
}

// memLessonRepo is a minimal in-memory repository that applies shifts the way
// a persisted store would, used to exercise same-course serialisation.
// getHook, when set, runs after a Get takes its snapshot but before the
// snapshot is returned, letting a test interleave another mutation into that
// window.
type memLessonRepo struct {
	mu      sync.Mutex
	lessons map[uuid.UUID]core.Lesson
	getHook func(id uuid.UUID)
}

func newMemLessonRepo() *memLessonRepo {
	return &memLessonRepo{lessons: make(map[uuid.UUID]core.Lesson)}
}

func (m *memLessonRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []core.Lesson
	for _, l := range m.lessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLessonRepo) ListStubs(ctx context.Context, courseID uuid.UUID) ([]core.LessonStub, error) {
	lessons, _ := m.ListByCourse(ctx, courseID)
	stubs := make([]core.LessonStub, 0, len(lessons))
	for _, l := range lessons {
		stubs = append(stubs, l.Stub())
	}
	return stubs, nil
}

func (m *memLessonRepo) Get(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	m.mu.Lock()
	l, ok := m.lessons[id]
	m.mu.Unlock()
	if !ok {
		return nil, core.ErrNotFound
	}
	if m.getHook != nil {
		m.getHook(id)
	}
	return &l, nil
}

func (m *memLessonRepo) applyShifts(shifts []core.PositionShift) {
	for _, s := range shifts {
		l := m.lessons[s.LessonID]
		l.Position = s.Position
		m.lessons[s.LessonID] = l
	}
}

func (m *memLessonRepo) Insert(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyShifts(shifts)
	m.lessons[lesson.ID] = lesson
	return &lesson, nil
}

func (m *memLessonRepo) Update(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyShifts(shifts)
	m.lessons[lesson.ID] = lesson
	return &lesson, nil
}

func (m *memLessonRepo) Remove(ctx context.Context, id uuid.UUID, shifts []core.PositionShift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lessons, id)
	m.applyShifts(shifts)
	return nil
}

func TestLessonService_ConcurrentMutationsKeepDensity(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()

	repo := newMemLessonRepo()
	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	service := NewLessonService(repo, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.CreateLesson(ctx, requester, core.CreateLessonParams{
				CourseID: courseID,
				Title:    "Lesson",
				Position: 1,
			}); err != nil {
				t.Errorf("CreateLesson() error = %v", err)
			}
		}()
	}
	wg.Wait()

	lessons, err := repo.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse() error = %v", err)
	}
	if len(lessons) != 16 {
		t.Fatalf("expected 16 lessons, got %d", len(lessons))
	}
	if _, err := core.NewOrderIndex(lessons); err != nil {
		t.Fatalf("density violated after concurrent inserts: %v", err)
	}
}

func TestLessonService_UpdateRereadsPositionUnderCourseLock(t *testing.T) {
	ownerID := uuid.New()
	courseID := uuid.New()

	repo := newMemLessonRepo()
	var ids []uuid.UUID
	for i := 1; i <= 5; i++ {
		l := core.Lesson{ID: uuid.New(), CourseID: courseID, Title: "L", Position: i}
		repo.lessons[l.ID] = l
		ids = append(ids, l.ID)
	}
	first, last := ids[0], ids[4]

	courses := &stubCourseRepo{
		getCourseFn: func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, OwnerID: ownerID}, nil
		},
	}
	service := NewLessonService(repo, courses, &stubEnrollmentRepo{})
	requester := core.Requester{ID: ownerID, Role: core.RoleInstructor}
	ctx := context.Background()

	// Delete the first lesson while the title update is between its initial
	// read and the course lock, compacting every later sibling by one. The
	// update must not write its pre-compaction snapshot back.
	fired := false
	repo.getHook = func(id uuid.UUID) {
		if fired || id != last {
			return
		}
		fired = true
		if err := service.DeleteLesson(ctx, requester, first); err != nil {
			t.Errorf("DeleteLesson() error = %v", err)
		}
	}

	title := "renamed"
	got, err := service.UpdateLesson(ctx, requester, core.UpdateLessonParams{ID: last, Title: &title})
	if err != nil {
		t.Fatalf("UpdateLesson() error = %v", err)
	}
	if got.Position != 4 {
		t.Fatalf("expected compacted position 4, got %d", got.Position)
	}
	if got.Title != "renamed" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}

	remaining, err := repo.ListByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("ListByCourse() error = %v", err)
	}
	if len(remaining) != 4 {
		t.Fatalf("expected 4 lessons, got %d", len(remaining))
	}
	if _, err := core.NewOrderIndex(remaining); err != nil {
		t.Fatalf("density violated after racing update: %v", err)
	}
}

type stubLessonRepo struct {
	listByCourseFn func(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error)
	listStubsFn    func(ctx context.Context, courseID uuid.UUID) ([]core.LessonStub, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*core.Lesson, error)
	insertFn       func(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error)
	updateFn       func(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error)
	removeFn       func(ctx context.Context, id uuid.UUID, shifts []core.PositionShift) error
}

func (s *stubLessonRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	if s.listByCourseFn != nil {
		return s.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (s *stubLessonRepo) ListStubs(ctx context.Context, courseID uuid.UUID) ([]core.LessonStub, error) {
	if s.listStubsFn != nil {
		return s.listStubsFn(ctx, courseID)
	}
	return nil, nil
}

func (s *stubLessonRepo) Get(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubLessonRepo) Insert(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	if s.insertFn != nil {
		return s.insertFn(ctx, lesson, shifts)
	}
	return nil, nil
}

func (s *stubLessonRepo) Update(ctx context.Context, lesson core.Lesson, shifts []core.PositionShift) (*core.Lesson, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, lesson, shifts)
	}
	return nil, nil
}

func (s *stubLessonRepo) Remove(ctx context.Context, id uuid.UUID, shifts []core.PositionShift) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, id, shifts)
	}
	return nil
}

type stubCourseRepo struct {
	listCoursesFn  func(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error)
	createCourseFn func(ctx context.Context, course core.Course) (*core.Course, error)
	getCourseFn    func(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error)
	updateCourseFn func(ctx context.Context, params core.UpdateCourseParams) (*core.Course, error)
	deleteCourseFn func(ctx context.Context, id uuid.UUID) error
	mostEnrolledFn func(ctx context.Context, limit int) ([]core.Course, error)
	countOwnedFn   func(ctx context.Context, ownerID uuid.UUID) (int, error)
}

func (s *stubCourseRepo) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	if s.listCoursesFn != nil {
		return s.listCoursesFn(ctx, filter)
	}
	return nil, "", nil
}

func (s *stubCourseRepo) CreateCourse(ctx context.Context, course core.Course) (*core.Course, error) {
	if s.createCourseFn != nil {
		return s.createCourseFn(ctx, course)
	}
	return &course, nil
}

func (s *stubCourseRepo) GetCourse(ctx context.Context, id uuid.UUID, opts core.CourseQueryOptions) (*core.Course, error) {
	if s.getCourseFn != nil {
		return s.getCourseFn(ctx, id, opts)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) UpdateCourse(ctx context.Context, params core.UpdateCourseParams) (*core.Course, error) {
	if s.updateCourseFn != nil {
		return s.updateCourseFn(ctx, params)
	}
	return nil, nil
}

func (s *stubCourseRepo) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if s.deleteCourseFn != nil {
		return s.deleteCourseFn(ctx, id)
	}
	return nil
}

func (s *stubCourseRepo) MostEnrolled(ctx context.Context, limit int) ([]core.Course, error) {
	if s.mostEnrolledFn != nil {
		return s.mostEnrolledFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubCourseRepo) CountOwnedBy(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if s.countOwnedFn != nil {
		return s.countOwnedFn(ctx, ownerID)
	}
	return 0, nil
}

type stubEnrollmentRepo struct {
	createFn     func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error)
	existsFn     func(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	deleteFn     func(ctx context.Context, userID, courseID uuid.UUID) error
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]core.Enrollment, error)
}

func (s *stubEnrollmentRepo) Create(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	if s.createFn != nil {
		return s.createFn(ctx, enrollment)
	}
	return &enrollment, nil
}

func (s *stubEnrollmentRepo) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, userID, courseID)
	}
	return false, nil
}

func (s *stubEnrollmentRepo) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, courseID)
	}
	return nil
}

func (s *stubEnrollmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]core.Enrollment, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}
