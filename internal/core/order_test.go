package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func lessonsAt(ids ...uuid.UUID) []Lesson {
	lessons := make([]Lesson, 0, len(ids))
	for i, id := range ids {
		lessons = append(lessons, Lesson{ID: id, Position: i + 1})
	}
	return lessons
}

func assertOrder(t *testing.T, x *OrderIndex, want ...uuid.UUID) {
	t.Helper()
	got := x.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d lessons, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
}

func TestNewOrderIndex_RejectsGapsAndDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	if _, err := NewOrderIndex([]Lesson{{ID: a, Position: 1}, {ID: b, Position: 3}}); !errors.Is(err, ErrOrderCorrupt) {
		t.Fatalf("expected ErrOrderCorrupt for gap, got %v", err)
	}
	if _, err := NewOrderIndex([]Lesson{{ID: a, Position: 2}, {ID: b, Position: 2}}); !errors.Is(err, ErrOrderCorrupt) {
		t.Fatalf("expected ErrOrderCorrupt for duplicate, got %v", err)
	}
	if _, err := NewOrderIndex(nil); err != nil {
		t.Fatalf("expected empty index to be valid, got %v", err)
	}
}

func TestOrderIndex_InsertAt(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	x, err := NewOrderIndex(lessonsAt(a, b, c))
	if err != nil {
		t.Fatalf("NewOrderIndex() error = %v", err)
	}

	shifts, err := x.InsertAt(d, 2)
	if err != nil {
		t.Fatalf("InsertAt() error = %v", err)
	}
	assertOrder(t, x, a, d, b, c)

	// Shifts must run from the highest affected position down so each row
	// lands on a slot already vacated.
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0] != (PositionShift{LessonID: c, Position: 4}) {
		t.Fatalf("unexpected first shift %+v", shifts[0])
	}
	if shifts[1] != (PositionShift{LessonID: b, Position: 3}) {
		t.Fatalf("unexpected second shift %+v", shifts[1])
	}
}

func TestOrderIndex_InsertAtEnd(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a))

	shifts, err := x.InsertAt(b, 2)
	if err != nil {
		t.Fatalf("InsertAt() error = %v", err)
	}
	if len(shifts) != 0 {
		t.Fatalf("expected no shifts appending at the tail, got %d", len(shifts))
	}
	assertOrder(t, x, a, b)
}

func TestOrderIndex_InsertAtOutOfRange(t *testing.T) {
	a := uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a))

	if _, err := x.InsertAt(uuid.New(), 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for position 0, got %v", err)
	}
	if _, err := x.InsertAt(uuid.New(), 3); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for position past N+1, got %v", err)
	}
	assertOrder(t, x, a)
}

func TestOrderIndex_MoveNoOp(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a, b, c))

	shifts, err := x.Move(b, 2)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if shifts != nil {
		t.Fatalf("expected nil shifts for no-op move, got %+v", shifts)
	}
	assertOrder(t, x, a, b, c)
}

func TestOrderIndex_MoveRoundTrip(t *testing.T) {
	a, b, c, d, e := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a, b, c, d, e))

	if _, err := x.Move(e, 2); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if _, err := x.Move(e, 5); err != nil {
		t.Fatalf("Move() back error = %v", err)
	}
	assertOrder(t, x, a, b, c, d, e)
}

func TestOrderIndex_MoveScenario(t *testing.T) {
	// Course [1:A, 2:B, 3:C]; move(C, 1) then delete A.
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a, b, c))

	shifts, err := x.Move(c, 1)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	assertOrder(t, x, c, a, b)
	if last := shifts[len(shifts)-1]; last != (PositionShift{LessonID: c, Position: 1}) {
		t.Fatalf("expected moved lesson as final shift, got %+v", last)
	}

	pos, shifts, err := x.Remove(a)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if pos != 2 {
		t.Fatalf("expected A removed from position 2, got %d", pos)
	}
	if len(shifts) != 1 || shifts[0] != (PositionShift{LessonID: b, Position: 2}) {
		t.Fatalf("unexpected compaction shifts %+v", shifts)
	}
	assertOrder(t, x, c, b)
}

func TestOrderIndex_MoveDownShiftOrder(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a, b, c, d))

	shifts, err := x.Move(a, 3)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	assertOrder(t, x, b, c, a, d)

	want := []PositionShift{
		{LessonID: b, Position: 1},
		{LessonID: c, Position: 2},
		{LessonID: a, Position: 3},
	}
	if len(shifts) != len(want) {
		t.Fatalf("expected %d shifts, got %d", len(want), len(shifts))
	}
	for i := range want {
		if shifts[i] != want[i] {
			t.Fatalf("shift %d: expected %+v, got %+v", i, want[i], shifts[i])
		}
	}
}

func TestOrderIndex_InsertThenRemoveRestores(t *testing.T) {
	a, b, c, x := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	idx, _ := NewOrderIndex(lessonsAt(a, b, c))

	if _, err := idx.InsertAt(x, 2); err != nil {
		t.Fatalf("InsertAt() error = %v", err)
	}
	if _, _, err := idx.Remove(x); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	assertOrder(t, idx, a, b, c)
}

func TestOrderIndex_MoveUnknownLesson(t *testing.T) {
	a := uuid.New()
	x, _ := NewOrderIndex(lessonsAt(a))

	if _, err := x.Move(uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := x.Remove(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderIndex_DensityUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x, _ := NewOrderIndex(nil)

	present := make(map[uuid.UUID]struct{})
	for op := 0; op < 500; op++ {
		switch {
		case x.Len() == 0 || rng.Intn(3) == 0:
			id := uuid.New()
			if _, err := x.InsertAt(id, 1+rng.Intn(x.Len()+1)); err != nil {
				t.Fatalf("op %d: InsertAt() error = %v", op, err)
			}
			present[id] = struct{}{}
		case rng.Intn(2) == 0:
			ids := x.IDs()
			id := ids[rng.Intn(len(ids))]
			if _, err := x.Move(id, 1+rng.Intn(x.Len())); err != nil {
				t.Fatalf("op %d: Move() error = %v", op, err)
			}
		default:
			ids := x.IDs()
			id := ids[rng.Intn(len(ids))]
			if _, _, err := x.Remove(id); err != nil {
				t.Fatalf("op %d: Remove() error = %v", op, err)
			}
			delete(present, id)
		}

		ids := x.IDs()
		if len(ids) != len(present) {
			t.Fatalf("op %d: expected %d lessons, got %d", op, len(present), len(ids))
		}
		seen := make(map[uuid.UUID]struct{}, len(ids))
		for i, id := range ids {
			if id == uuid.Nil {
				t.Fatalf("op %d: hole at position %d", op, i+1)
			}
			if _, dup := seen[id]; dup {
				t.Fatalf("op %d: duplicate lesson %v", op, id)
			}
			if _, ok := present[id]; !ok {
				t.Fatalf("op %d: unexpected lesson %v", op, id)
			}
			seen[id] = struct{}{}
		}
	}
}
