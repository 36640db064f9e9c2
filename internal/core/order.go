package core

import (
	"fmt"

	"github.com/google/uuid"
)

// PositionShift records the new position a sibling lesson must take as part
// of an insert, move or remove.
type PositionShift struct {
	LessonID uuid.UUID
	Position int
}

// OrderIndex is the ordered mapping from position to lesson identifier for a
// single course. Every operation preserves density: the positions of the
// tracked lessons always form the exact run 1..N.
//
// The shift slices returned by InsertAt, Move and Remove are sequenced so a
// repository can apply them one row at a time under a unique
// (course, position) constraint without transient collisions: insert shifts
// run from the highest position down, removal shifts from the lowest up, and
// a move lists the vacated interval before the moved lesson itself (whose row
// the repository parks at position 0 for the duration of the interval shift).
type OrderIndex struct {
	ids []uuid.UUID // ids[i] is the lesson occupying position i+1
}

// NewOrderIndex builds an index from a course's persisted lessons, validating
// the density invariant. A gap or duplicate yields ErrOrderCorrupt.
func NewOrderIndex(lessons []Lesson) (*OrderIndex, error) {
	ids := make([]uuid.UUID, len(lessons))
	for _, lesson := range lessons {
		if lesson.Position < 1 || lesson.Position > len(lessons) {
			return nil, fmt.Errorf("%w: position %d outside 1..%d", ErrOrderCorrupt, lesson.Position, len(lessons))
		}
		if ids[lesson.Position-1] != uuid.Nil {
			return nil, fmt.Errorf("%w: duplicate position %d", ErrOrderCorrupt, lesson.Position)
		}
		ids[lesson.Position-1] = lesson.ID
	}
	return &OrderIndex{ids: ids}, nil
}

// Len returns the number of tracked lessons.
func (x *OrderIndex) Len() int {
	return len(x.ids)
}

// PositionOf returns the 1-based position of the given lesson.
func (x *OrderIndex) PositionOf(id uuid.UUID) (int, bool) {
	for i, other := range x.ids {
		if other == id {
			return i + 1, true
		}
	}
	return 0, false
}

// IDs returns the lesson identifiers in position order.
func (x *OrderIndex) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(x.ids))
	copy(out, x.ids)
	return out
}

// InsertAt places id at the target position and returns the shifts for the
// existing lessons at that position and after, each moved down by one. The
// target must lie in [1, N+1]; anything else is rejected rather than clamped.
func (x *OrderIndex) InsertAt(id uuid.UUID, position int) ([]PositionShift, error) {
	if position < 1 || position > len(x.ids)+1 {
		return nil, fmt.Errorf("%w: position %d outside 1..%d", ErrValidation, position, len(x.ids)+1)
	}
	if _, exists := x.PositionOf(id); exists {
		return nil, fmt.Errorf("%w: lesson already ordered", ErrOrderCorrupt)
	}

	var shifts []PositionShift
	for i := len(x.ids) - 1; i >= position-1; i-- {
		shifts = append(shifts, PositionShift{LessonID: x.ids[i], Position: i + 2})
	}

	x.ids = append(x.ids, uuid.Nil)
	copy(x.ids[position:], x.ids[position-1:])
	x.ids[position-1] = id
	return shifts, nil
}

// Move relocates a tracked lesson to newPosition. Exactly the lessons
// strictly between the old and new slots (inclusive of the new, exclusive of
// the old) shift by one; the moved lesson appears as the final shift. Moving
// a lesson onto its current position is a no-op and returns nil.
func (x *OrderIndex) Move(id uuid.UUID, newPosition int) ([]PositionShift, error) {
	old, ok := x.PositionOf(id)
	if !ok {
		return nil, fmt.Errorf("%w: lesson not ordered", ErrNotFound)
	}
	if newPosition < 1 || newPosition > len(x.ids) {
		return nil, fmt.Errorf("%w: position %d outside 1..%d", ErrValidation, newPosition, len(x.ids))
	}
	if newPosition == old {
		return nil, nil
	}

	var shifts []PositionShift
	if newPosition < old {
		// Moving up: siblings in [newPosition, old) step down one,
		// applied from the vacated slot backwards.
		for i := old - 2; i >= newPosition-1; i-- {
			shifts = append(shifts, PositionShift{LessonID: x.ids[i], Position: i + 2})
		}
	} else {
		// Moving down: siblings in (old, newPosition] step up one,
		// applied from the vacated slot forwards.
		for i := old; i <= newPosition-1; i++ {
			shifts = append(shifts, PositionShift{LessonID: x.ids[i], Position: i})
		}
	}
	shifts = append(shifts, PositionShift{LessonID: id, Position: newPosition})

	copy(x.ids[old-1:], x.ids[old:])
	x.ids = x.ids[:len(x.ids)-1]
	x.ids = append(x.ids, uuid.Nil)
	copy(x.ids[newPosition:], x.ids[newPosition-1:])
	x.ids[newPosition-1] = id
	return shifts, nil
}

// Remove drops a tracked lesson and returns its former position together with
// the compaction shifts for every lesson that followed it.
func (x *OrderIndex) Remove(id uuid.UUID) (int, []PositionShift, error) {
	position, ok := x.PositionOf(id)
	if !ok {
		return 0, nil, fmt.Errorf("%w: lesson not ordered", ErrNotFound)
	}

	var shifts []PositionShift
	for i := position; i < len(x.ids); i++ {
		shifts = append(shifts, PositionShift{LessonID: x.ids[i], Position: i})
	}

	copy(x.ids[position-1:], x.ids[position:])
	x.ids = x.ids[:len(x.ids)-1]
	return position, shifts, nil
}
