package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Visibility is the verdict for a (requester, lesson) content read.
type Visibility int

const (
	// VisibilityDenied withholds the lesson entirely.
	VisibilityDenied Visibility = iota
	// VisibilityStub exposes table-of-contents metadata only: title and position.
	VisibilityStub
	// VisibilityFull exposes body and video content.
	VisibilityFull
)

// LessonVisibility decides the detail-read verdict for a lesson of a course
// owned by ownerID. The verdict is evaluated per request; enrollment state is
// never cached across calls. Anonymous requesters are always denied.
func LessonVisibility(requester Requester, ownerID uuid.UUID, enrolled bool) Visibility {
	if requester.IsAnonymous() {
		return VisibilityDenied
	}
	if requester.ID == ownerID {
		return VisibilityFull
	}
	if enrolled {
		return VisibilityFull
	}
	return VisibilityDenied
}

// StubVisibility is the verdict for a table-of-contents listing: always stub,
// regardless of identity.
func StubVisibility(Requester) Visibility {
	return VisibilityStub
}

// AuthorizeOwner verifies that the requester owns the resource held by
// ownerID, independent of any role representation.
func AuthorizeOwner(requester Requester, ownerID uuid.UUID) error {
	if requester.IsAnonymous() || requester.ID != ownerID {
		return fmt.Errorf("%w: requester does not own this resource", ErrNotAuthorized)
	}
	return nil
}

// AuthorizeInstructor verifies that the requester holds the instructor role.
func AuthorizeInstructor(requester Requester) error {
	if requester.Role != RoleInstructor {
		return fmt.Errorf("%w: instructor role required", ErrNotAuthorized)
	}
	return nil
}
