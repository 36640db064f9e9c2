package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestLessonVisibility(t *testing.T) {
	ownerID := uuid.New()
	owner := Requester{ID: ownerID, Role: RoleInstructor}
	enrolledStudent := Requester{ID: uuid.New(), Role: RoleStudent}
	stranger := Requester{ID: uuid.New(), Role: RoleStudent}
	anonymous := Requester{}

	cases := []struct {
		name      string
		requester Requester
		enrolled  bool
		want      Visibility
	}{
		{"owner", owner, false, VisibilityFull},
		{"enrolled student", enrolledStudent, true, VisibilityFull},
		{"stranger", stranger, false, VisibilityDenied},
		{"anonymous", anonymous, false, VisibilityDenied},
		// Enrollment reported for an anonymous requester must not grant access.
		{"anonymous with stale enrollment flag", anonymous, true, VisibilityDenied},
	}

	for _, tc := range cases {
		if got := LessonVisibility(tc.requester, ownerID, tc.enrolled); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStubVisibility(t *testing.T) {
	for _, r := range []Requester{{}, {ID: uuid.New(), Role: RoleStudent}, {ID: uuid.New(), Role: RoleInstructor}} {
		if got := StubVisibility(r); got != VisibilityStub {
			t.Fatalf("expected stub visibility for %+v, got %v", r, got)
		}
	}
}

func TestAuthorizeOwner(t *testing.T) {
	ownerID := uuid.New()

	if err := AuthorizeOwner(Requester{ID: ownerID}, ownerID); err != nil {
		t.Fatalf("AuthorizeOwner() error = %v", err)
	}
	if err := AuthorizeOwner(Requester{ID: uuid.New()}, ownerID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for stranger, got %v", err)
	}
	if err := AuthorizeOwner(Requester{}, ownerID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for anonymous, got %v", err)
	}
}

func TestAuthorizeInstructor(t *testing.T) {
	if err := AuthorizeInstructor(Requester{ID: uuid.New(), Role: RoleInstructor}); err != nil {
		t.Fatalf("AuthorizeInstructor() error = %v", err)
	}
	if err := AuthorizeInstructor(Requester{ID: uuid.New(), Role: RoleStudent}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for student, got %v", err)
	}
}
