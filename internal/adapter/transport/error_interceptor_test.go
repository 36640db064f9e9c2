package transport

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/kursuslab/kursus/internal/core"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", core.ErrNotFound, connect.CodeNotFound},
		{"not enrolled", core.ErrNotEnrolled, connect.CodeNotFound},
		{"not authorized", fmt.Errorf("%w: owners only", core.ErrNotAuthorized), connect.CodePermissionDenied},
		{"validation", fmt.Errorf("%w: title required", core.ErrValidation), connect.CodeInvalidArgument},
		{"page token", core.ErrInvalidPageToken, connect.CodeInvalidArgument},
		{"credentials", core.ErrInvalidCredentials, connect.CodeUnauthenticated},
		{"already enrolled", core.ErrAlreadyEnrolled, connect.CodeAlreadyExists},
		{"email taken", core.ErrEmailTaken, connect.CodeAlreadyExists},
		{"self enrollment", core.ErrSelfEnrollment, connect.CodeFailedPrecondition},
		{"owns courses", core.ErrOwnsCourses, connect.CodeFailedPrecondition},
		{"order corrupt", core.ErrOrderCorrupt, connect.CodeInternal},
		{"unknown", errors.New("boom"), connect.CodeInternal},
	}

	for _, tc := range cases {
		got := mapError(tc.err)
		if connect.CodeOf(got) != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, connect.CodeOf(got))
		}
	}
}

func TestMapErrorKeepsConnectErrors(t *testing.T) {
	original := connect.NewError(connect.CodeUnauthenticated, errors.New("expired"))
	if got := mapError(original); got != original {
		t.Fatalf("expected connect errors to pass through, got %v", got)
	}
}
