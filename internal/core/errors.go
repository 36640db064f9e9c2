package core

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized indicates the requester lacks ownership or enrollment for the action.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrValidation represents user input validation failures.
	ErrValidation = errors.New("validation error")
	// ErrInvalidPageToken indicates pagination tokens are malformed.
	ErrInvalidPageToken = errors.New("invalid page token")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSelfEnrollment indicates an instructor attempted to enroll in their own course.
	ErrSelfEnrollment = errors.New("instructor cannot enroll in their own course")
	// ErrAlreadyEnrolled indicates the requester already holds an enrollment for the course.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	// ErrNotEnrolled indicates no enrollment exists for the (requester, course) pair.
	ErrNotEnrolled = errors.New("not enrolled in this course")
	// ErrAlreadyFavorited indicates the course is already in the requester's favorites.
	ErrAlreadyFavorited = errors.New("course already in favorites")
	// ErrNotFavorited indicates the course is not in the requester's favorites.
	ErrNotFavorited = errors.New("course not in favorites")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrOwnsCourses indicates a user cannot be deleted while they still own courses.
	ErrOwnsCourses = errors.New("user still owns courses")
	// ErrOrderCorrupt indicates a course's lesson positions are no longer a dense 1..N run.
	// Internal invariant failure; the surrounding transaction must abort.
	ErrOrderCorrupt = errors.New("lesson order corrupt")
)
