package services

import "errors"

// Sentinel errors returned by the services. Controllers translate them
// to HTTP status codes; anything not listed here is treated as an
// unexpected store failure (500).
var (
	ErrValidation      = errors.New("invalid input")
	ErrUserNotFound    = errors.New("user not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid credentials")
	ErrAlreadyEnrolled = errors.New("already enrolled in course")
	ErrNotEnrolled     = errors.New("not enrolled in course")
	ErrNotEligible     = errors.New("course not completed")
	ErrForbidden       = errors.New("not the course owner")
)
