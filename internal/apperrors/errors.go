package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Authentication and authorization errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("login required")
	ErrAccessDenied       = errors.New("admin privileges required")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Validation errors
	ErrInvalidType   = errors.New("type must be one of internship, job or hackathon")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidAction = errors.New("invalid action")

	// User errors
	ErrUsernameTaken = errors.New("username already exists")
)

// Application workflow errors
var (
	ErrInvalidFileType   = errors.New("file type not allowed")
	ErrInvalidUpload     = errors.New("invalid upload")
	ErrUploadTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrCorruptArtifact   = errors.New("stored file failed integrity check")
	ErrInvalidTransition = errors.New("application is no longer pending")
)
