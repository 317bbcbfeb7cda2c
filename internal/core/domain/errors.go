package domain

import "errors"

const (
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
	// MaxTextBytes is the capacity of a MySQL TEXT column.
	MaxTextBytes = 65535
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidTitle        = errors.New("task title is required")
	ErrEmptyComment        = errors.New("comment text is required")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password exceeds 72 bytes")
	ErrCommentTooLong      = errors.New("comment text exceeds 65535 bytes")
	ErrDescriptionTooLong  = errors.New("task description exceeds 65535 bytes")
	ErrEmailTaken          = errors.New("email already exists")
	ErrTaskUpdateForbidden = errors.New("no permission to update this task")
	ErrTaskDeleteForbidden = errors.New("no permission to delete this task")
	ErrTaskVersionConflict = errors.New("task was modified concurrently")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
)
