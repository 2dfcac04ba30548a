package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidDuration   = errors.New("interval duration must be positive")
	ErrNotInitialized    = errors.New("task store not initialized")
	ErrConfigExists      = errors.New("config file already exists")
	ErrEmptyFile         = errors.New("file is empty")
	ErrNoTasksInFile     = errors.New("no tasks found in file")
)
