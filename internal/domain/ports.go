package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter, ordered by ID.
	List(filter TaskFilter) ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id int) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Status *Status // nil = all tasks
}

// PlanExtractor turns a free-text description into proposed tasks.
// Implementations never return an error: every failure mode degrades
// to an empty result so the caller can always render "no suggestions".
type PlanExtractor interface {
	Extract(ctx context.Context, description string, ref time.Time) PlanResult
}

// ChimePlayer plays the interval-completion chime. Playback is
// best-effort; callers ignore the returned error.
type ChimePlayer interface {
	Play() error
}

// Logger writes categorized log messages, optionally scoped to a task.
// taskID 0 means the message is global.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + local).
	Load() (*Config, error)
}

// ConfigInitializer writes the default configuration template.
type ConfigInitializer interface {
	// InitGlobalConfig creates the global config file from the template.
	// Returns the file's path, or ErrConfigExists if it is already there.
	InitGlobalConfig() (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
