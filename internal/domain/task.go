// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of planned work tracked by pomoplan.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created            time.Time `json:"created"`                     // Creation time
	Title              string    `json:"title"`                       // Title (required)
	Notes              string    `json:"notes,omitempty"`             // Free-form notes (optional)
	Status             Status    `json:"status"`                      // Current status
	CompletedPomodoros int       `json:"completedPomodoros"`          // Focus intervals finished for this task
	ExpectedPomodoros  int       `json:"expectedPomodoros,omitempty"` // Planner's estimate (0 = no estimate)
	ID                 int       `json:"-"`                           // Task ID (stored as map key, not in value)
}

// IsDone returns true if the task has been marked complete.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// RemainingPomodoros returns the estimated focus intervals left,
// never negative. Returns 0 when no estimate is set.
func (t *Task) RemainingPomodoros() int {
	if t.ExpectedPomodoros == 0 {
		return 0
	}
	remaining := t.ExpectedPomodoros - t.CompletedPomodoros
	if remaining < 0 {
		return 0
	}
	return remaining
}
