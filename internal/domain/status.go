package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo Status = "todo" // Created, work remaining
	StatusDone Status = "done" // Marked complete by the user
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusDone}
}

// transitions defines the allowed status transitions.
// Completing is explicit user action; reopening a done task is allowed.
var transitions = map[Status][]Status{
	StatusTodo: {StatusDone},
	StatusDone: {StatusTodo},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}
