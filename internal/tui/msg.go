package tui

import (
	"github.com/pomoplan/pomoplan/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskCompleted is sent when a task is marked done.
type MsgTaskCompleted struct {
	TaskID int
}

func (MsgTaskCompleted) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgPomodoroRecorded is sent after a finished focus interval is saved.
type MsgPomodoroRecorded struct {
	Task *domain.Task
}

func (MsgPomodoroRecorded) sealed() {}

// MsgPlanReady is sent when plan extraction finishes.
type MsgPlanReady struct {
	TaskIDs []int
}

func (MsgPlanReady) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

// MsgTick drives the countdown once per second.
type MsgTick struct{}

func (MsgTick) sealed() {}
