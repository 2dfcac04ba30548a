// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title    string // Task title (required)
	Notes    string // Free-form notes (optional)
	Expected int    // Expected pomodoro count (0 = no estimate)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	TaskID int // The ID of the created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *NewTask {
	return &NewTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Expected < 0 {
		in.Expected = 0
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := &domain.Task{
		ID:                id,
		Title:             in.Title,
		Notes:             in.Notes,
		Status:            domain.StatusTodo,
		Created:           uc.clock.Now(),
		ExpectedPomodoros: in.Expected,
	}

	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", in.Title))
	}

	return &NewTaskOutput{TaskID: id}, nil
}
