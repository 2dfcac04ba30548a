package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int // The ID of the task to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task *domain.Task // The completed task
}

// CompleteTask is the use case for marking a task done. Completion is an
// explicit user action; finishing pomodoros never completes a task on its
// own.
type CompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute marks the task as done.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if !task.Status.CanTransitionTo(domain.StatusDone) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, task.Status, domain.StatusDone)
	}

	task.Status = domain.StatusDone
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("completed: %q", task.Title))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
