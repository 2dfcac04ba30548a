package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // The ID of the task to delete
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task from the store.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if err := uc.tasks.Delete(in.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("deleted: %q", task.Title))
	}

	return nil
}
