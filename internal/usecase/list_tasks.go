package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	IncludeDone bool // Include tasks already marked done
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Tasks matching the filter, ordered by ID
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	var filter domain.TaskFilter
	if !in.IncludeDone {
		todo := domain.StatusTodo
		filter.Status = &todo
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
