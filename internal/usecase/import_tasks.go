package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// ImportTasksInput contains the parameters for creating tasks from a file.
type ImportTasksInput struct {
	Content string // File content (Markdown with frontmatter)
	DryRun  bool   // If true, parse and validate without creating tasks
}

// ImportedTask represents a task that was created from file input.
// Fields are ordered to minimize memory padding.
type ImportedTask struct {
	Title    string
	Notes    string
	ID       int
	Expected int
}

// ImportTasksOutput contains the result of creating tasks from a file.
type ImportTasksOutput struct {
	Tasks []ImportedTask // Created tasks (or tasks that would be created in dry-run mode)
}

// ImportTasks is the use case for creating tasks from a file.
type ImportTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates tasks from the given file content.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	result := &ImportTasksOutput{
		Tasks: make([]ImportedTask, 0, len(drafts)),
	}

	if in.DryRun {
		for i, draft := range drafts {
			result.Tasks = append(result.Tasks, ImportedTask{
				ID:       i + 1, // Use 1-based index as pseudo-ID in dry-run
				Title:    draft.Title,
				Notes:    draft.Notes,
				Expected: draft.Expected,
			})
		}
		return result, nil
	}

	now := uc.clock.Now()
	for i, draft := range drafts {
		id, err := uc.tasks.NextID()
		if err != nil {
			return nil, fmt.Errorf("task %d: generate task ID: %w", i+1, err)
		}

		task := &domain.Task{
			ID:                id,
			Title:             draft.Title,
			Notes:             draft.Notes,
			Status:            domain.StatusTodo,
			Created:           now,
			ExpectedPomodoros: draft.Expected,
		}
		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("task %d: save task: %w", i+1, err)
		}

		if uc.logger != nil {
			uc.logger.Info(id, "task", fmt.Sprintf("created from file: %q", draft.Title))
		}

		result.Tasks = append(result.Tasks, ImportedTask{
			ID:       id,
			Title:    draft.Title,
			Notes:    draft.Notes,
			Expected: draft.Expected,
		})
	}

	return result, nil
}
