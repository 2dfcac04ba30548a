package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// RecordPomodoroInput contains the parameters for recording a finished
// focus interval.
type RecordPomodoroInput struct {
	TaskID int // The task the interval was spent on
}

// RecordPomodoroOutput contains the result of recording a pomodoro.
type RecordPomodoroOutput struct {
	Task *domain.Task // The updated task
}

// RecordPomodoro is the use case behind the timer's pomodoro-complete
// hook. It increments the task's completed count; the persisted count is
// a progress mirror and is never read back into the running timer.
type RecordPomodoro struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewRecordPomodoro creates a new RecordPomodoro use case.
func NewRecordPomodoro(tasks domain.TaskRepository, logger domain.Logger) *RecordPomodoro {
	return &RecordPomodoro{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute increments the task's completed pomodoro count.
func (uc *RecordPomodoro) Execute(_ context.Context, in RecordPomodoroInput) (*RecordPomodoroOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	task.CompletedPomodoros++
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "timer", fmt.Sprintf("pomodoro %d complete", task.CompletedPomodoros))
	}

	return &RecordPomodoroOutput{Task: task}, nil
}
