package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/testutil"
)

func TestRecordPomodoro_Execute_IncrementsCount(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "deep work", Status: domain.StatusTodo, CompletedPomodoros: 2}
	logger := &testutil.MockLogger{}

	uc := NewRecordPomodoro(repo, logger)
	out, err := uc.Execute(context.Background(), RecordPomodoroInput{TaskID: 1})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Task.CompletedPomodoros)
	assert.Equal(t, 3, repo.Tasks[1].CompletedPomodoros)
	assert.True(t, logger.HasEntry("info", "pomodoro 3 complete"))
}

func TestRecordPomodoro_Execute_NotFound(t *testing.T) {
	uc := NewRecordPomodoro(testutil.NewMockTaskRepository(), nil)

	_, err := uc.Execute(context.Background(), RecordPomodoroInput{TaskID: 9})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRecordPomodoro_Execute_DoesNotChangeStatus(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "deep work", Status: domain.StatusTodo}

	uc := NewRecordPomodoro(repo, nil)
	out, err := uc.Execute(context.Background(), RecordPomodoroInput{TaskID: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, out.Task.Status)
}
