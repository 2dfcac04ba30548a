package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/testutil"
)

func TestNewTask_Execute_Success(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)}
	logger := &testutil.MockLogger{}

	uc := NewNewTask(repo, clock, logger)
	out, err := uc.Execute(context.Background(), NewTaskInput{
		Title:    "Write report",
		Notes:    "quarterly numbers",
		Expected: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 1, out.TaskID)

	saved := repo.Tasks[1]
	require.NotNil(t, saved)
	assert.Equal(t, "Write report", saved.Title)
	assert.Equal(t, "quarterly numbers", saved.Notes)
	assert.Equal(t, domain.StatusTodo, saved.Status)
	assert.Equal(t, 3, saved.ExpectedPomodoros)
	assert.Equal(t, clock.NowTime, saved.Created)
	assert.True(t, logger.HasEntry("info", "created"))
}

func TestNewTask_Execute_EmptyTitle(t *testing.T) {
	uc := NewNewTask(testutil.NewMockTaskRepository(), &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: ""})

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestNewTask_Execute_NegativeExpectedIsClamped(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewNewTask(repo, &testutil.MockClock{}, nil)

	out, err := uc.Execute(context.Background(), NewTaskInput{Title: "a", Expected: -2})

	require.NoError(t, err)
	assert.Equal(t, 0, repo.Tasks[out.TaskID].ExpectedPomodoros)
}

func TestNewTask_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.SaveErr = errors.New("disk full")
	uc := NewNewTask(repo, &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), NewTaskInput{Title: "a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save task")
}
