package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/testutil"
)

const importContent = `---
title: Write report
expected: 3
---
Quarterly numbers.

---
title: Review PRs
---
`

func TestImportTasks_Execute_CreatesTasks(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{}, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importContent})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)

	first := repo.Tasks[1]
	require.NotNil(t, first)
	assert.Equal(t, "Write report", first.Title)
	assert.Equal(t, "Quarterly numbers.", first.Notes)
	assert.Equal(t, 3, first.ExpectedPomodoros)

	second := repo.Tasks[2]
	require.NotNil(t, second)
	assert.Equal(t, "Review PRs", second.Title)
	assert.Equal(t, 0, second.ExpectedPomodoros)
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{}, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importContent, DryRun: true})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Empty(t, repo.Tasks)
	assert.Equal(t, 1, out.Tasks[0].ID)
	assert.Equal(t, 2, out.Tasks[1].ID)
}

func TestImportTasks_Execute_EmptyFile(t *testing.T) {
	uc := NewImportTasks(testutil.NewMockTaskRepository(), &testutil.MockClock{}, nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "   \n"})

	require.ErrorIs(t, err, domain.ErrEmptyFile)
}
