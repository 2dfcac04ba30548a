package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoplan/pomoplan/internal/app"
	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockTaskRepository) *app.Container {
	return app.NewWithDeps(
		app.Config{},
		repo,
		nil,
		&testutil.MockClock{NowTime: time.Now()},
		&testutil.MockPlanExtractor{},
		&testutil.MockChime{},
		&testutil.MockConfigLoader{},
		&testutil.MockLogger{},
	)
}

func TestNewNewCommand_CreateTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newNewCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--title", "Test task", "--expected", "2"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Created task #1")

	task := repo.Tasks[1]
	require.NotNil(t, task)
	assert.Equal(t, "Test task", task.Title)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Equal(t, 2, task.ExpectedPomodoros)
}

func TestNewNewCommand_MissingTitle(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newNewCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestNewListCommand_Output(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "open task", Status: domain.StatusTodo, CompletedPomodoros: 1, ExpectedPomodoros: 3}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "finished task", Status: domain.StatusDone}
	container := newTestContainer(repo)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "open task")
	assert.Contains(t, buf.String(), "1/3")
	assert.NotContains(t, buf.String(), "finished task")
}

func TestNewListCommand_All(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "open task", Status: domain.StatusTodo}
	repo.Tasks[2] = &domain.Task{ID: 2, Title: "finished task", Status: domain.StatusDone}
	container := newTestContainer(repo)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--all"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "finished task")
}

func TestNewDoneCommand(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "open task", Status: domain.StatusTodo}
	container := newTestContainer(repo)

	cmd := newDoneCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Completed task #1")
	assert.Equal(t, domain.StatusDone, repo.Tasks[1].Status)
}

func TestNewRmCommand(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.Tasks[1] = &domain.Task{ID: 1, Title: "doomed", Status: domain.StatusTodo}
	container := newTestContainer(repo)

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"#1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task #1")
	assert.Empty(t, repo.Tasks)
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"#3", 3, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTaskID(tt.arg)
		if tt.wantErr {
			assert.Error(t, err, "arg %q", tt.arg)
			continue
		}
		assert.NoError(t, err, "arg %q", tt.arg)
		assert.Equal(t, tt.want, got, "arg %q", tt.arg)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short", "buy milk", "buy milk"},
		{"multiline", "first line\nsecond line", "first line ..."},
		{"long ascii", strings.Repeat("a", 70), strings.Repeat("a", 57) + "..."},
		{"long multibyte", strings.Repeat("á", 70), strings.Repeat("á", 57) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstLine(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
