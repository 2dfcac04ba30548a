package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDrafts(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		content string
		want    []TaskDraft
	}{
		{
			name: "single task",
			content: `---
title: First Task
---
Task notes here.`,
			want: []TaskDraft{
				{
					Title: "First Task",
					Notes: "Task notes here.",
				},
			},
		},
		{
			name: "task with estimate",
			content: `---
title: Write report
expected: 3
---
Quarterly numbers.`,
			want: []TaskDraft{
				{
					Title:    "Write report",
					Notes:    "Quarterly numbers.",
					Expected: 3,
				},
			},
		},
		{
			name: "multiple tasks",
			content: `---
title: First
---
First body.

---
title: Second
expected: 2
---`,
			want: []TaskDraft{
				{Title: "First", Notes: "First body."},
				{Title: "Second", Expected: 2},
			},
		},
		{
			name: "horizontal rule inside notes",
			content: `---
title: Only task
---
Before the rule.

---

After the rule.`,
			want: []TaskDraft{
				{Title: "Only task", Notes: "Before the rule.\n\n---\n\nAfter the rule."},
			},
		},
		{
			name: "negative estimate clamps to zero",
			content: `---
title: Odd estimate
expected: -4
---`,
			want: []TaskDraft{
				{Title: "Odd estimate"},
			},
		},
		{
			name:    "empty content",
			content: "   \n",
			wantErr: ErrEmptyFile,
		},
		{
			name:    "no tasks",
			content: "just some text without frontmatter",
			wantErr: ErrNoTasksInFile,
		},
		{
			name: "missing title",
			content: `---
expected: 1
---`,
			wantErr: ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskDrafts(tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTaskDrafts_MissingClosingDelimiter(t *testing.T) {
	_, err := ParseTaskDrafts("---\ntitle: Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing closing frontmatter delimiter")
}
