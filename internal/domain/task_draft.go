package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
type TaskDraft struct {
	Title    string // Title (required)
	Notes    string // Body text after the frontmatter
	Expected int    // Expected pomodoro count (0 = no estimate)
}

// draftMeta is the YAML frontmatter of a task block.
type draftMeta struct {
	Title    string `yaml:"title"`
	Expected int    `yaml:"expected"`
}

// ParseTaskDrafts parses a markdown file containing one or more task
// definitions separated by YAML frontmatter blocks.
//
// Format:
//
//	---
//	title: Write report
//	expected: 3
//	---
//	Notes for the task.
//
//	---
//	title: Second task
//	---
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	var drafts []TaskDraft
	lines := strings.Split(content, "\n")

	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) != "---" {
			i++
			continue
		}

		// Collect frontmatter until the closing "---".
		j := i + 1
		var front []string
		for j < len(lines) && strings.TrimSpace(lines[j]) != "---" {
			front = append(front, lines[j])
			j++
		}
		if j >= len(lines) {
			return nil, fmt.Errorf("task %d: missing closing frontmatter delimiter", len(drafts)+1)
		}

		// Collect notes until the next block starts. A bare "---" inside
		// notes only opens a new block if a frontmatter key follows it.
		k := j + 1
		var notes []string
		for k < len(lines) {
			if strings.TrimSpace(lines[k]) == "---" && k+1 < len(lines) && isFrontmatterKey(lines[k+1]) {
				break
			}
			notes = append(notes, lines[k])
			k++
		}

		var meta draftMeta
		if err := yaml.Unmarshal([]byte(strings.Join(front, "\n")), &meta); err != nil {
			return nil, fmt.Errorf("task %d: parse frontmatter: %w", len(drafts)+1, err)
		}
		if strings.TrimSpace(meta.Title) == "" {
			return nil, fmt.Errorf("task %d: %w", len(drafts)+1, ErrEmptyTitle)
		}
		if meta.Expected < 0 {
			meta.Expected = 0
		}

		drafts = append(drafts, TaskDraft{
			Title:    strings.TrimSpace(meta.Title),
			Notes:    strings.TrimSpace(strings.Join(notes, "\n")),
			Expected: meta.Expected,
		})
		i = k
	}

	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}
	return drafts, nil
}

// isFrontmatterKey checks if a line looks like a frontmatter key.
func isFrontmatterKey(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "title:") || strings.HasPrefix(trimmed, "expected:")
}
