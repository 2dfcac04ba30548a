package usecase

import (
	"context"
	"fmt"

	"github.com/pomoplan/pomoplan/internal/domain"
)

// PlanTasksInput contains the parameters for extracting a task plan.
// Fields are ordered to minimize memory padding.
type PlanTasksInput struct {
	Description      string // Free-form description of the work (required)
	PomodoroDuration int    // Focus interval length in minutes, for estimates
	Save             bool   // Persist the proposals as new tasks
}

// PlanTasksOutput contains the result of extracting a task plan.
type PlanTasksOutput struct {
	Proposals []domain.ProposedTask // Suggestions from the extractor (never nil)
	TaskIDs   []int                 // IDs of created tasks when Save was set
}

// PlanTasks is the use case for turning a free-text description into
// tasks. Extraction failures surface as an empty proposal list, never as
// an error; only persistence problems fail the call.
type PlanTasks struct {
	tasks     domain.TaskRepository
	extractor domain.PlanExtractor
	clock     domain.Clock
	logger    domain.Logger
}

// NewPlanTasks creates a new PlanTasks use case.
func NewPlanTasks(tasks domain.TaskRepository, extractor domain.PlanExtractor, clock domain.Clock, logger domain.Logger) *PlanTasks {
	return &PlanTasks{
		tasks:     tasks,
		extractor: extractor,
		clock:     clock,
		logger:    logger,
	}
}

// Execute extracts a plan and optionally persists the proposals.
func (uc *PlanTasks) Execute(ctx context.Context, in PlanTasksInput) (*PlanTasksOutput, error) {
	if in.Description == "" {
		return nil, domain.ErrEmptyDescription
	}
	if in.PomodoroDuration <= 0 {
		in.PomodoroDuration = domain.DefaultPomodoroMinutes
	}

	plan := uc.extractor.Extract(ctx, in.Description, uc.clock.Now())
	out := &PlanTasksOutput{Proposals: plan.Tasks}

	if !in.Save {
		return out, nil
	}

	now := uc.clock.Now()
	for _, p := range plan.Tasks {
		id, err := uc.tasks.NextID()
		if err != nil {
			return nil, fmt.Errorf("generate task ID: %w", err)
		}
		task := &domain.Task{
			ID:                id,
			Title:             p.Title,
			Notes:             p.Notes,
			Status:            domain.StatusTodo,
			Created:           now,
			ExpectedPomodoros: p.ExpectedPomodoros(in.PomodoroDuration),
		}
		if err := uc.tasks.Save(task); err != nil {
			return nil, fmt.Errorf("save task: %w", err)
		}
		if uc.logger != nil {
			uc.logger.Info(id, "planner", fmt.Sprintf("created from plan: %q", p.Title))
		}
		out.TaskIDs = append(out.TaskIDs, id)
	}

	return out, nil
}
