package domain

// ProposedTask is an unpersisted task suggestion returned by the plan
// extraction client. The caller assigns an ID when merging it into the
// task list.
type ProposedTask struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"` // Estimated minutes of work
	Notes    string `json:"notes,omitempty"`
}

// PlanResult is the outcome of a plan extraction call. Tasks is never nil;
// every failure mode collapses to an empty slice.
type PlanResult struct {
	Tasks []ProposedTask `json:"tasks"`
}

// EmptyPlan returns a PlanResult with no suggestions.
func EmptyPlan() PlanResult {
	return PlanResult{Tasks: []ProposedTask{}}
}

// ExpectedPomodoros converts the proposal's duration estimate into a
// pomodoro count, rounding up. Returns 0 when no duration was suggested.
func (p ProposedTask) ExpectedPomodoros(pomodoroMinutes int) int {
	if p.Duration <= 0 || pomodoroMinutes <= 0 {
		return 0
	}
	return (p.Duration + pomodoroMinutes - 1) / pomodoroMinutes
}
