package output

import "agentic-workflow/internal/domain/entity"

// RunStore keeps the history of planning workflow runs.
type RunStore interface {
	CreateRun(run *entity.WorkflowRun) error
	FinishRun(id string, status entity.RunStatus, steps int) error
	AddStepResult(runID string, seq int, result entity.StepResult) error
	ListRuns(limit int) ([]entity.WorkflowRun, error)
	StepResults(runID string) ([]entity.StepResult, error)
	Close() error
}
