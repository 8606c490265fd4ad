package input

import (
	"context"

	"agentic-workflow/internal/domain/entity"
)

type RunResult struct {
	RunID   string
	Results []entity.StepResult
}

// WorkflowRunner drives the planning pipeline: extract steps, dispatch each
// step to an evaluation-wrapped agent, collect and persist the outputs.
type WorkflowRunner interface {
	Run(ctx context.Context, prompt string) (*RunResult, error)
}
