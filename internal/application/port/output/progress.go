package output

import (
	"context"

	"agentic-workflow/internal/domain/entity"
)

// ProgressPort is the human-readable console surface. It is not a
// machine-parseable contract.
type ProgressPort interface {
	ShowPlan(ctx context.Context, steps []string)
	ShowStep(ctx context.Context, seq, total int, step string, agentType entity.AgentType)
	ShowEvaluation(ctx context.Context, result *entity.EvaluationResult)
	ShowSummary(ctx context.Context, results []entity.StepResult, artifactPath string)
}
