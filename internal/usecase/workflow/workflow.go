package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agentic-workflow/internal/application/port/input"
	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
	"agentic-workflow/internal/infrastructure/storage"
	"agentic-workflow/internal/usecase/router"

	"github.com/google/uuid"
)

// maxStepAttempts caps the per-step re-evaluation loop. The trigger words
// can legitimately appear in generated text forever, so the loop needs a
// hard ceiling to stay live.
const maxStepAttempts = 3

var _ input.WorkflowRunner = (*UseCase)(nil)

type StepPlanner interface {
	ExtractSteps(ctx context.Context, prompt string) ([]string, error)
}

type StepEvaluator interface {
	Evaluate(ctx context.Context, task string) (*entity.EvaluationResult, error)
}

// UseCase drives the planning pipeline: extract steps, classify each step to
// a workflow agent, run the evaluation loop, persist the ordered outputs.
type UseCase struct {
	planner      StepPlanner
	evaluators   map[entity.AgentType]StepEvaluator
	store        output.RunStore
	progress     output.ProgressPort
	logger       output.LoggerPort
	artifactPath string
}

func New(
	planner StepPlanner,
	evaluators map[entity.AgentType]StepEvaluator,
	store output.RunStore,
	progress output.ProgressPort,
	logger output.LoggerPort,
	artifactPath string,
) *UseCase {
	return &UseCase{
		planner:      planner,
		evaluators:   evaluators,
		store:        store,
		progress:     progress,
		logger:       logger,
		artifactPath: artifactPath,
	}
}

func (uc *UseCase) Run(ctx context.Context, prompt string) (*input.RunResult, error) {
	runID := uuid.NewString()
	uc.logger.Info("Workflow started", "runID", runID, "prompt", prompt)

	if err := uc.store.CreateRun(&entity.WorkflowRun{
		ID:        runID,
		Prompt:    prompt,
		Status:    entity.RunStatusRunning,
		CreatedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	steps, err := uc.planner.ExtractSteps(ctx, prompt)
	if err != nil {
		uc.failRun(runID)
		return nil, fmt.Errorf("extract steps: %w", err)
	}

	uc.progress.ShowPlan(ctx, steps)
	uc.logger.Info("Plan extracted", "steps", len(steps))

	results := make([]entity.StepResult, 0, len(steps))
	for i, step := range steps {
		agentType := router.Classify(step)
		uc.progress.ShowStep(ctx, i+1, len(steps), step, agentType)

		evaluator, ok := uc.evaluators[agentType]
		if !ok {
			uc.failRun(runID)
			return nil, fmt.Errorf("no evaluator for agent type %q", agentType)
		}

		final, err := uc.evaluateStep(ctx, step, evaluator)
		if err != nil {
			uc.failRun(runID)
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		result := entity.StepResult{
			Agent:  agentType.DisplayName(),
			Output: final,
		}
		results = append(results, result)

		if err := uc.store.AddStepResult(runID, i+1, result); err != nil {
			uc.failRun(runID)
			return nil, fmt.Errorf("persist step %d: %w", i+1, err)
		}
	}

	if uc.artifactPath != "" {
		if err := storage.WriteArtifact(uc.artifactPath, results); err != nil {
			uc.failRun(runID)
			return nil, fmt.Errorf("write artifact: %w", err)
		}
	}

	if err := uc.store.FinishRun(runID, entity.RunStatusCompleted, len(results)); err != nil {
		return nil, fmt.Errorf("finish run: %w", err)
	}

	uc.progress.ShowSummary(ctx, results, uc.artifactPath)
	uc.logger.Info("Workflow completed", "runID", runID, "steps", len(results))

	return &input.RunResult{RunID: runID, Results: results}, nil
}

// evaluateStep layers an outer re-run on top of the evaluator's own loop:
// as long as the returned final text still mentions rejection or
// corrections, the whole evaluation starts over from scratch, up to
// maxStepAttempts.
func (uc *UseCase) evaluateStep(ctx context.Context, step string, evaluator StepEvaluator) (string, error) {
	var result *entity.EvaluationResult

	for attempt := 1; attempt <= maxStepAttempts; attempt++ {
		r, err := evaluator.Evaluate(ctx, step)
		if err != nil {
			return "", err
		}
		result = r
		uc.progress.ShowEvaluation(ctx, result)

		if !mentionsRejection(result.FinalResponse) {
			return result.FinalResponse, nil
		}

		uc.logger.Warn("Final text still mentions rejection, re-running evaluation",
			"attempt", attempt,
			"iterations", result.Iterations,
		)
	}

	return result.FinalResponse, nil
}

func (uc *UseCase) failRun(runID string) {
	if err := uc.store.FinishRun(runID, entity.RunStatusFailed, 0); err != nil {
		uc.logger.Error("Failed to mark run as failed", "runID", runID, "error", err)
	}
}

func mentionsRejection(text string) bool {
	textLower := strings.ToLower(text)
	return strings.Contains(textLower, "reject") || strings.Contains(textLower, "correction")
}
