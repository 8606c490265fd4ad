package evaluator

import (
	"context"
	"fmt"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

const DefaultMaxInteractions = 3

// phase names the states of the grade/correct loop. The loop moves
// Generating -> Evaluating -> {Accepted, Correcting}, and Correcting feeds
// back into Generating until acceptance or the iteration budget runs out.
type phase string

const (
	phaseGenerating phase = "generating"
	phaseEvaluating phase = "evaluating"
	phaseCorrecting phase = "correcting"
	phaseAccepted   phase = "accepted"
)

// EvaluationAgent wraps one prompt agent and grades its output with a second
// model call, requesting corrections and retrying on rejection.
type EvaluationAgent struct {
	llm             output.LLMPort
	agent           output.PromptAgent
	persona         string
	criteria        string
	maxInteractions int
	logger          output.LoggerPort
}

type Config struct {
	Persona         string
	Criteria        string
	MaxInteractions int
}

func New(llm output.LLMPort, agent output.PromptAgent, cfg Config, logger output.LoggerPort) *EvaluationAgent {
	maxInteractions := cfg.MaxInteractions
	if maxInteractions <= 0 {
		maxInteractions = DefaultMaxInteractions
	}

	return &EvaluationAgent{
		llm:             llm,
		agent:           agent,
		persona:         cfg.Persona,
		criteria:        cfg.Criteria,
		maxInteractions: maxInteractions,
		logger:          logger,
	}
}

// Evaluate runs one self-contained grade/correct loop for the task.
//
// When the budget is exhausted without acceptance the last output and
// verdict are returned with Iterations equal to the budget and no error;
// callers inspect the verdict to detect non-acceptance.
func (e *EvaluationAgent) Evaluate(ctx context.Context, task string) (*entity.EvaluationResult, error) {
	prompt := task
	state := phaseGenerating
	iteration := 1

	var agentOutput, verdict string

	for {
		switch state {
		case phaseGenerating:
			out, err := e.agent.Respond(ctx, prompt)
			if err != nil {
				return nil, fmt.Errorf("generate attempt %d: %w", iteration, err)
			}
			agentOutput = out
			state = phaseEvaluating

		case phaseEvaluating:
			v, err := e.grade(ctx, agentOutput)
			if err != nil {
				return nil, fmt.Errorf("evaluate attempt %d: %w", iteration, err)
			}
			verdict = v

			if entity.IsAcceptedVerdict(verdict) {
				state = phaseAccepted
			} else {
				state = phaseCorrecting
			}
			e.logger.Debug("Evaluation pass finished",
				"iteration", iteration,
				"state", string(state),
			)

		case phaseCorrecting:
			// On the final pass the last attempt stands as-is: no
			// correction call, no error, verdict left for the caller.
			if iteration == e.maxInteractions {
				e.logger.Warn("Evaluation budget exhausted without acceptance",
					"maxInteractions", e.maxInteractions,
				)
				return &entity.EvaluationResult{
					FinalResponse: agentOutput,
					Evaluation:    verdict,
					Iterations:    e.maxInteractions,
				}, nil
			}

			instructions, err := e.requestCorrections(ctx, agentOutput, verdict)
			if err != nil {
				return nil, fmt.Errorf("correct attempt %d: %w", iteration, err)
			}
			prompt = fmt.Sprintf("%s\n\nApply these corrections:\n%s", task, instructions)
			iteration++
			state = phaseGenerating

		case phaseAccepted:
			return &entity.EvaluationResult{
				FinalResponse: agentOutput,
				Evaluation:    verdict,
				Iterations:    iteration,
			}, nil
		}
	}
}

func (e *EvaluationAgent) grade(ctx context.Context, agentOutput string) (string, error) {
	prompt := fmt.Sprintf(
		"%s\n\nEvaluate the following response:\n%s\n\nAgainst these criteria:\n%s\n\nRespond with Yes or No, followed by a brief explanation.",
		e.persona, agentOutput, e.criteria,
	)

	resp, err := e.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

func (e *EvaluationAgent) requestCorrections(ctx context.Context, agentOutput, verdict string) (string, error) {
	prompt := fmt.Sprintf(
		"The response failed evaluation.\n\nResponse:\n%s\n\nFeedback:\n%s\n\nProvide clear correction instructions.",
		agentOutput, verdict,
	)

	resp, err := e.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}
