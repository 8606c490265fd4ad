package agents

import (
	"context"
	"fmt"
	"strings"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

// ActionPlanningAgent extracts workflow steps from a high-level prompt.
type ActionPlanningAgent struct {
	llm       output.LLMPort
	knowledge string
}

func NewActionPlanningAgent(llm output.LLMPort, knowledge string) *ActionPlanningAgent {
	return &ActionPlanningAgent{llm: llm, knowledge: knowledge}
}

// ExtractSteps asks the model for a numbered step list and returns the
// non-blank lines of the reply in original order. Lines are not validated
// against a list shape: prose intermixed with steps comes back as steps.
func (a *ActionPlanningAgent) ExtractSteps(ctx context.Context, prompt string) ([]string, error) {
	systemPrompt := fmt.Sprintf(
		"You are an action planning agent.\nExtract a numbered list of actionable steps.\nUse ONLY the provided knowledge.\n\nKNOWLEDGE:\n%s",
		a.knowledge,
	)

	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("action planning agent: %w", err)
	}

	return SplitSteps(resp.Message.Content), nil
}

// SplitSteps splits a reply on newlines, trims each line and drops the ones
// that are empty after trimming.
func SplitSteps(reply string) []string {
	lines := strings.Split(reply, "\n")
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}
