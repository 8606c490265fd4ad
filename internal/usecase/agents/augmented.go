package agents

import (
	"context"
	"fmt"
	"strings"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

var _ output.PromptAgent = (*AugmentedAgent)(nil)

// AugmentedAgent prepends a persona system message. The persona shapes tone
// and phrasing; it carries no factual constraints.
type AugmentedAgent struct {
	llm     output.LLMPort
	persona string
}

func NewAugmentedAgent(llm output.LLMPort, persona string) *AugmentedAgent {
	return &AugmentedAgent{llm: llm, persona: persona}
}

func (a *AugmentedAgent) Respond(ctx context.Context, prompt string) (string, error) {
	systemPrompt := fmt.Sprintf("You are %s.\nForget all previous context.", a.persona)

	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("augmented agent: %w", err)
	}
	return strings.TrimSpace(resp.Message.Content), nil
}
