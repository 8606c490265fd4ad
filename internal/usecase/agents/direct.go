package agents

import (
	"context"
	"fmt"
	"strings"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

var _ output.PromptAgent = (*DirectAgent)(nil)

// DirectAgent sends the raw user prompt to the model without a system
// message. General-purpose fallback for the routing demo.
type DirectAgent struct {
	llm output.LLMPort
}

func NewDirectAgent(llm output.LLMPort) *DirectAgent {
	return &DirectAgent{llm: llm}
}

func (a *DirectAgent) Respond(ctx context.Context, prompt string) (string, error) {
	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("direct agent: %w", err)
	}
	return strings.TrimSpace(resp.Message.Content), nil
}
