package agents

import (
	"context"
	"fmt"
	"strings"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

var _ output.PromptAgent = (*KnowledgeAgent)(nil)

// KnowledgeAgent answers using only its knowledge context; the persona
// guides style. Both are fixed at construction.
type KnowledgeAgent struct {
	llm       output.LLMPort
	persona   string
	knowledge string
}

func NewKnowledgeAgent(llm output.LLMPort, persona, knowledge string) *KnowledgeAgent {
	return &KnowledgeAgent{llm: llm, persona: persona, knowledge: knowledge}
}

func (a *KnowledgeAgent) Respond(ctx context.Context, prompt string) (string, error) {
	systemPrompt := fmt.Sprintf(
		"You are %s.\nUse ONLY the knowledge below.\nDo NOT use outside knowledge.\n\nKNOWLEDGE:\n%s",
		a.persona, a.knowledge,
	)

	resp, err := a.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("knowledge agent: %w", err)
	}
	return strings.TrimSpace(resp.Message.Content), nil
}
