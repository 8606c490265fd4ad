package output

import (
	"context"

	"agentic-workflow/internal/domain/entity"
)

// PromptAgent is the shared capability of every prompt agent variant:
// build a message list, make one remote call, return the trimmed reply.
type PromptAgent interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

type AgentRegistry interface {
	Register(agentType entity.AgentType, agent PromptAgent)
	Get(agentType entity.AgentType) (PromptAgent, bool)
	List() []entity.AgentType
}
