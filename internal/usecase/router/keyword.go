package router

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

// KeywordRouter is the simpler dispatch used by the routing demo. Evaluated
// once per prompt, case-insensitively, no retry loop. The digit check has
// top precedence.
type KeywordRouter struct {
	agents output.AgentRegistry
	logger output.LoggerPort
}

func NewKeywordRouter(agents output.AgentRegistry, logger output.LoggerPort) *KeywordRouter {
	return &KeywordRouter{agents: agents, logger: logger}
}

func (r *KeywordRouter) Route(ctx context.Context, prompt string) (string, error) {
	agentType := classifyPrompt(prompt)
	r.logger.Info("Keyword route selected", "agentType", string(agentType))

	agent, ok := r.agents.Get(agentType)
	if !ok {
		return "", fmt.Errorf("no agent registered for type %q", agentType)
	}
	return agent.Respond(ctx, prompt)
}

func classifyPrompt(prompt string) entity.AgentType {
	promptLower := strings.ToLower(prompt)

	if strings.ContainsFunc(promptLower, unicode.IsDigit) {
		return entity.AgentTypeMath
	}
	if strings.Contains(promptLower, "texas") {
		return entity.AgentTypeTexas
	}
	if strings.Contains(promptLower, "italy") || strings.Contains(promptLower, "europe") {
		return entity.AgentTypeEurope
	}
	return entity.AgentTypeDirect
}
