package service

import (
	"sort"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"
)

var _ output.AgentRegistry = (*AgentRegistryImpl)(nil)

type AgentRegistryImpl struct {
	agents map[entity.AgentType]output.PromptAgent
}

func NewAgentRegistry() *AgentRegistryImpl {
	return &AgentRegistryImpl{
		agents: make(map[entity.AgentType]output.PromptAgent),
	}
}

func (r *AgentRegistryImpl) Register(agentType entity.AgentType, agent output.PromptAgent) {
	r.agents[agentType] = agent
}

func (r *AgentRegistryImpl) Get(agentType entity.AgentType) (output.PromptAgent, bool) {
	agent, ok := r.agents[agentType]
	return agent, ok
}

func (r *AgentRegistryImpl) List() []entity.AgentType {
	result := make([]entity.AgentType, 0, len(r.agents))
	for agentType := range r.agents {
		result = append(result, agentType)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
