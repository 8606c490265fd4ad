package router

import (
	"context"
	"testing"

	"agentic-workflow/internal/application/service"
	"agentic-workflow/internal/domain/entity"
	"agentic-workflow/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoAgent struct {
	name string
}

func (a *echoAgent) Respond(ctx context.Context, prompt string) (string, error) {
	return a.name, nil
}

func newDemoRegistry() *service.AgentRegistryImpl {
	registry := service.NewAgentRegistry()
	registry.Register(entity.AgentTypeMath, &echoAgent{name: "math"})
	registry.Register(entity.AgentTypeTexas, &echoAgent{name: "texas"})
	registry.Register(entity.AgentTypeEurope, &echoAgent{name: "europe"})
	registry.Register(entity.AgentTypeDirect, &echoAgent{name: "direct"})
	return registry
}

func TestKeywordRouter(t *testing.T) {
	r := NewKeywordRouter(newDemoRegistry(), logger.NewNopLogger())
	ctx := context.Background()

	tests := []struct {
		prompt string
		want   string
	}{
		{"Tell me about the history of Rome, Texas", "texas"},
		{"Tell me about the history of Rome, Italy", "europe"},
		{"What countries are in EUROPE?", "europe"},
		{"One story takes 2 days, and there are 20 stories", "math"},
		{"What is the capital of France?", "direct"},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			got, err := r.Route(ctx, tt.prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordRouter_DigitBeatsTexas(t *testing.T) {
	r := NewKeywordRouter(newDemoRegistry(), logger.NewNopLogger())

	got, err := r.Route(context.Background(), "There are 20 stories about Texas")
	require.NoError(t, err)
	assert.Equal(t, "math", got)
}

func TestKeywordRouter_MissingAgent(t *testing.T) {
	registry := service.NewAgentRegistry()
	r := NewKeywordRouter(registry, logger.NewNopLogger())

	_, err := r.Route(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no agent registered")
}
