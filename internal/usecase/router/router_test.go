package router

import (
	"context"
	"errors"
	"testing"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeddingLLM returns a fixed vector per input text.
type embeddingLLM struct {
	vectors map[string][]float32
	calls   []string
}

func (m *embeddingLLM) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *embeddingLLM) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls = append(m.calls, text)
	vec, ok := m.vectors[text]
	if !ok {
		return nil, errors.New("no vector for text: " + text)
	}
	return vec, nil
}

func handlerReturning(result string) func(context.Context, string) (string, error) {
	return func(ctx context.Context, prompt string) (string, error) {
		return result + ":" + prompt, nil
	}
}

func TestRoute_PicksHighestSimilarity(t *testing.T) {
	llm := &embeddingLLM{vectors: map[string][]float32{
		"tell me about whales": {1, 0},
		"marine biology":       {0.9, 0.1},
		"tax law":              {0, 1},
	}}

	agent := NewRoutingAgent(llm, []Route{
		{Description: "tax law", Handler: handlerReturning("tax")},
		{Description: "marine biology", Handler: handlerReturning("marine")},
	}, logger.NewNopLogger())

	got, err := agent.Route(context.Background(), "tell me about whales")
	require.NoError(t, err)
	assert.Equal(t, "marine:tell me about whales", got)
}

func TestRoute_HandlerGetsOriginalPrompt(t *testing.T) {
	llm := &embeddingLLM{vectors: map[string][]float32{
		"prompt": {1, 0},
		"only":   {1, 0},
	}}

	var handlerPrompt string
	agent := NewRoutingAgent(llm, []Route{
		{Description: "only", Handler: func(ctx context.Context, prompt string) (string, error) {
			handlerPrompt = prompt
			return "done", nil
		}},
	}, logger.NewNopLogger())

	_, err := agent.Route(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "prompt", handlerPrompt)
}

func TestRoute_TieGoesToFirstRegistered(t *testing.T) {
	// Identical description vectors: identical scores, first route wins.
	llm := &embeddingLLM{vectors: map[string][]float32{
		"the prompt": {1, 1},
		"first":      {2, 2},
		"second":     {2, 2},
	}}

	agent := NewRoutingAgent(llm, []Route{
		{Description: "first", Handler: handlerReturning("first")},
		{Description: "second", Handler: handlerReturning("second")},
	}, logger.NewNopLogger())

	got, err := agent.Route(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "first:the prompt", got)
}

func TestRoute_EmbedsPromptAndEveryDescription(t *testing.T) {
	llm := &embeddingLLM{vectors: map[string][]float32{
		"p": {1, 0},
		"a": {1, 0},
		"b": {0, 1},
		"c": {1, 1},
	}}

	agent := NewRoutingAgent(llm, []Route{
		{Description: "a", Handler: handlerReturning("a")},
		{Description: "b", Handler: handlerReturning("b")},
		{Description: "c", Handler: handlerReturning("c")},
	}, logger.NewNopLogger())

	_, err := agent.Route(context.Background(), "p")
	require.NoError(t, err)

	// N+1 embedding calls, prompt first, no caching.
	assert.Equal(t, []string{"p", "a", "b", "c"}, llm.calls)
}

func TestRoute_EmptyRouteSet(t *testing.T) {
	agent := NewRoutingAgent(&embeddingLLM{}, nil, logger.NewNopLogger())

	_, err := agent.Route(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no routes")
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"scaled", []float32{1, 1}, []float32{3, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCosineSimilarity_DimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	_, err := CosineSimilarity([]float32{0, 0}, []float32{1, 0})
	require.Error(t, err)
}
