package router

import (
	"context"
	"fmt"
	"math"

	"agentic-workflow/internal/application/port/output"
)

// Route pairs a natural-language description with the handler invoked when
// the description best matches the prompt.
type Route struct {
	Description string
	Handler     func(ctx context.Context, prompt string) (string, error)
}

// RoutingAgent dispatches a prompt to the route whose description embedding
// is most similar to the prompt embedding. No state survives between calls:
// every Route re-embeds the prompt and all descriptions sequentially.
type RoutingAgent struct {
	llm    output.LLMPort
	routes []Route
	logger output.LoggerPort
}

func NewRoutingAgent(llm output.LLMPort, routes []Route, logger output.LoggerPort) *RoutingAgent {
	return &RoutingAgent{
		llm:    llm,
		routes: routes,
		logger: logger,
	}
}

// Route picks the best-matching route and calls its handler with the
// original prompt. A later route replaces the running best only on strict
// improvement, so the first-registered route wins exact ties.
func (r *RoutingAgent) Route(ctx context.Context, prompt string) (string, error) {
	if len(r.routes) == 0 {
		return "", fmt.Errorf("no routes registered")
	}

	promptVec, err := r.llm.Embed(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("embed prompt: %w", err)
	}

	bestScore := -1.0
	bestIdx := -1

	for i, route := range r.routes {
		routeVec, err := r.llm.Embed(ctx, route.Description)
		if err != nil {
			return "", fmt.Errorf("embed route %d: %w", i, err)
		}

		score, err := CosineSimilarity(promptVec, routeVec)
		if err != nil {
			return "", fmt.Errorf("score route %d: %w", i, err)
		}

		r.logger.Debug("Route scored", "index", i, "description", route.Description, "score", score)

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return "", fmt.Errorf("no route scored above sentinel")
	}

	r.logger.Info("Route selected", "index", bestIdx, "score", bestScore)
	return r.routes[bestIdx].Handler(ctx, prompt)
}

// CosineSimilarity is the normalized dot product of two equal-length
// vectors.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("zero-magnitude vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
