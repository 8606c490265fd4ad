package output

import (
	"context"

	"agentic-workflow/internal/domain/entity"
)

// LLMPort is the boundary to the remote completion and embedding service.
// Every call blocks until the remote reply or error arrives; there is no
// local retry or timeout beyond the HTTP client's own.
type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Temperature float32
}

type ChatResponse struct {
	Message entity.Message
}
