package openaiclient

import (
	"testing"

	"agentic-workflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestConvertMessages(t *testing.T) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: "You are a college professor."},
		{Role: entity.RoleUser, Content: "What is the capital of France?"},
	}

	result := convertMessages(messages)

	assert.Len(t, result, 2)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "You are a college professor.", result[0].Content)
	assert.Equal(t, "user", result[1].Role)
	assert.Equal(t, "What is the capital of France?", result[1].Content)
}

func TestConvertMessages_Empty(t *testing.T) {
	result := convertMessages(nil)
	assert.Empty(t, result)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("sk-test")

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-3.5-turbo", cfg.ChatModel)
	assert.Equal(t, "text-embedding-3-large", cfg.EmbeddingModel)
	assert.Empty(t, cfg.BaseURL)
}
