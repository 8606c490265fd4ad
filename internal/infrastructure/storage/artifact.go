package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"agentic-workflow/internal/domain/entity"
)

// WriteArtifact writes the ordered step results as a pretty-printed JSON
// array, overwriting any prior file at the path.
func WriteArtifact(path string, results []entity.StepResult) error {
	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

func ReadArtifact(path string) ([]entity.StepResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var results []entity.StepResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	return results, nil
}
