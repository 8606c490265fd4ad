package router

import (
	"testing"

	"agentic-workflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		step string
		want entity.AgentType
	}{
		{"Write the user story for the email router", entity.AgentTypeProductManager},
		{"Plan TRAINING sessions for support staff", entity.AgentTypeProductManager},
		{"Define the feature list", entity.AgentTypeProgramManager},
		{"Design the integration with the ticketing system", entity.AgentTypeProgramManager},
		{"Document the system architecture", entity.AgentTypeProgramManager},
		{"Set up CI pipeline", entity.AgentTypeDevelopmentEngineer},
		{"", entity.AgentTypeDevelopmentEngineer},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.step))
		})
	}
}

func TestClassify_PrecedenceProductManagerFirst(t *testing.T) {
	// Rule 1 precedes rule 2 even when both keyword sets match.
	got := Classify("Write a user story for the export feature")
	assert.Equal(t, entity.AgentTypeProductManager, got)
}
