package router

import (
	"strings"

	"agentic-workflow/internal/domain/entity"
)

// Classify assigns a plan step to a workflow agent by keyword, first match
// wins:
//  1. "user story" or "training" -> Product Manager
//  2. "feature", "integration" or "architecture" -> Program Manager
//  3. anything else -> Development Engineer
func Classify(step string) entity.AgentType {
	stepLower := strings.ToLower(step)

	if strings.Contains(stepLower, "user story") || strings.Contains(stepLower, "training") {
		return entity.AgentTypeProductManager
	}
	if strings.Contains(stepLower, "feature") ||
		strings.Contains(stepLower, "integration") ||
		strings.Contains(stepLower, "architecture") {
		return entity.AgentTypeProgramManager
	}
	return entity.AgentTypeDevelopmentEngineer
}
