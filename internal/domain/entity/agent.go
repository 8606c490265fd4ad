package entity

type AgentType string

const (
	AgentTypeProductManager      AgentType = "product_manager"
	AgentTypeProgramManager      AgentType = "program_manager"
	AgentTypeDevelopmentEngineer AgentType = "development_engineer"

	AgentTypeMath   AgentType = "math"
	AgentTypeTexas  AgentType = "texas"
	AgentTypeEurope AgentType = "europe"
	AgentTypeDirect AgentType = "direct"
)

func (t AgentType) String() string {
	return string(t)
}

// DisplayName is the human-readable form used in console output and in the
// persisted workflow artifact.
func (t AgentType) DisplayName() string {
	switch t {
	case AgentTypeProductManager:
		return "Product Manager"
	case AgentTypeProgramManager:
		return "Program Manager"
	case AgentTypeDevelopmentEngineer:
		return "Development Engineer"
	case AgentTypeMath:
		return "Math Professor"
	case AgentTypeTexas:
		return "Texas Expert"
	case AgentTypeEurope:
		return "Europe Expert"
	case AgentTypeDirect:
		return "General Assistant"
	}
	return string(t)
}
