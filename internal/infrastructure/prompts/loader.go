package prompts

import (
	_ "embed"
)

//go:embed product_spec.txt
var ProductSpec string

// PlanningKnowledge constrains the action planning agent to step extraction.
const PlanningKnowledge = "You are a project planning AI. Extract clear, actionable workflow steps " +
	"from a high-level project prompt."

const (
	PersonaProductManager      = "You are a Product Manager AI responsible for defining user stories."
	PersonaProgramManager      = "You are a Program Manager AI responsible for defining product features."
	PersonaDevelopmentEngineer = "You are a Development Engineer AI responsible for detailed engineering tasks."
)

const (
	PersonaProductEvaluator = "Evaluation agent checking user stories"
	PersonaProgramEvaluator = "Evaluation agent checking product features"
	PersonaDevEvaluator     = "Evaluation agent checking engineering tasks"
)

const CriteriaUserStories = "The answer should be user stories strictly following the structure:\n" +
	"As a [type of user], I want [an action or feature] so that [benefit/value]."

const CriteriaFeatures = "Each feature must strictly follow this structure:\n" +
	"Feature Name: [Name]\nDescription: [Brief explanation]\n" +
	"Key Functionality: [Capabilities]\nUser Benefit: [Value]"

const CriteriaEngineeringTasks = "Each engineering task must strictly follow this structure:\n" +
	"Task ID: [Unique ID]\nTask Title: [Brief description]\n" +
	"Related User Story: [Reference]\nDescription: [Detailed explanation]\n" +
	"Acceptance Criteria: [Completion criteria]\nEstimated Effort: [Time estimate]\n" +
	"Dependencies: [Prerequisite tasks]"

// Knowledge contexts for the standalone routing demo.
const (
	KnowledgeTexas  = "Texas is a U.S. state. Its capital city is Austin."
	KnowledgeEurope = "Europe is a continent that includes countries such as Italy and France."
	KnowledgeMath   = "When a prompt contains numbers, extract the math problem " +
		"and return only the final numeric answer without explanation."

	PersonaProfessor     = "a college professor"
	PersonaMathProfessor = "a college math professor"
)
