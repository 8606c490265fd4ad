package di

import (
	"fmt"

	"agentic-workflow/internal/application/port/input"
	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/application/service"
	"agentic-workflow/internal/domain/entity"
	"agentic-workflow/internal/infrastructure/console"
	"agentic-workflow/internal/infrastructure/llm/openaiclient"
	"agentic-workflow/internal/infrastructure/logger"
	"agentic-workflow/internal/infrastructure/prompts"
	"agentic-workflow/internal/infrastructure/storage"
	"agentic-workflow/internal/usecase/agents"
	"agentic-workflow/internal/usecase/evaluator"
	"agentic-workflow/internal/usecase/router"
	"agentic-workflow/internal/usecase/workflow"
)

type Container struct {
	LLM            output.LLMPort
	Logger         output.LoggerPort
	Store          output.RunStore
	Workflow       input.WorkflowRunner
	KeywordRouter  *router.KeywordRouter
	SemanticRouter *router.RoutingAgent
	DirectAgent    output.PromptAgent
}

type Config struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	BaseURL        string
	DBPath         string
	ArtifactPath   string
	RunName        string
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.RunName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openaiclient.DefaultConfig(cfg.APIKey)
	llmCfg.BaseURL = cfg.BaseURL
	llmCfg.Logger = log
	if cfg.ChatModel != "" {
		llmCfg.ChatModel = cfg.ChatModel
	}
	if cfg.EmbeddingModel != "" {
		llmCfg.EmbeddingModel = cfg.EmbeddingModel
	}
	llm := openaiclient.NewOpenAIAdapter(llmCfg)

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}

	planner := agents.NewActionPlanningAgent(llm, prompts.PlanningKnowledge)
	wf := workflow.New(
		planner,
		buildWorkflowEvaluators(llm, log),
		store,
		console.NewConsoleProgress(),
		log,
		cfg.ArtifactPath,
	)

	registry := buildDemoRegistry(llm)
	direct, _ := registry.Get(entity.AgentTypeDirect)

	return &Container{
		LLM:            llm,
		Logger:         log,
		Store:          store,
		Workflow:       wf,
		KeywordRouter:  router.NewKeywordRouter(registry, log),
		SemanticRouter: router.NewRoutingAgent(llm, buildDemoRoutes(registry), log),
		DirectAgent:    direct,
	}, nil
}

func (c *Container) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func buildWorkflowEvaluators(llm output.LLMPort, log output.LoggerPort) map[entity.AgentType]workflow.StepEvaluator {
	productManager := agents.NewKnowledgeAgent(llm,
		prompts.PersonaProductManager,
		prompts.ProductManagerKnowledge(prompts.ProductSpec))

	programManager := agents.NewKnowledgeAgent(llm,
		prompts.PersonaProgramManager,
		prompts.ProgramManagerKnowledge(prompts.ProductSpec))

	developmentEngineer := agents.NewKnowledgeAgent(llm,
		prompts.PersonaDevelopmentEngineer,
		prompts.DevelopmentEngineerKnowledge(prompts.ProductSpec))

	return map[entity.AgentType]workflow.StepEvaluator{
		entity.AgentTypeProductManager: evaluator.New(llm, productManager, evaluator.Config{
			Persona:  prompts.PersonaProductEvaluator,
			Criteria: prompts.CriteriaUserStories,
		}, log),
		entity.AgentTypeProgramManager: evaluator.New(llm, programManager, evaluator.Config{
			Persona:  prompts.PersonaProgramEvaluator,
			Criteria: prompts.CriteriaFeatures,
		}, log),
		entity.AgentTypeDevelopmentEngineer: evaluator.New(llm, developmentEngineer, evaluator.Config{
			Persona:  prompts.PersonaDevEvaluator,
			Criteria: prompts.CriteriaEngineeringTasks,
		}, log),
	}
}

func buildDemoRegistry(llm output.LLMPort) output.AgentRegistry {
	registry := service.NewAgentRegistry()

	registry.Register(entity.AgentTypeMath,
		agents.NewKnowledgeAgent(llm, prompts.PersonaMathProfessor, prompts.KnowledgeMath))
	registry.Register(entity.AgentTypeTexas,
		agents.NewKnowledgeAgent(llm, prompts.PersonaProfessor, prompts.KnowledgeTexas))
	registry.Register(entity.AgentTypeEurope,
		agents.NewKnowledgeAgent(llm, prompts.PersonaProfessor, prompts.KnowledgeEurope))
	registry.Register(entity.AgentTypeDirect,
		agents.NewDirectAgent(llm))

	return registry
}

func buildDemoRoutes(registry output.AgentRegistry) []router.Route {
	descriptions := map[entity.AgentType]string{
		entity.AgentTypeMath:   "Math problems, calculations and anything involving numbers",
		entity.AgentTypeTexas:  "Questions about the U.S. state of Texas",
		entity.AgentTypeEurope: "Questions about Europe and European countries such as Italy",
		entity.AgentTypeDirect: "General questions on any other topic",
	}

	routes := make([]router.Route, 0, len(descriptions))
	for _, agentType := range registry.List() {
		agent, ok := registry.Get(agentType)
		if !ok {
			continue
		}
		routes = append(routes, router.Route{
			Description: descriptions[agentType],
			Handler:     agent.Respond,
		})
	}
	return routes
}
