package main

import (
	"context"
	"fmt"
	"time"

	"agentic-workflow/internal/usecase/agents"
	"agentic-workflow/internal/usecase/evaluator"

	"github.com/spf13/cobra"
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <prompt>",
		Short: "Run one agent under the evaluation loop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persona, _ := cmd.Flags().GetString("persona")
			criteria, _ := cmd.Flags().GetString("criteria")
			knowledge, _ := cmd.Flags().GetString("knowledge")
			maxInteractions, _ := cmd.Flags().GetInt("max-interactions")

			container, err := newContainer("evaluate", "")
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			worker := agents.NewKnowledgeAgent(container.LLM, persona, knowledge)
			eval := evaluator.New(container.LLM, worker, evaluator.Config{
				Persona:         "You are an evaluation agent that checks the answers of other worker agents.",
				Criteria:        criteria,
				MaxInteractions: maxInteractions,
			}, container.Logger)

			result, err := eval.Evaluate(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Final Response: %s\n", result.FinalResponse)
			fmt.Printf("Evaluation: %s\n", result.Evaluation)
			fmt.Printf("Iterations: %d\n", result.Iterations)
			return nil
		},
	}

	cmd.Flags().String("persona", "a college professor; always start responses with 'Dear students,'", "persona of the evaluated agent")
	cmd.Flags().String("criteria", "The answer should be solely the name of a city, not a sentence.", "acceptance criteria")
	cmd.Flags().String("knowledge", "The capital of France is London.", "knowledge context of the evaluated agent")
	cmd.Flags().Int("max-interactions", 5, "iteration budget of the evaluation loop")
	return cmd
}
