package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"agentic-workflow/internal/di"
	"agentic-workflow/internal/infrastructure/env"
	"agentic-workflow/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

const defaultPlanPrompt = "Generate a complete project plan for building the Email Router."

var defaultRoutePrompts = []string{
	"Tell me about the history of Rome, Texas",
	"Tell me about the history of Rome, Italy",
	"One story takes 2 days, and there are 20 stories",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "workflow",
		Short: "Multi-agent project planning workflows",
		Long:  "Workflow chains LLM prompt agents into routing and project planning pipelines.",
	}

	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newRouteCommand())
	rootCmd.AddCommand(newAskCommand())
	rootCmd.AddCommand(newEvaluateCommand())
	rootCmd.AddCommand(newRunsCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newContainer(runName string, artifactPath string) (*di.Container, error) {
	envService := env.NewEnvService()

	return di.NewContainer(di.Config{
		APIKey:         envService.MustGet("OPENAI_API_KEY"),
		BaseURL:        envService.Get("OPENAI_BASE_URL"),
		ChatModel:      envService.Get("OPENAI_CHAT_MODEL"),
		EmbeddingModel: envService.Get("OPENAI_EMBEDDING_MODEL"),
		DBPath:         envService.GetWithDefault("WORKFLOW_DB", "workflow.db"),
		ArtifactPath:   artifactPath,
		RunName:        runName,
	})
}

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [prompt]",
		Short: "Run the project planning pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := defaultPlanPrompt
			if len(args) > 0 {
				prompt = args[0]
			}
			output, _ := cmd.Flags().GetString("output")

			container, err := newContainer("plan", output)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
			defer cancel()

			container.Logger.Info("Plan command started", "prompt", prompt)

			result, err := container.Workflow.Run(ctx, prompt)
			if err != nil {
				container.Logger.Error("Workflow failed", "error", err)
				return err
			}

			fmt.Printf("\nRun %s: %d steps processed\n", result.RunID, len(result.Results))
			return nil
		},
	}

	cmd.Flags().String("output", "workflow_output.json", "path of the JSON artifact")
	return cmd
}

func newRouteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route [prompt]...",
		Short: "Dispatch prompts to specialized agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := args
			if len(prompts) == 0 {
				prompts = defaultRoutePrompts
			}
			semantic, _ := cmd.Flags().GetBool("semantic")

			container, err := newContainer("route", "")
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			for _, prompt := range prompts {
				fmt.Printf("\nPrompt: %s\n", prompt)

				var response string
				if semantic {
					response, err = container.SemanticRouter.Route(ctx, prompt)
				} else {
					response, err = container.KeywordRouter.Route(ctx, prompt)
				}
				if err != nil {
					container.Logger.Error("Routing failed", "prompt", prompt, "error", err)
					return err
				}

				fmt.Printf("Agent Response:\n%s\n", response)
			}

			fmt.Println("\nRouting execution complete.")
			return nil
		},
	}

	cmd.Flags().Bool("semantic", false, "route by embedding similarity instead of keywords")
	return cmd
}

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Send a raw prompt to the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainer("ask", "")
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			response, err := container.DirectAgent.Respond(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(response)
			return nil
		},
	}
}

func newRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded workflow runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			envService := env.NewEnvService()
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := storage.New(envService.GetWithDefault("WORKFLOW_DB", "workflow.db"))
			if err != nil {
				return fmt.Errorf("failed to open run store: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			for _, run := range runs {
				fmt.Printf("%s  %-9s  %2d steps  %s  %s\n",
					run.CreatedAt.Format("2006-01-02 15:04"),
					run.Status,
					run.Steps,
					run.ID,
					truncatePrompt(run.Prompt),
				)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "maximum number of runs to list")
	return cmd
}

func truncatePrompt(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
