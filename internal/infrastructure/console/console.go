package console

import (
	"context"
	"fmt"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ProgressPort = (*ConsoleProgress)(nil)

type ConsoleProgress struct{}

func NewConsoleProgress() *ConsoleProgress {
	return &ConsoleProgress{}
}

func (c *ConsoleProgress) ShowPlan(ctx context.Context, steps []string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("\n━━━ План из %d шагов ━━━\n", len(steps))

	dim := color.New(color.Faint)
	for i, step := range steps {
		dim.Printf("  %d. %s\n", i+1, truncate(step, 120))
	}
}

func (c *ConsoleProgress) ShowStep(ctx context.Context, seq, total int, step string, agentType entity.AgentType) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n▶ Шаг %d/%d → %s\n", seq, total, agentType.DisplayName())

	dim := color.New(color.Faint)
	dim.Printf("  %s\n", truncate(step, 200))
}

func (c *ConsoleProgress) ShowEvaluation(ctx context.Context, result *entity.EvaluationResult) {
	if result.Accepted() {
		green := color.New(color.FgGreen)
		green.Printf("  ✓ Принято за %d итераций\n", result.Iterations)
		return
	}

	red := color.New(color.FgRed)
	red.Printf("  ✗ Не принято после %d итераций\n", result.Iterations)

	dim := color.New(color.Faint)
	dim.Printf("  Вердикт: %s\n", truncate(result.Evaluation, 200))
}

func (c *ConsoleProgress) ShowSummary(ctx context.Context, results []entity.StepResult, artifactPath string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("\n✅ Рабочий процесс завершён\n")

	fmt.Printf("Обработано шагов: %d\n", len(results))
	if artifactPath != "" {
		fmt.Printf("Результат сохранён в: %s\n", artifactPath)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
