package entity

import "time"

// StepResult is one per plan step, in plan order. The JSON shape matches the
// persisted workflow artifact.
type StepResult struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

type WorkflowRun struct {
	ID          string
	Prompt      string
	Status      RunStatus
	Steps       int
	CreatedAt   time.Time
	CompletedAt time.Time
}
