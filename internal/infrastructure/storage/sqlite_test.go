package storage

import (
	"path/filepath"
	"testing"
	"time"

	"agentic-workflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "workflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndListRuns(t *testing.T) {
	s := newTestStorage(t)

	run := &entity.WorkflowRun{
		ID:        "run-1",
		Prompt:    "Generate a complete project plan for building the Email Router.",
		Status:    entity.RunStatusRunning,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateRun(run))
	require.NoError(t, s.FinishRun("run-1", entity.RunStatusCompleted, 5))

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, entity.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, 5, runs[0].Steps)
	assert.False(t, runs[0].CompletedAt.IsZero())
}

func TestStepResults_OrderedBySeq(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.CreateRun(&entity.WorkflowRun{
		ID: "run-2", Prompt: "p", Status: entity.RunStatusRunning, CreatedAt: time.Now(),
	}))

	require.NoError(t, s.AddStepResult("run-2", 2, entity.StepResult{Agent: "Program Manager", Output: "second"}))
	require.NoError(t, s.AddStepResult("run-2", 1, entity.StepResult{Agent: "Product Manager", Output: "first"}))

	results, err := s.StepResults("run-2")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Output)
	assert.Equal(t, "second", results[1].Output)
}

func TestListRuns_Empty(t *testing.T) {
	s := newTestStorage(t)

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
