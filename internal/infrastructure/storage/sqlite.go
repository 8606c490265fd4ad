package storage

import (
	"database/sql"
	"fmt"
	"time"

	"agentic-workflow/internal/application/port/output"
	"agentic-workflow/internal/domain/entity"

	_ "modernc.org/sqlite"
)

var _ output.RunStore = (*Storage)(nil)

type Storage struct {
	db *sql.DB
}

func New(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		prompt TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'running',
		steps INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS step_results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		agent TEXT NOT NULL,
		output TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Storage) CreateRun(run *entity.WorkflowRun) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, prompt, status, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Prompt, run.Status, run.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Storage) FinishRun(id string, status entity.RunStatus, steps int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET status = ?, steps = ?, completed_at = ? WHERE id = ?`,
		status, steps, time.Now().UTC().Format(time.RFC3339), id,
	)
	return err
}

func (s *Storage) AddStepResult(runID string, seq int, result entity.StepResult) error {
	_, err := s.db.Exec(
		`INSERT INTO step_results (run_id, seq, agent, output) VALUES (?, ?, ?, ?)`,
		runID, seq, result.Agent, result.Output,
	)
	return err
}

func (s *Storage) ListRuns(limit int) ([]entity.WorkflowRun, error) {
	rows, err := s.db.Query(
		`SELECT id, prompt, status, steps, created_at, COALESCE(completed_at, '')
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []entity.WorkflowRun
	for rows.Next() {
		var run entity.WorkflowRun
		var createdAt, completedAt string
		if err := rows.Scan(&run.ID, &run.Prompt, &run.Status, &run.Steps, &createdAt, &completedAt); err != nil {
			return nil, err
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if completedAt != "" {
			run.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *Storage) StepResults(runID string) ([]entity.StepResult, error) {
	rows, err := s.db.Query(
		`SELECT agent, output FROM step_results WHERE run_id = ? ORDER BY seq`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []entity.StepResult
	for rows.Next() {
		var r entity.StepResult
		if err := rows.Scan(&r.Agent, &r.Output); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
