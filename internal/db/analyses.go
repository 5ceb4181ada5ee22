package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/visiblehq/visibility-insights/internal/types"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// CreateAnalysis inserts a new analysis row in processing status and returns
// its id.
func (db *DB) CreateAnalysis(ctx context.Context, a *types.Analysis) (uuid.UUID, error) {
	techJSON, err := json.Marshal(a.TechnicalData)
	if err != nil {
		return uuid.Nil, &StorageError{Op: "marshal technical data", Cause: err}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (customer_name, visibility_score, competitors, topics,
			technical_findings, technical_data, prompt, categories, brief_count, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		a.CustomerName, a.VisibilityScore, a.Competitors, a.Topics,
		a.TechnicalFindings, techJSON, a.Prompt, a.Categories, a.BriefCount, types.StatusProcessing,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, &StorageError{Op: "create analysis", Cause: err}
	}
	return id, nil
}

// UpdateStatus advances the analysis lifecycle state. Completed analyses get a
// completion timestamp.
func (db *DB) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	var err error
	if status == types.StatusCompleted {
		_, err = db.pool.Exec(ctx,
			`UPDATE analyses SET status = $1, completed_at = NOW() WHERE id = $2`, status, id)
	} else {
		_, err = db.pool.Exec(ctx,
			`UPDATE analyses SET status = $1 WHERE id = $2`, status, id)
	}
	if err != nil {
		return &StorageError{Op: "update status", Cause: err}
	}
	return nil
}

// SaveNarrative stores the generated narrative for an analysis.
func (db *DB) SaveNarrative(ctx context.Context, id uuid.UUID, narrative string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE analyses SET narrative = $1 WHERE id = $2`, narrative, id)
	if err != nil {
		return &StorageError{Op: "save narrative", Cause: err}
	}
	return nil
}

// GetAnalysis fetches one analysis by id.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, customer_name, visibility_score, competitors, topics,
			technical_findings, technical_data, prompt, narrative, categories,
			brief_count, status, created_at, completed_at
		 FROM analyses WHERE id = $1`, id)

	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("analysis %s: %w", id, ErrNotFound)
		}
		return nil, &StorageError{Op: "get analysis", Cause: err}
	}
	return a, nil
}

// ListAnalyses returns analyses newest first for the dashboard.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]types.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, customer_name, visibility_score, competitors, topics,
			technical_findings, technical_data, prompt, narrative, categories,
			brief_count, status, created_at, completed_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, &StorageError{Op: "list analyses", Cause: err}
	}
	defer rows.Close()

	var analyses []types.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, &StorageError{Op: "scan analysis", Cause: err}
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list analyses", Cause: err}
	}
	return analyses, nil
}

func scanAnalysis(row pgx.Row) (*types.Analysis, error) {
	var a types.Analysis
	var techJSON []byte
	err := row.Scan(&a.ID, &a.CustomerName, &a.VisibilityScore, &a.Competitors,
		&a.Topics, &a.TechnicalFindings, &techJSON, &a.Prompt, &a.Narrative,
		&a.Categories, &a.BriefCount, &a.Status, &a.CreatedAt, &a.CompletedAt)
	if err != nil {
		return nil, err
	}
	if len(techJSON) > 0 {
		if err := json.Unmarshal(techJSON, &a.TechnicalData); err != nil {
			return nil, fmt.Errorf("unmarshal technical data: %w", err)
		}
	}
	return &a, nil
}
