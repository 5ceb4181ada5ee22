package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/visiblehq/visibility-insights/internal/types"
)

// InsertBriefs bulk-inserts the selected briefs for an analysis inside one
// transaction.
func (db *DB) InsertBriefs(ctx context.Context, analysisID uuid.UUID, briefs []types.Brief) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return &StorageError{Op: "begin insert briefs", Cause: err}
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, b := range briefs {
		_, err := tx.Exec(ctx,
			`INSERT INTO briefs (analysis_id, category, title, description, why_it_matters,
				implementation_steps, effort, impact, composite_score, keywords, timeline, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			analysisID, b.Category, b.Title, b.Description, b.WhyItMatters,
			b.ImplementationSteps, b.Effort, b.Impact, b.CompositeScore,
			b.Keywords, b.Timeline, b.Position)
		if err != nil {
			return &StorageError{Op: "insert brief", Cause: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "commit insert briefs", Cause: err}
	}
	return nil
}

// GetBriefs returns the persisted briefs for an analysis in selection order,
// selected briefs first for export ordering.
func (db *DB) GetBriefs(ctx context.Context, analysisID uuid.UUID) ([]types.Brief, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, analysis_id, category, title, description, why_it_matters,
			implementation_steps, effort, impact, composite_score, keywords,
			timeline, selected, position, created_at
		 FROM briefs WHERE analysis_id = $1
		 ORDER BY selected DESC, position ASC`, analysisID)
	if err != nil {
		return nil, &StorageError{Op: "get briefs", Cause: err}
	}
	defer rows.Close()

	var briefs []types.Brief
	for rows.Next() {
		var b types.Brief
		err := rows.Scan(&b.ID, &b.AnalysisID, &b.Category, &b.Title, &b.Description,
			&b.WhyItMatters, &b.ImplementationSteps, &b.Effort, &b.Impact,
			&b.CompositeScore, &b.Keywords, &b.Timeline, &b.Selected,
			&b.Position, &b.CreatedAt)
		if err != nil {
			return nil, &StorageError{Op: "scan brief", Cause: err}
		}
		briefs = append(briefs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "get briefs", Cause: err}
	}
	return briefs, nil
}

// SetBriefSelected flips the selected flag used for export ordering.
func (db *DB) SetBriefSelected(ctx context.Context, briefID uuid.UUID, selected bool) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE briefs SET selected = $1 WHERE id = $2`, selected, briefID)
	if err != nil {
		return &StorageError{Op: "set brief selected", Cause: err}
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brief %s: %w", briefID, ErrNotFound)
	}
	return nil
}

// IsNotFound reports whether err is a missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
