package db

import "context"

// Bootstrap creates the schema if it does not exist. Safe to run on every
// startup.
func (db *DB) Bootstrap(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			customer_name TEXT NOT NULL,
			visibility_score INT NOT NULL DEFAULT 0,
			competitors TEXT[] NOT NULL DEFAULT '{}',
			topics TEXT[] NOT NULL DEFAULT '{}',
			technical_findings TEXT NOT NULL DEFAULT '',
			technical_data JSONB NOT NULL DEFAULT '{}',
			prompt TEXT NOT NULL DEFAULT '',
			narrative TEXT NOT NULL DEFAULT '',
			categories TEXT[] NOT NULL DEFAULT '{}',
			brief_count INT NOT NULL DEFAULT 15,
			status TEXT NOT NULL DEFAULT 'processing',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS briefs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			analysis_id UUID NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			why_it_matters TEXT NOT NULL DEFAULT '',
			implementation_steps TEXT[] NOT NULL DEFAULT '{}',
			effort INT NOT NULL DEFAULT 0,
			impact INT NOT NULL DEFAULT 0,
			composite_score INT NOT NULL DEFAULT 0,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			timeline TEXT NOT NULL DEFAULT '',
			selected BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_briefs_analysis_id ON briefs(analysis_id)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return &StorageError{Op: "bootstrap schema", Cause: err}
		}
	}
	return nil
}
