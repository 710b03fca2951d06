package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables if they do not exist. Statements are
// idempotent so the seed command can run repeatedly.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Departments),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				username VARCHAR(80) NOT NULL UNIQUE,
				email VARCHAR(120) NOT NULL UNIQUE,
				password_credential VARCHAR(255) NOT NULL DEFAULT '',
				role VARCHAR(20) NOT NULL DEFAULT 'member',
				department_id UUID NOT NULL REFERENCES %s(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Users, tables.Departments),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				title VARCHAR(200) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				stored_key VARCHAR(255) NOT NULL UNIQUE,
				original_name VARCHAR(255) NOT NULL,
				media_type VARCHAR(100) NOT NULL DEFAULT '',
				size_bytes BIGINT NOT NULL DEFAULT 0,
				category VARCHAR(50) NOT NULL DEFAULT '',
				uploaded_by UUID NOT NULL REFERENCES %s(id),
				department_id UUID NOT NULL REFERENCES %s(id),
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				reviewed_by UUID REFERENCES %s(id),
				reviewed_at TIMESTAMPTZ,
				parent_id UUID REFERENCES %s(id),
				version_number INTEGER NOT NULL DEFAULT 1,
				is_current_version BOOLEAN NOT NULL DEFAULT TRUE,
				revision_notes TEXT,
				uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Files, tables.Users, tables.Departments, tables.Users, tables.Files),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_parent_id ON %s(parent_id)`,
			tables.Files, tables.Files),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_uploaded_by ON %s(uploaded_by)`,
			tables.Files, tables.Files),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_department_id ON %s(department_id)`,
			tables.Files, tables.Files),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				content TEXT NOT NULL,
				file_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				user_id UUID NOT NULL REFERENCES %s(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, tables.Comments, tables.Files, tables.Users),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_file_id ON %s(file_id)`,
			tables.Comments, tables.Comments),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// DropSchema removes the tables. Child tables go first so the foreign
// keys never block the drop.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Comments, tables.Files, tables.Users, tables.Departments} {
		stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, table)
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}

	return nil
}
