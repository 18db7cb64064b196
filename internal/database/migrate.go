package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		handle TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		num_employees INTEGER NOT NULL DEFAULT 0 CHECK (num_employees >= 0),
		description TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		salary INTEGER NOT NULL DEFAULT 0,
		equity REAL NOT NULL DEFAULT 0 CHECK (equity >= 0 AND equity <= 1),
		company_handle TEXT NOT NULL REFERENCES companies (handle),
		date_posted TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		photo_url TEXT NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT false
	)`,

	// app_pk exists so the single-key update/delete builders apply to the
	// composite-keyed resource as well.
	`CREATE TABLE IF NOT EXISTS applications (
		username TEXT NOT NULL REFERENCES users (username),
		job_id INTEGER NOT NULL REFERENCES jobs (id),
		state TEXT NOT NULL CHECK (state IN ('interested', 'applied', 'accepted', 'rejected')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		app_pk TEXT GENERATED ALWAYS AS (username || ' ' || job_id::text) STORED UNIQUE,
		PRIMARY KEY (username, job_id)
	)`,

	`CREATE TABLE IF NOT EXISTS technologies (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS user_technologies (
		username TEXT NOT NULL REFERENCES users (username),
		technologies_id INTEGER NOT NULL REFERENCES technologies (id),
		PRIMARY KEY (username, technologies_id)
	)`,

	`CREATE TABLE IF NOT EXISTS job_technologies (
		job_id INTEGER NOT NULL REFERENCES jobs (id),
		technologies_id INTEGER NOT NULL REFERENCES technologies (id),
		PRIMARY KEY (job_id, technologies_id)
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db Querier) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
