package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema. Every statement is idempotent so the
// runner is safe to execute on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			employee_code VARCHAR(50) UNIQUE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			role VARCHAR(20) NOT NULL DEFAULT 'employee',
			branch VARCHAR(100),
			is_active BOOLEAN NOT NULL DEFAULT true,
			last_login_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS attendance_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			day DATE NOT NULL,
			check_in TIMESTAMPTZ NOT NULL,
			check_out TIMESTAMPTZ,
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			check_in_remarks TEXT NOT NULL DEFAULT '',
			check_out_remarks TEXT NOT NULL DEFAULT '',
			duration_minutes INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// The invariant: at most one active session per (user, day). The
		// check-in pre-check alone is racy under concurrent requests; this
		// index is the authoritative enforcement and its violation is
		// reported to callers as "already checked in".
		`CREATE UNIQUE INDEX IF NOT EXISTS one_active_session_per_day
			ON attendance_sessions (user_id, day) WHERE status = 'active'`,

		`CREATE INDEX IF NOT EXISTS attendance_sessions_user_day
			ON attendance_sessions (user_id, day)`,

		`CREATE TABLE IF NOT EXISTS announcements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			body TEXT NOT NULL,
			created_by UUID NOT NULL REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			event_date DATE NOT NULL,
			location VARCHAR(255) NOT NULL DEFAULT '',
			created_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS event_images (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			image_url VARCHAR(500) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			day DATE NOT NULL,
			branch VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS policies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT 'general',
			body TEXT NOT NULL DEFAULT '',
			document_url VARCHAR(500),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS ideas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			title VARCHAR(255) NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS idea_likes (
			idea_id UUID NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (idea_id, user_id)
		)`,

		`CREATE TABLE IF NOT EXISTS idea_comments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			idea_id UUID NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id),
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS thoughts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			quote TEXT NOT NULL,
			author VARCHAR(255) NOT NULL DEFAULT '',
			branch VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
