package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schemaVersion = 1

// Migrate applies the schema to the sqlite database, tracked through a meta
// table so re-running on an existing file is a no-op.
func Migrate(db *sqlx.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL UNIQUE,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            admin BOOLEAN NOT NULL DEFAULT 0,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS media (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            kind TEXT NOT NULL,
            available BOOLEAN NOT NULL DEFAULT 1,
            author TEXT,
            isbn TEXT,
            artist TEXT,
            genre TEXT,
            duration_minutes INTEGER
        );`,
		`CREATE TABLE IF NOT EXISTS borrow_records (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL REFERENCES users(id),
            media_id INTEGER NOT NULL REFERENCES media(id),
            kind TEXT NOT NULL,
            title TEXT NOT NULL,
            borrow_date DATETIME NOT NULL,
            due_date DATETIME NOT NULL,
            returned BOOLEAN NOT NULL DEFAULT 0,
            return_date DATETIME,
            fine TEXT NOT NULL DEFAULT '0'
        );`,
		`CREATE INDEX IF NOT EXISTS idx_borrow_records_user_active
            ON borrow_records(user_id, returned);`,
		`CREATE INDEX IF NOT EXISTS idx_borrow_records_media_active
            ON borrow_records(media_id, returned);`,
		`CREATE TABLE IF NOT EXISTS fines (
            user_id INTEGER PRIMARY KEY REFERENCES users(id),
            total_fine TEXT NOT NULL DEFAULT '0'
        );`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}
