package db

import (
	"database/sql"
	"fmt"
)

// migrations run in order on every Open; each must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS comments (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		text            TEXT    NOT NULL,
		user            TEXT    NOT NULL DEFAULT '',
		sentiment_score REAL    NOT NULL DEFAULT 0,
		created_at      INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT     PRIMARY KEY,
		user       TEXT     NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
