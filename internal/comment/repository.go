package comment

import (
	"database/sql"
	"fmt"
	"time"
)

// Repository provides CRUD operations for comments.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a comment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Add stores a new comment. The text must survive ValidateText.
func (r *Repository) Add(text, user string, sentimentScore float64) (*Comment, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	ts := r.now().UnixMilli()
	result, err := r.db.Exec(
		"INSERT INTO comments (text, user, sentiment_score, created_at) VALUES (?, ?, ?, ?)",
		text, user, sentimentScore, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return &Comment{
		ID:             id,
		Text:           text,
		User:           user,
		SentimentScore: sentimentScore,
		Timestamp:      ts,
	}, nil
}

// List returns every comment, newest first.
func (r *Repository) List() (comments []*Comment, err error) {
	rows, err := r.db.Query(
		"SELECT id, text, user, sentiment_score, created_at FROM comments ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	comments = make([]*Comment, 0)
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.User, &c.SentimentScore, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

// Delete removes a comment by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment %d not found", id)
	}

	return nil
}
