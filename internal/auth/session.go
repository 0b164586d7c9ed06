package auth

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	sessionExpiry = 30 * 24 * time.Hour
	// CookieName is the session cookie set on login.
	CookieName  = "pf_session"
	maxNickname = 64
)

// ErrNoSession is returned when a request carries no valid session.
var ErrNoSession = errors.New("no session")

// SessionStore manages visitor sessions in SQLite.
type SessionStore struct {
	db     *sql.DB
	secure bool
}

// NewSessionStore creates a session store.
func NewSessionStore(db *sql.DB, cfg Config) *SessionStore {
	return &SessionStore{db: db, secure: cfg.SecureCookies()}
}

// ValidateNickname trims a nickname and checks it is usable as a comment author.
func ValidateNickname(nickname string) (string, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return "", fmt.Errorf("nickname is required")
	}
	if len(nickname) > maxNickname {
		return "", fmt.Errorf("nickname must be at most %d bytes", maxNickname)
	}
	return nickname, nil
}

// Create starts a session for user and sets the cookie.
func (s *SessionStore) Create(w http.ResponseWriter, user string) error {
	id, err := generateSessionID()
	if err != nil {
		return fmt.Errorf("generating session ID: %w", err)
	}

	expiresAt := time.Now().Add(sessionExpiry)
	if _, err := s.db.Exec(
		"INSERT INTO sessions (id, user, expires_at) VALUES (?, ?, ?)",
		id, user, expiresAt,
	); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// User returns the nickname of the request's session, or ErrNoSession.
func (s *SessionStore) User(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	var user string
	var expiresAt time.Time
	err = s.db.QueryRow(
		"SELECT user, expires_at FROM sessions WHERE id = ?", cookie.Value,
	).Scan(&user, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("querying session: %w", err)
	}

	if time.Now().After(expiresAt) {
		if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", cookie.Value); err != nil {
			return "", fmt.Errorf("deleting expired session: %w", err)
		}
		return "", ErrNoSession
	}

	return user, nil
}

// Destroy removes the request's session and clears the cookie.
func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", cookie.Value); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Cleanup removes expired sessions and reports how many were removed.
func (s *SessionStore) Cleanup() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, fmt.Errorf("cleaning up sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return n, nil
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
