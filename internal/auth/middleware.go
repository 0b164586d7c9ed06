package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

type ctxKey struct{}

// RequireSession rejects requests without a session with 401 and stores the
// session user in the request context for next.
func RequireSession(sessions *SessionStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := sessions.User(r)
		if err != nil {
			if !errors.Is(err, ErrNoSession) {
				slog.Error("validating session", "error", err)
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			http.Error(w, "login required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
	})
}

// UserFromContext returns the user stored by RequireSession, or "".
func UserFromContext(r *http.Request) string {
	user, _ := r.Context().Value(ctxKey{}).(string)
	return user
}
