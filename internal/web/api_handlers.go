package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/portfolio/internal/auth"
	"github.com/evcraddock/portfolio/internal/comment"
)

const (
	loginURL  = "/login?next=/about/"
	logoutURL = "/logout?next=/about/"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleData serves the comment list and accepts new comments.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.apiListComments(w)
	case http.MethodPost:
		auth.RequireSession(s.sessions, http.HandlerFunc(s.apiAddComment)).ServeHTTP(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// apiListComments returns every comment, newest first.
func (s *Server) apiListComments(w http.ResponseWriter) {
	comments, err := s.commentRepo.List()
	if err != nil {
		apiError(w, fmt.Sprintf("loading comments: %v", err), http.StatusInternalServerError)
		return
	}
	apiJSON(w, comments, http.StatusOK)
}

// apiAddComment stores the posted form and sends the visitor back to the About page.
func (s *Server) apiAddComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	score, err := parseScore(r.FormValue("sentiment_score"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := auth.UserFromContext(r)
	if _, err := s.commentRepo.Add(r.FormValue("text-input"), user, score); err != nil {
		if errors.Is(err, comment.ErrEmptyText) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Error adding comment: %v", err), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/about/", http.StatusSeeOther)
}

// parseScore parses an optional sentiment score; empty means 0.
func parseScore(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("sentiment_score must be a finite number")
	}
	return f, nil
}

// handleHome answers with the login or logout URL for the visitor.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := fmt.Fprintln(w, s.homeURL(r)); err != nil {
		slog.Error("writing home response", "error", err)
	}
}

func (s *Server) homeURL(r *http.Request) string {
	if _, err := s.sessions.User(r); err == nil {
		return logoutURL
	}
	return loginURL
}

// handleGreeting answers with a random greeting as plain text.
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprintln(w, s.greeting()); err != nil {
		slog.Error("writing greeting", "error", err)
	}
}

func (s *Server) greeting() string {
	return s.greetings[rand.Intn(len(s.greetings))]
}
