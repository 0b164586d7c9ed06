package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/evcraddock/portfolio/internal/auth"
)

type loginData struct {
	Next     string
	Nickname string
	Error    string
}

// handleLogin shows the nickname form and starts a session on POST.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderLogin(w, http.StatusOK, loginData{Next: localPath(r.URL.Query().Get("next"))})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		next := localPath(r.FormValue("next"))

		nickname, err := auth.ValidateNickname(r.FormValue("nickname"))
		if err != nil {
			s.renderLogin(w, http.StatusBadRequest, loginData{Next: next, Nickname: r.FormValue("nickname"), Error: err.Error()})
			return
		}

		if err := s.sessions.Create(w, nickname); err != nil {
			http.Error(w, fmt.Sprintf("Error creating session: %v", err), http.StatusInternalServerError)
			return
		}
		slog.Info("visitor logged in", "user", nickname)
		http.Redirect(w, r, next, http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleLogout ends the session and returns to next.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Destroy(w, r); err != nil {
		http.Error(w, fmt.Sprintf("Error ending session: %v", err), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, localPath(r.URL.Query().Get("next")), http.StatusSeeOther)
}

func (s *Server) renderLogin(w http.ResponseWriter, status int, data loginData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "login.html", data); err != nil {
		slog.Error("rendering login page", "error", err)
	}
}
