// Package web provides the HTTP server behind the portfolio About page.
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/evcraddock/portfolio/internal/auth"
	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var defaultGreetings = []string{
	"Hello!",
	"¡Hola!",
	"Bonjour!",
	"Olá!",
	"Ciao!",
	"Hallo!",
}

// Server is the portfolio HTTP server.
type Server struct {
	commentRepo *comment.Repository
	sessions    *auth.SessionStore
	greetings   []string
	templates   *template.Template
	handler     http.Handler
}

// NewServer creates a web server backed by the given database.
func NewServer(db *sql.DB, cfg auth.Config) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	greetings := cfg.Greetings
	if len(greetings) == 0 {
		greetings = defaultGreetings
	}

	s := &Server{
		commentRepo: comment.NewRepository(db),
		sessions:    auth.NewSessionStore(db, cfg),
		greetings:   greetings,
		templates:   tmpl,
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/data", s.handleData)
	mux.HandleFunc("/home", s.handleHome)
	mux.HandleFunc("/greeting", s.handleGreeting)
	mux.HandleFunc("/about/", s.handleAbout)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/", s.handleRoot)

	s.handler = logging.RequestLogger(mux)
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	if n, err := s.sessions.Cleanup(); err != nil {
		slog.Warn("cleaning up sessions", "error", err)
	} else if n > 0 {
		slog.Info("removed expired sessions", "count", n)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("starting server", "addr", "http://localhost"+srv.Addr+"/about/")
	return srv.ListenAndServe()
}

// handleRoot sends visitors to the About page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/about/", http.StatusFound)
}

// localPath returns next if it is a same-site path, otherwise /about/.
func localPath(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.HasPrefix(next, "/\\") {
		return next
	}
	return "/about/"
}
