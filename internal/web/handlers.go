package web

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/evcraddock/portfolio/internal/comment"
	"github.com/evcraddock/portfolio/internal/feed"
)

type aboutData struct {
	Greeting       string
	User           string
	HistoryVisible bool
}

// pageSource feeds the About page from the repository instead of over HTTP.
type pageSource struct {
	repo *comment.Repository
	home string
}

func (p pageSource) ListComments(ctx context.Context) ([]comment.Comment, error) {
	list, err := p.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]comment.Comment, len(list))
	for i, c := range list {
		out[i] = *c
	}
	return out, nil
}

func (p pageSource) HomeURL(ctx context.Context) (string, error) {
	return p.home, nil
}

// handleAbout renders the About page with the comment history filled in.
func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/about/" && r.URL.Path != "/about/about.html" {
		http.NotFound(w, r)
		return
	}

	user, _ := s.sessions.User(r)
	data := aboutData{
		Greeting:       s.greeting(),
		User:           user,
		HistoryVisible: r.URL.Query().Get("history") != "hidden",
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "about.html", data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
		return
	}

	page, err := feed.ParsePage(&buf)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
		return
	}

	state := &feed.ViewState{HistoryVisible: data.HistoryVisible}
	src := pageSource{repo: s.commentRepo, home: s.homeURL(r)}
	if _, err := feed.Refresh(r.Context(), src, page, state, feed.WithMode(feed.ModeReplace)); err != nil {
		// The page is still useful without comments.
		slog.Warn("rendering about page", "error", err)
	}

	var out bytes.Buffer
	if err := page.Render(&out); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := out.WriteTo(w); err != nil {
		slog.Error("writing about page", "error", err)
	}
}
