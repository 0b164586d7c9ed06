package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetupDevMode(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	logger := Setup(&buf, true)

	slog.Debug("test debug")
	logger.Info("test info")

	out := buf.String()
	if !strings.Contains(out, "test debug") {
		t.Error("expected debug message visible in dev mode")
	}
	if !strings.Contains(out, "level=INFO") {
		t.Error("expected text handler output")
	}
}

func TestSetupProdMode(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	var buf bytes.Buffer
	Setup(&buf, false)

	slog.Debug("hidden")
	slog.Info("shown", "k", "v")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug should be suppressed in prod mode")
	}
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "shown" || entry["k"] != "v" {
		t.Errorf("entry = %v", entry)
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLog   bool
		wantLevel string
	}{
		{"ok request", "/data", http.StatusOK, true, "level=INFO"},
		{"client error", "/missing", http.StatusNotFound, true, "level=WARN"},
		{"server error", "/data", http.StatusInternalServerError, true, "level=ERROR"},
		{"static skipped", "/static/style.css", http.StatusOK, false, ""},
		{"health skipped", "/health", http.StatusOK, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := slog.Default()
			defer slog.SetDefault(old)

			var buf bytes.Buffer
			slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

			handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			out := buf.String()
			if !tt.wantLog {
				if out != "" {
					t.Errorf("expected no log, got %q", out)
				}
				return
			}
			for _, want := range []string{tt.wantLevel, "method=GET", "path=" + tt.path, "bytes=5"} {
				if !strings.Contains(out, want) {
					t.Errorf("log %q missing %q", out, want)
				}
			}
		})
	}
}
