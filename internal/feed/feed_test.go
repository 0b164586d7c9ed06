package feed

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/comment"
)

const testMarkup = `<!DOCTYPE html>
<html><body>
<a id="reference" href=""></a>
<p id="comment-intro">Leave a comment</p>
<form id="showOnLogin" action="/data" method="POST" style="color: red">
<input id="text-input" name="text-input" value="   ">
</form>
<ul id="history"></ul>
</body></html>`

// fakeSource is an in-memory PageSource, Poster and TextSource.
type fakeSource struct {
	mu       sync.Mutex
	comments []comment.Comment
	listErr  error
	home     string
	homeErr  error
	text     string
	textErr  error
	block    bool

	listCalls int
	posted    []string
}

func (f *fakeSource) ListComments(ctx context.Context) ([]comment.Comment, error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return nil, &client.FetchError{Method: "GET", URL: "/data", Err: ctx.Err()}
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]comment.Comment, len(f.comments))
	copy(out, f.comments)
	return out, nil
}

func (f *fakeSource) HomeURL(ctx context.Context) (string, error) {
	return f.home, f.homeErr
}

func (f *fakeSource) Text(ctx context.Context, path string) (string, error) {
	if f.block {
		<-ctx.Done()
		return "", &client.FetchError{Method: "GET", URL: path, Err: ctx.Err()}
	}
	return f.text, f.textErr
}

func (f *fakeSource) AddComment(ctx context.Context, text string, score float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, text)
	return nil
}

func testPage(t *testing.T) *Page {
	t.Helper()
	p, err := ParsePage(strings.NewReader(testMarkup))
	require.NoError(t, err)
	return p
}

func element(t *testing.T, p *Page, id string) *Element {
	t.Helper()
	e, err := p.Element(id)
	require.NoError(t, err)
	return e
}

// discardLogger keeps expected warnings out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

var errNetwork = errors.New("connection refused")
