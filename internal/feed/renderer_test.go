package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/portfolio/internal/client"
	"github.com/evcraddock/portfolio/internal/comment"
)

func TestLoadCommentsExample(t *testing.T) {
	p := testPage(t)
	history := element(t, p, HistoryID)
	src := &fakeSource{comments: []comment.Comment{
		{Text: "Hello!", User: "alice", SentimentScore: 0.4},
		{Text: "Hi", User: "bob", SentimentScore: -0.2},
	}}

	res, err := NewRenderer(src, history).LoadComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Rendered: 2}, res)
	assert.Equal(t, []string{"Hello!", "Hi"}, history.Entries())
	assert.Equal(t, 2, p.doc.Find("#history > li.comment > p").Length())
}

func TestLoadCommentsCountAndOrder(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			history := element(t, testPage(t), HistoryID)
			src := &fakeSource{}
			var want []string
			for i := 0; i < n; i++ {
				text := fmt.Sprintf("comment %03d", i)
				src.comments = append(src.comments, comment.Comment{Text: text})
				want = append(want, text)
			}

			res, err := NewRenderer(src, history).LoadComments(context.Background())
			require.NoError(t, err)
			assert.Equal(t, n, res.Rendered)
			assert.Equal(t, n, history.Len())
			if n == 0 {
				assert.Empty(t, history.Entries())
				return
			}
			assert.Equal(t, want, history.Entries())
		})
	}
}

func TestLoadCommentsAppendAccumulates(t *testing.T) {
	history := element(t, testPage(t), HistoryID)
	src := &fakeSource{comments: []comment.Comment{{Text: "a"}, {Text: "b"}}}
	r := NewRenderer(src, history)

	for i := 0; i < 3; i++ {
		_, err := r.LoadComments(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, history.Entries())
}

func TestLoadCommentsReplace(t *testing.T) {
	history := element(t, testPage(t), HistoryID)
	src := &fakeSource{comments: []comment.Comment{{Text: "a"}, {Text: "b"}}}
	r := NewRenderer(src, history, WithMode(ModeReplace))

	first, err := r.LoadComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Rendered: 2}, first)

	src.comments = []comment.Comment{{Text: "c"}}
	second, err := r.LoadComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Rendered: 1, Cleared: 2}, second)
	assert.Equal(t, []string{"c"}, history.Entries())
}

func TestLoadCommentsFailureLeavesContainer(t *testing.T) {
	tests := []struct {
		name string
		err  error
		mode Mode
	}{
		{"fetch error append", &client.FetchError{Method: "GET", URL: "/data", Err: errNetwork}, ModeAppend},
		{"fetch error replace", &client.FetchError{Method: "GET", URL: "/data", Err: errNetwork}, ModeReplace},
		{"parse error replace", &client.ParseError{URL: "/data", Err: errors.New("unexpected EOF")}, ModeReplace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := element(t, testPage(t), HistoryID)
			src := &fakeSource{comments: []comment.Comment{{Text: "kept"}}}
			r := NewRenderer(src, history, WithMode(tt.mode), WithLogger(discardLogger()))
			_, err := r.LoadComments(context.Background())
			require.NoError(t, err)

			src.listErr = tt.err
			var res Result
			require.NotPanics(t, func() {
				res, err = r.LoadComments(context.Background())
			})
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, Result{}, res)
			assert.Equal(t, []string{"kept"}, history.Entries())
		})
	}
}

func TestLoadCommentsTimeout(t *testing.T) {
	history := element(t, testPage(t), HistoryID)
	src := &fakeSource{block: true}
	r := NewRenderer(src, history, WithTimeout(10*time.Millisecond), WithLogger(discardLogger()))

	_, err := r.LoadComments(context.Background())
	var fe *client.FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, history.Len())
}

func TestTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"internal   spaces\n\tand\ttabs",
		"héllo wörld ✓ 日本語 🎉",
		"<script>alert('x')</script>",
		"<b>bold</b> & <i>italic</i>",
		"&amp; &lt;p&gt; &#39;",
		`"quoted" 'single'`,
	}

	p := testPage(t)
	history := element(t, p, HistoryID)
	src := &fakeSource{}
	for _, in := range inputs {
		src.comments = append(src.comments, comment.Comment{Text: in})
	}

	_, err := NewRenderer(src, history).LoadComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, inputs, history.Entries())

	// Markup-significant text must not become markup after serialization.
	out, err := p.HTML()
	require.NoError(t, err)
	reparsed, err := ParsePage(strings.NewReader(out))
	require.NoError(t, err)
	assert.Zero(t, reparsed.doc.Find("#history script, #history b, #history i").Length())
	assert.Equal(t, inputs, element(t, reparsed, HistoryID).Entries())
}

func TestTraceLogsTone(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	history := element(t, testPage(t), HistoryID)
	src := &fakeSource{comments: []comment.Comment{
		{Text: "bad", User: "a", SentimentScore: -0.5},
		{Text: "meh", User: "b", SentimentScore: 0},
		{Text: "good", User: "c", SentimentScore: 0.9},
	}}

	_, err := NewRenderer(src, history, WithLogger(logger)).LoadComments(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Negative comment")
	assert.Contains(t, out, "Neutral comment")
	assert.Contains(t, out, "Positive comment")
	assert.Contains(t, out, "user=c")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"", ModeAppend, true},
		{"append", ModeAppend, true},
		{"replace", ModeReplace, true},
		{"clear", ModeAppend, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
	assert.Equal(t, "replace", ModeReplace.String())
	assert.Equal(t, "append", ModeAppend.String())
}
