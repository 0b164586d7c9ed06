// Package feed loads visitor comments and greeting text from the backend and
// renders them into an HTML page.
package feed

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/evcraddock/portfolio/internal/comment"
)

// Source supplies the ordered comment list. *client.Client satisfies it.
type Source interface {
	ListComments(ctx context.Context) ([]comment.Comment, error)
}

// Target is the container rendered comment nodes are appended to.
type Target interface {
	Append(nodes ...*html.Node)
	Clear() int
}

// Mode controls what happens to existing container content on reload.
type Mode int

const (
	// ModeAppend adds new nodes after whatever the container already holds.
	ModeAppend Mode = iota
	// ModeReplace clears the container before rendering a successful load.
	ModeReplace
)

// ParseMode converts "append" or "replace" into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "append":
		return ModeAppend, true
	case "replace":
		return ModeReplace, true
	default:
		return ModeAppend, false
	}
}

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "append"
}

// Result describes one successful load.
type Result struct {
	Rendered int // nodes appended
	Cleared  int // nodes removed first (ModeReplace only)
}

// Renderer materializes comments as list entries in a container.
type Renderer struct {
	src     Source
	target  Target
	mode    Mode
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMode sets the reload behaviour. The default is ModeAppend.
func WithMode(m Mode) Option {
	return func(r *Renderer) { r.mode = m }
}

// WithTimeout bounds each load. Zero means no bound beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) { r.timeout = d }
}

// WithLogger sets the logger used for traces and load failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a renderer reading from src and writing into target.
func NewRenderer(src Source, target Target, opts ...Option) *Renderer {
	r := configure(opts)
	r.src, r.target = src, target
	return r
}

func configure(opts []Option) *Renderer {
	r := &Renderer{mode: ModeAppend}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// LoadComments fetches the comment list and renders one node per comment,
// in the order received. On failure the error (a *client.FetchError or
// *client.ParseError when src is a *client.Client) is logged and returned,
// and the container is left exactly as it was.
func (r *Renderer) LoadComments(ctx context.Context) (Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	comments, err := r.src.ListComments(ctx)
	if err != nil {
		r.logger.Warn("loading comments failed", "error", err)
		return Result{}, err
	}

	return r.Render(comments), nil
}

// Render writes already-fetched comments into the container.
func (r *Renderer) Render(comments []comment.Comment) Result {
	var res Result
	if r.mode == ModeReplace {
		res.Cleared = r.target.Clear()
	}

	for i := range comments {
		c := &comments[i]
		r.target.Append(commentNode(c))
		res.Rendered++
		r.trace(c)
	}

	return res
}

func (r *Renderer) trace(c *comment.Comment) {
	r.logger.Debug(c.Tone().Label()+" comment",
		"text", c.Text,
		"sentiment_score", c.SentimentScore,
		"user", c.User,
	)
}

// commentNode builds <li class="comment"><p>TEXT</p></li>. TEXT is a text
// node, so markup in the comment is shown literally.
func commentNode(c *comment.Comment) *html.Node {
	li := &html.Node{
		Type:     html.ElementNode,
		Data:     "li",
		DataAtom: atom.Li,
		Attr:     []html.Attribute{{Key: "class", Val: "comment"}},
	}
	p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	p.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
	li.AppendChild(p)
	return li
}
