package feed

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/evcraddock/portfolio/internal/comment"
)

// PageSource supplies everything the About page needs from the backend.
type PageSource interface {
	Source
	HomeURL(ctx context.Context) (string, error)
}

// Refresh fetches the comment list and the login state concurrently, then
// renders both into page on the calling goroutine. A failure of one fetch
// does not prevent the other from being applied; both errors are returned.
func Refresh(ctx context.Context, src PageSource, page *Page, state *ViewState, opts ...Option) (Result, error) {
	history, err := page.Element(HistoryID)
	if err != nil {
		return Result{}, err
	}

	r := NewRenderer(src, history, opts...)
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var (
		comments []comment.Comment
		home     string
		listErr  error
		homeErr  error
	)

	// A plain Group: one failed fetch must not cancel the other. Each
	// goroutine returns its own error and also keeps it for the join below.
	var g errgroup.Group
	g.Go(func() error {
		comments, listErr = src.ListComments(ctx)
		return listErr
	})
	g.Go(func() error {
		home, homeErr = src.HomeURL(ctx)
		return homeErr
	})
	// Wait reports only the first error; both are joined below.
	_ = g.Wait()

	var res Result
	if listErr != nil {
		r.logger.Warn("loading comments failed", "error", listErr)
	} else {
		res = r.Render(comments)
	}

	if homeErr != nil {
		r.logger.Warn("loading login state failed", "error", homeErr)
	} else {
		state.SetHome(home)
	}
	state.Apply(page)

	return res, errors.Join(listErr, homeErr)
}
