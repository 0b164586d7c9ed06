package feed

import "context"

// TextSource fetches a plain-text body. *client.Client satisfies it.
type TextSource interface {
	Text(ctx context.Context, path string) (string, error)
}

// TextTarget is an element whose content can be replaced with text.
type TextTarget interface {
	SetText(text string)
}

// FetchAndRenderText fetches path and writes the body into target as text.
// Failures are logged and returned; target is untouched on failure.
// WithTimeout and WithLogger apply; WithMode has no effect.
func FetchAndRenderText(ctx context.Context, src TextSource, path string, target TextTarget, opts ...Option) error {
	cfg := configure(opts)
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	text, err := src.Text(ctx, path)
	if err != nil {
		cfg.logger.Warn("fetching text failed", "path", path, "error", err)
		return err
	}
	target.SetText(text)
	return nil
}
