package feed

import (
	"context"
	"fmt"

	"github.com/evcraddock/portfolio/internal/comment"
)

// Poster sends a new comment to the backend. *client.Client satisfies it.
type Poster interface {
	AddComment(ctx context.Context, text string, sentimentScore float64) error
}

// Submitter guards comment submission against blank input.
type Submitter struct {
	dst Poster
}

// NewSubmitter creates a Submitter posting to dst.
func NewSubmitter(dst Poster) *Submitter {
	return &Submitter{dst: dst}
}

// Submit validates input and posts it. Blank input fails with
// comment.ErrEmptyText without contacting the backend.
func (s *Submitter) Submit(ctx context.Context, input string) error {
	text, err := comment.ValidateText(input)
	if err != nil {
		return err
	}
	if err := s.dst.AddComment(ctx, text, 0); err != nil {
		return fmt.Errorf("submitting comment: %w", err)
	}
	return nil
}

// SubmitInput submits the current value of the page's comment input.
func (s *Submitter) SubmitInput(ctx context.Context, p *Page) error {
	input, err := p.Element(InputID)
	if err != nil {
		return err
	}
	return s.Submit(ctx, input.Value())
}
