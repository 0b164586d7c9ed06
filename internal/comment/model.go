// Package comment provides the comment domain model and data access.
package comment

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyText is returned when a comment body is empty or only whitespace.
var ErrEmptyText = errors.New("invalid comment")

// Comment is a visitor comment left on the About page.
// SentimentScore is precomputed elsewhere and never interpreted beyond its sign.
type Comment struct {
	ID             int64   `json:"id"`
	Text           string  `json:"text"`
	User           string  `json:"user"`
	SentimentScore float64 `json:"sentiment_score"`
	Timestamp      int64   `json:"timestamp"` // milliseconds since the Unix epoch
}

// CreatedAt returns the comment timestamp as a time.Time.
func (c *Comment) CreatedAt() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// Tone is the polarity of a comment derived from the sign of its sentiment score.
type Tone string

const (
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
)

// Label returns a human-readable label for the tone.
func (t Tone) Label() string {
	switch t {
	case ToneNegative:
		return "Negative"
	case TonePositive:
		return "Positive"
	default:
		return "Neutral"
	}
}

// ClassifyTone maps a sentiment score to a tone. NaN is neutral.
func ClassifyTone(score float64) Tone {
	switch {
	case score < 0:
		return ToneNegative
	case score > 0:
		return TonePositive
	default:
		return ToneNeutral
	}
}

// Tone returns the comment's tone.
func (c *Comment) Tone() Tone {
	return ClassifyTone(c.SentimentScore)
}

// ValidateText trims the input and rejects it if nothing is left.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}
