package comment

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		score float64
		want  Tone
	}{
		{-0.2, ToneNegative},
		{-1, ToneNegative},
		{0, ToneNeutral},
		{math.Copysign(0, -1), ToneNeutral},
		{math.NaN(), ToneNeutral},
		{0.4, TonePositive},
		{math.Inf(1), TonePositive},
	}

	for _, tt := range tests {
		if got := ClassifyTone(tt.score); got != tt.want {
			t.Errorf("ClassifyTone(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestToneLabel(t *testing.T) {
	tests := []struct {
		tone Tone
		want string
	}{
		{ToneNegative, "Negative"},
		{ToneNeutral, "Neutral"},
		{TonePositive, "Positive"},
		{Tone("bogus"), "Neutral"},
	}

	for _, tt := range tests {
		if got := tt.tone.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.tone, got, tt.want)
		}
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "Hello!", "Hello!", false},
		{"trims", "  hi there \n", "hi there", false},
		{"empty", "", "", true},
		{"spaces", "   ", "", true},
		{"tabs and newlines", "\t\n\r ", "", true},
		{"keeps markup", "<b>bold</b>", "<b>bold</b>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateText(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyText) {
					t.Fatalf("err = %v, want ErrEmptyText", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreatedAt(t *testing.T) {
	c := Comment{Timestamp: 1700000000123}
	want := time.UnixMilli(1700000000123)
	if !c.CreatedAt().Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt(), want)
	}
}
