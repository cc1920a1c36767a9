package social

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short text unchanged",
			text: "Great product, saved us hours.",
			want: "Great product, saved us hours.",
		},
		{
			name: "whitespace trimmed",
			text: "  loved it  ",
			want: "loved it",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.text))
		})
	}
}

func TestQuote_LongTextCutAtWordBoundary(t *testing.T) {
	long := strings.Repeat("wonderful product ", 30)
	got := Quote(long)

	assert.LessOrEqual(t, len(got), maxQuoteLen+len("…"))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.NotContains(t, got, "wonderfu…", "should not cut mid-word")
}

func TestCaption(t *testing.T) {
	got := Caption("Saved us hours every week", "Pat Doe", "Acme Inc")

	assert.Contains(t, got, `"Saved us hours every week"`)
	assert.Contains(t, got, "— Pat Doe")
	assert.Contains(t, got, "#acmeinc")
}

func TestCaption_NoAuthorNoCompany(t *testing.T) {
	got := Caption("Saved us hours", "", "")

	assert.Contains(t, got, `"Saved us hours"`)
	assert.NotContains(t, got, "—")
	assert.Contains(t, got, "#customerlove")
}

func TestCaptionWriter_PolishWithoutKeyReturnsFallback(t *testing.T) {
	w := NewCaptionWriter("")
	got := w.Polish(context.Background(), "fallback caption", "linkedin")

	assert.Equal(t, "fallback caption", got)
}
