package social

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	openai "github.com/sashabaranov/go-openai"
)

const maxQuoteLen = 220

// Quote trims response text down to a shareable quote, cutting at a
// word boundary
func Quote(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxQuoteLen {
		return text
	}

	cut := text[:maxQuoteLen]
	if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, ".,;:") + "…"
}

// Caption builds the default share caption for a testimonial
func Caption(quote, author, companyName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"%s\"", quote)
	if author != "" {
		fmt.Fprintf(&b, " — %s", author)
	}
	if companyName != "" {
		fmt.Fprintf(&b, "\n\nThanks for the kind words! #customerlove #%s", hashtag(companyName))
	} else {
		b.WriteString("\n\nThanks for the kind words! #customerlove")
	}
	return b.String()
}

func hashtag(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CaptionWriter optionally polishes captions with OpenAI
type CaptionWriter struct {
	client *openai.Client
}

// NewCaptionWriter creates a caption writer. With an empty API key the
// writer always returns the fallback caption.
func NewCaptionWriter(apiKey string) *CaptionWriter {
	w := &CaptionWriter{}
	if apiKey != "" {
		w.client = openai.NewClient(apiKey)
	}
	return w
}

// Polish rewrites the caption for the target platform, or returns the
// fallback on any error
func (w *CaptionWriter) Polish(ctx context.Context, fallback, platform string) string {
	if w.client == nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"Rewrite this customer testimonial caption for %s. Keep the quote verbatim, keep it under 280 characters, friendly tone, at most two hashtags:\n\n%s",
		platform, fallback,
	)

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
		MaxTokens: 300,
	})
	if err != nil || len(resp.Choices) == 0 {
		return fallback
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
