package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackRequestMessage(t *testing.T) {
	msg := FeedbackRequestMessage("pat@example.com", "Pat", "Acme", "Thanks for being a customer!", "https://app.example.com/f/slug?t=tok")

	assert.Equal(t, "pat@example.com", msg.To)
	assert.Equal(t, "Acme would love your feedback", msg.Subject)
	assert.Contains(t, msg.TextBody, "Hi Pat,")
	assert.Contains(t, msg.TextBody, "Thanks for being a customer!")
	assert.Contains(t, msg.TextBody, "https://app.example.com/f/slug?t=tok")
	assert.Contains(t, msg.HTMLBody, `href="https://app.example.com/f/slug?t=tok"`)
}

func TestFeedbackRequestMessage_NoNameNoMessage(t *testing.T) {
	msg := FeedbackRequestMessage("pat@example.com", "", "Acme", "", "https://app.example.com/f/slug?t=tok")

	assert.Contains(t, msg.TextBody, "Hi,")
	assert.NotContains(t, msg.HTMLBody, "<p></p>")
}

func TestReminderMessage(t *testing.T) {
	msg := ReminderMessage("pat@example.com", "Pat", "Acme", "https://app.example.com/f/slug?t=tok")

	assert.Equal(t, "Reminder: Acme would love your feedback", msg.Subject)
	assert.Contains(t, msg.TextBody, "gentle reminder")
	assert.Contains(t, msg.TextBody, "https://app.example.com/f/slug?t=tok")
}
