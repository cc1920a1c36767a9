package email

import (
	"fmt"
	"strings"
)

// FeedbackRequestMessage builds the invitation email for one recipient.
// The response URL carries the request token so the eventual submission
// links back to the request.
func FeedbackRequestMessage(recipientEmail, recipientName, senderCompany, personalMessage, responseURL string) Message {
	greeting := "Hi,"
	if recipientName != "" {
		greeting = fmt.Sprintf("Hi %s,", recipientName)
	}

	var text strings.Builder
	text.WriteString(greeting + "\n\n")
	if personalMessage != "" {
		text.WriteString(personalMessage + "\n\n")
	}
	fmt.Fprintf(&text, "%s would love to hear about your experience. It only takes a minute:\n\n%s\n\nThank you!\n", senderCompany, responseURL)

	html := fmt.Sprintf(`<p>%s</p>%s<p>%s would love to hear about your experience. It only takes a minute:</p><p><a href="%s">Share your feedback</a></p><p>Thank you!</p>`,
		greeting, htmlParagraph(personalMessage), senderCompany, responseURL)

	return Message{
		To:       recipientEmail,
		ToName:   recipientName,
		Subject:  fmt.Sprintf("%s would love your feedback", senderCompany),
		TextBody: text.String(),
		HTMLBody: html,
	}
}

// ReminderMessage builds the follow-up email for an unanswered request
func ReminderMessage(recipientEmail, recipientName, senderCompany, responseURL string) Message {
	greeting := "Hi,"
	if recipientName != "" {
		greeting = fmt.Sprintf("Hi %s,", recipientName)
	}

	text := fmt.Sprintf("%s\n\nJust a gentle reminder that %s asked for your feedback. It only takes a minute:\n\n%s\n\nThank you!\n",
		greeting, senderCompany, responseURL)

	html := fmt.Sprintf(`<p>%s</p><p>Just a gentle reminder that %s asked for your feedback. It only takes a minute:</p><p><a href="%s">Share your feedback</a></p><p>Thank you!</p>`,
		greeting, senderCompany, responseURL)

	return Message{
		To:       recipientEmail,
		ToName:   recipientName,
		Subject:  fmt.Sprintf("Reminder: %s would love your feedback", senderCompany),
		TextBody: text,
		HTMLBody: html,
	}
}

func htmlParagraph(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("<p>%s</p>", s)
}
