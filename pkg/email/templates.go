package email

import (
	"fmt"
	"html"
	"strings"
)

// QuoteField is one labelled line of a relayed quote request.
type QuoteField struct {
	Label string
	Value string
}

// QuoteEmailData contains what the relay puts into a quote request mail.
type QuoteEmailData struct {
	Recipient string
	Subject   string
	ReplyTo   string
	Fields    []QuoteField
}

// BuildQuoteRequestEmail renders a quote request. The text body is one
// "Label: value" line per field.
func BuildQuoteRequestEmail(data QuoteEmailData) Message {
	subject := strings.TrimSpace(data.Subject)
	if subject == "" {
		subject = "Nieuwe offerte aanvraag"
	}

	lines := make([]string, 0, len(data.Fields))
	rows := make([]string, 0, len(data.Fields))
	for _, f := range data.Fields {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Value))
		rows = append(rows, fmt.Sprintf(
			`<tr><th style="text-align: left; padding: 6px 12px 6px 0; vertical-align: top;">%s</th><td style="padding: 6px 0; white-space: pre-wrap;">%s</td></tr>`,
			html.EscapeString(f.Label), html.EscapeString(f.Value)))
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <table>
        %s
    </table>
</body>
</html>`, html.EscapeString(subject), strings.Join(rows, "\n        "))

	return Message{
		To:       []string{data.Recipient},
		ReplyTo:  data.ReplyTo,
		Subject:  subject,
		TextBody: strings.Join(lines, "\n"),
		HTMLBody: htmlBody,
	}
}
