package email

import (
	"strings"

	"gopkg.in/gomail.v2"
)

// compose turns m into a MIME message. A text and an HTML body become a
// multipart/alternative with the text part first.
func compose(from string, m Message) (*gomail.Message, error) {
	from = strings.TrimSpace(from)
	to := nonBlank(m.To)
	subject := strings.TrimSpace(m.Subject)
	text, html := strings.TrimSpace(m.TextBody) != "", strings.TrimSpace(m.HTMLBody) != ""

	switch {
	case from == "":
		return nil, invalid("missing sender")
	case len(to) == 0:
		return nil, invalid("no recipients")
	case subject == "":
		return nil, invalid("missing subject")
	case !text && !html:
		return nil, invalid("empty body")
	}

	msg := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	msg.SetHeaders(map[string][]string{
		"From":    {from},
		"To":      to,
		"Subject": {subject},
	})
	optional := map[string][]string{
		"Cc":       nonBlank(m.CC),
		"Bcc":      nonBlank(m.BCC),
		"Reply-To": nonBlank([]string{m.ReplyTo}),
	}
	for name, values := range optional {
		if len(values) > 0 {
			msg.SetHeader(name, values...)
		}
	}
	for name, value := range m.Headers {
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name != "" && value != "" {
			msg.SetHeader(name, value)
		}
	}

	if text {
		msg.SetBody("text/plain", m.TextBody)
		if html {
			msg.AddAlternative("text/html", m.HTMLBody)
		}
	} else {
		msg.SetBody("text/html", m.HTMLBody)
	}
	return msg, nil
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
