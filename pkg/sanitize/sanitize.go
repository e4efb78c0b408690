// Package sanitize strips markup from user input before it is relayed.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func policy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Text removes every HTML element from s and trims it. Entities produced by
// the policy are decoded again since the result goes into a plain-text mail.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	cleaned := policy().Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Email drops every character that cannot appear in an address.
func Email(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.TrimSpace(s) {
		if allowedInEmail(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowedInEmail(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("!#$%&'*+-=?^_`{|}~@.[]", r)
}
