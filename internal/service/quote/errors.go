package quote

import (
	"errors"
	"strings"

	"github.com/astraclean/offerte_backend/pkg/validate"
)

var (
	ErrCaptchaFailed = errors.New("captcha verification failed")
	ErrDelivery      = errors.New("quote request could not be delivered")
)

// ValidationError lists the first failing rule of every invalid field, in
// form order.
type ValidationError struct {
	Fields []validate.FieldError
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "\n")
}

func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

// ByField returns the messages keyed by wire name.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field.String()] = f.Message
	}
	return out
}
