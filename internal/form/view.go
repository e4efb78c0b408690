package form

import "github.com/astraclean/offerte_backend/pkg/validate"

// View is everything the handler needs from the page: field values, an
// error slot per field, a submit control with a busy state and the
// confirmation and failure surfaces.
type View interface {
	Value(f validate.Field) string

	ShowFieldError(f validate.Field, msg string)
	ClearFieldError(f validate.Field)
	Focus(f validate.Field)

	SetSubmitting(busy bool)
	ShowConfirmation(name string)
	ShowFailure(msg string)
	Reset()
}

// CaptchaView is implemented by views that host a bot-detection widget.
type CaptchaView interface {
	CaptchaToken() string
}
