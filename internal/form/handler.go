// Package form drives the quote form: live field validation, the submit
// gate and the single in-flight submission.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/astraclean/offerte_backend/pkg/submit"
	"github.com/astraclean/offerte_backend/pkg/validate"
)

// FailureMessage is shown when the backend rejects or never answers.
const FailureMessage = "Er is iets misgegaan. Probeer het later opnieuw."

var (
	ErrInvalid  = errors.New("form has invalid fields")
	ErrInFlight = errors.New("a submission is already in flight")
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Submitter delivers a payload. *submit.Client implements it.
type Submitter interface {
	Submit(ctx context.Context, p submit.Payload) submit.Outcome
}

type Handler struct {
	mu        sync.Mutex
	state     State
	view      View
	submitter Submitter
	validator *validate.Validator
	logger    *slog.Logger
}

type Option func(*Handler)

func WithTable(t *validate.Table) Option {
	return func(h *Handler) { h.validator = validate.New(t) }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

func New(view View, submitter Submitter, opts ...Option) *Handler {
	h := &Handler{
		view:      view,
		submitter: submitter,
		validator: validate.New(nil),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Errors returns the current validation result.
func (h *Handler) Errors() validate.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.validator.Errors()
}

// Input validates f after the user changed it and updates its error slot.
func (h *Handler) Input(f validate.Field) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	ok := h.validator.ValidateField(f, h.view.Value(f))
	h.render(f)
	return ok
}

// Blur validates f when it loses focus.
func (h *Handler) Blur(f validate.Field) bool {
	return h.Input(f)
}

// Submit re-validates the whole form. When anything is invalid it renders
// every error, focuses the first invalid field and returns ErrInvalid
// without touching the network. Otherwise it posts one payload and reports
// the outcome; the submit control is released exactly once either way.
func (h *Handler) Submit(ctx context.Context) (submit.Outcome, error) {
	h.mu.Lock()
	if h.state == StateSubmitting {
		h.mu.Unlock()
		return submit.Pending(), ErrInFlight
	}
	h.state = StateValidating

	values := h.snapshot()
	h.validator.ValidateAll(values)
	for _, f := range h.validator.Table().Fields() {
		h.render(f)
	}
	if f, bad := h.validator.FirstInvalid(); bad {
		h.view.Focus(f)
		h.state = StateIdle
		h.mu.Unlock()
		h.logger.Debug("quote form blocked by validation", "first_invalid", f)
		return submit.Outcome{}, ErrInvalid
	}

	h.state = StateSubmitting
	h.view.SetSubmitting(true)
	var token string
	if cv, ok := h.view.(CaptchaView); ok {
		token = cv.CaptchaToken()
	}
	payload := submit.NewPayload(values, token)
	h.mu.Unlock()

	out := h.submitter.Submit(ctx, payload)

	h.mu.Lock()
	defer h.mu.Unlock()

	if out.OK() {
		h.view.Reset()
		h.validator.Clear()
		for _, f := range h.validator.Table().Fields() {
			h.view.ClearFieldError(f)
		}
		h.view.ShowConfirmation(payload.Values[validate.FieldName])
	} else {
		h.logger.Warn("quote submission failed", "status", out.StatusCode, "reason", out.Reason)
		h.view.ShowFailure(FailureMessage)
	}
	h.view.SetSubmitting(false)
	h.state = StateIdle

	return out, nil
}

func (h *Handler) snapshot() validate.Values {
	values := make(validate.Values)
	for _, f := range h.validator.Table().Fields() {
		values[f] = h.view.Value(f)
	}
	return values
}

func (h *Handler) render(f validate.Field) {
	if msg, bad := h.validator.Error(f); bad {
		h.view.ShowFieldError(f, msg)
		return
	}
	h.view.ClearFieldError(f)
}
