package form

import (
	"fmt"
	"io"
	"sync"

	"github.com/astraclean/offerte_backend/pkg/validate"
)

// ConfirmationFormat is the confirmation text; %s is the submitter's name.
const ConfirmationFormat = "Bedankt, %s! We nemen zo spoedig mogelijk contact met u op."

// TerminalView renders the form on a line-oriented writer. Values are fixed
// up front, typically from command-line flags.
type TerminalView struct {
	mu      sync.Mutex
	values  validate.Values
	token   string
	out     io.Writer
	errors  map[validate.Field]string
	focused validate.Field
}

func NewTerminalView(values validate.Values, captchaToken string, out io.Writer) *TerminalView {
	v := make(validate.Values, len(values))
	for f, s := range values {
		v[f] = s
	}
	return &TerminalView{
		values: v,
		token:  captchaToken,
		out:    out,
		errors: make(map[validate.Field]string),
	}
}

func (v *TerminalView) Value(f validate.Field) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[f]
}

func (v *TerminalView) CaptchaToken() string { return v.token }

func (v *TerminalView) ShowFieldError(f validate.Field, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errors[f] = msg
	fmt.Fprintf(v.out, "  ✗ %s: %s\n", f.Label(), msg)
}

func (v *TerminalView) ClearFieldError(f validate.Field) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.errors, f)
}

func (v *TerminalView) Focus(f validate.Field) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focused = f
	fmt.Fprintf(v.out, "→ controleer %s (--%s)\n", f.Label(), f)
}

func (v *TerminalView) SetSubmitting(busy bool) {
	if busy {
		fmt.Fprintln(v.out, "Versturen...")
	}
}

func (v *TerminalView) ShowConfirmation(name string) {
	fmt.Fprintf(v.out, ConfirmationFormat+"\n", name)
}

func (v *TerminalView) ShowFailure(msg string) {
	fmt.Fprintln(v.out, msg)
}

func (v *TerminalView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values = make(validate.Values)
}

// FieldErrors returns the messages currently shown.
func (v *TerminalView) FieldErrors() map[validate.Field]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[validate.Field]string, len(v.errors))
	for f, msg := range v.errors {
		out[f] = msg
	}
	return out
}

// Focused returns the field that last received focus.
func (v *TerminalView) Focused() validate.Field {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.focused
}
