package email

import (
	"errors"
	"fmt"
	"net/textproto"
)

var (
	// ErrDisabled is returned by Send while delivery is switched off.
	ErrDisabled = errors.New("email: delivery is disabled")
	// ErrInvalidMessage wraps every problem found while composing a mail.
	ErrInvalidMessage = errors.New("email: invalid message")
	// ErrMisconfigured is returned by New for settings that cannot deliver.
	ErrMisconfigured = errors.New("email: misconfigured")
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidMessage, reason)
}

// DeliveryError reports a failed SMTP exchange with Host.
type DeliveryError struct {
	Host string
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email: deliver via %s: %v", e.Host, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Permanent reports whether the server refused the message with a 5xx reply.
func (e *DeliveryError) Permanent() bool {
	var reply *textproto.Error
	return errors.As(e.Err, &reply) && reply.Code >= 500
}

// Failure classifies an error returned by Send.
type Failure int

const (
	FailureNone Failure = iota
	FailureDisabled
	FailureInvalid
	FailureRejected
	FailureUnreachable
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureDisabled:
		return "disabled"
	case FailureInvalid:
		return "invalid"
	case FailureRejected:
		return "rejected"
	default:
		return "unreachable"
	}
}

// Classify maps err onto a Failure. Anything that is not recognised counts
// as FailureUnreachable.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, ErrDisabled) {
		return FailureDisabled
	}
	if errors.Is(err, ErrInvalidMessage) {
		return FailureInvalid
	}
	var de *DeliveryError
	if errors.As(err, &de) && de.Permanent() {
		return FailureRejected
	}
	return FailureUnreachable
}
