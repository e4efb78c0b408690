package submit

import "fmt"

// Status is the state of one submission attempt.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is what the backend made of a submission. StatusCode is zero
// when the request never got a response.
type Outcome struct {
	Status     Status
	StatusCode int
	Reason     string
}

func Pending() Outcome { return Outcome{Status: StatusPending} }

func Success(code int) Outcome { return Outcome{Status: StatusSuccess, StatusCode: code} }

func Failure(code int, reason string) Outcome {
	return Outcome{Status: StatusFailure, StatusCode: code, Reason: reason}
}

func (o Outcome) OK() bool { return o.Status == StatusSuccess }
