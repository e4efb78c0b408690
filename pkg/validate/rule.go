package validate

import "fmt"

// Kind tags the predicate a Rule runs.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindEmail
	KindPhone
	KindMinLength
	KindMaxLength
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindMinLength:
		return "minLength"
	case KindMaxLength:
		return "maxLength"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Rule is one check on a field value. Bound is only read by the length kinds.
type Rule struct {
	Kind    Kind
	Bound   int
	Message string
}

func Require(msg string) Rule     { return Rule{Kind: KindRequired, Message: msg} }
func EmailFormat(msg string) Rule { return Rule{Kind: KindEmail, Message: msg} }
func PhoneFormat(msg string) Rule { return Rule{Kind: KindPhone, Message: msg} }

func MinLen(n int, msg string) Rule { return Rule{Kind: KindMinLength, Bound: n, Message: msg} }
func MaxLen(n int, msg string) Rule { return Rule{Kind: KindMaxLength, Bound: n, Message: msg} }

// Check runs the rule against value. Unknown kinds never pass.
func (r Rule) Check(value string) bool {
	switch r.Kind {
	case KindRequired:
		return Required(value)
	case KindEmail:
		return Email(value)
	case KindPhone:
		return Phone(value)
	case KindMinLength:
		return MinLength(value, r.Bound)
	case KindMaxLength:
		return MaxLength(value, r.Bound)
	default:
		return false
	}
}

// stage orders rules: required, then format, then length.
func (r Rule) stage() int {
	switch r.Kind {
	case KindRequired:
		return 0
	case KindEmail, KindPhone:
		return 1
	default:
		return 2
	}
}
