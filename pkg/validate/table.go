package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DescriptionMaxLength is the one upper bound for the description field.
const DescriptionMaxLength = 500

// FieldRules binds an ordered rule list to a field.
type FieldRules struct {
	Field Field
	Rules []Rule
}

// Table is the static rule configuration of the form.
type Table struct {
	fields []Field
	rules  map[Field][]Rule
}

// NewTable builds a table and checks its invariants. Rules of each field are
// stably sorted into required, format, length order.
func NewTable(entries ...FieldRules) (*Table, error) {
	t := &Table{rules: make(map[Field][]Rule, len(entries))}
	for _, e := range entries {
		if _, dup := t.rules[e.Field]; dup {
			return nil, fmt.Errorf("validate: duplicate rules for field %q", e.Field)
		}
		rules := append([]Rule(nil), e.Rules...)
		sort.SliceStable(rules, func(i, j int) bool { return rules[i].stage() < rules[j].stage() })
		t.fields = append(t.fields, e.Field)
		t.rules[e.Field] = rules
	}
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is NewTable for package-level tables.
func MustTable(entries ...FieldRules) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustTable(
	FieldRules{Field: FieldName, Rules: []Rule{
		Require("Vul uw naam in"),
		MinLen(2, "Naam moet minimaal 2 karakters bevatten"),
		MaxLen(50, "Naam mag maximaal 50 karakters bevatten"),
	}},
	FieldRules{Field: FieldEmail, Rules: []Rule{
		Require("Vul uw e-mailadres in"),
		EmailFormat("Vul een geldig e-mailadres in"),
	}},
	FieldRules{Field: FieldPhone, Rules: []Rule{
		Require("Vul uw telefoonnummer in"),
		PhoneFormat("Vul een geldig Nederlands telefoonnummer in"),
	}},
	FieldRules{Field: FieldService, Rules: []Rule{
		Require("Selecteer een dienst"),
	}},
	FieldRules{Field: FieldDescription, Rules: []Rule{
		Require("Vul uw bericht in"),
		MinLen(10, "Bericht moet minimaal 10 karakters bevatten"),
		MaxLen(DescriptionMaxLength, fmt.Sprintf("Bericht mag maximaal %d karakters bevatten", DescriptionMaxLength)),
	}},
)

// DefaultTable returns the rules of the quote form.
func DefaultTable() *Table { return defaultTable }

// Check verifies that every rule has a message, a known kind and, for
// length rules, a positive bound.
func (t *Table) Check() error {
	var errs []error
	for _, f := range t.fields {
		for _, r := range t.rules[f] {
			if strings.TrimSpace(r.Message) == "" {
				errs = append(errs, fmt.Errorf("validate: %s rule on %q has no message", r.Kind, f))
			}
			switch r.Kind {
			case KindRequired, KindEmail, KindPhone:
			case KindMinLength, KindMaxLength:
				if r.Bound <= 0 {
					errs = append(errs, fmt.Errorf("validate: %s rule on %q needs a positive bound", r.Kind, f))
				}
			default:
				errs = append(errs, fmt.Errorf("validate: unknown rule %s on %q", r.Kind, f))
			}
		}
	}
	return errors.Join(errs...)
}

// Fields returns the tracked fields in table order.
func (t *Table) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// Rules returns the ordered rules of f.
func (t *Table) Rules(f Field) []Rule {
	return append([]Rule(nil), t.rules[f]...)
}

// MaxLength returns the upper length bound of f, if it has one.
func (t *Table) MaxLength(f Field) (int, bool) {
	for _, r := range t.rules[f] {
		if r.Kind == KindMaxLength {
			return r.Bound, true
		}
	}
	return 0, false
}

// Message returns the message of the first rule of kind k on f.
func (t *Table) Message(f Field, k Kind) (string, bool) {
	for _, r := range t.rules[f] {
		if r.Kind == k {
			return r.Message, true
		}
	}
	return "", false
}

// ValidateField runs the rules of f in order and returns the message of
// the first one that fails. Fields without rules are always valid.
func (t *Table) ValidateField(f Field, value string) (string, bool) {
	for _, r := range t.rules[f] {
		if !r.Check(value) {
			return r.Message, false
		}
	}
	return "", true
}
