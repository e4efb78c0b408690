package validate

import "strings"

// Field identifies one input of the quote form.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldService     Field = "service"
	FieldDescription Field = "description"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldService, FieldDescription}

// Dutch keys used by older versions of the page.
var aliases = map[Field][]string{
	FieldName:        {"naam"},
	FieldPhone:       {"telefoon"},
	FieldService:     {"dienst"},
	FieldDescription: {"bericht", "message"},
}

var labels = map[Field]string{
	FieldName:        "Naam",
	FieldEmail:       "E-mail",
	FieldPhone:       "Telefoon",
	FieldService:     "Dienst",
	FieldDescription: "Omschrijving",
}

// ParseField maps a canonical or legacy form key to its Field.
func ParseField(key string) (Field, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, f := range Fields {
		if string(f) == key {
			return f, true
		}
		for _, a := range aliases[f] {
			if a == key {
				return f, true
			}
		}
	}
	return "", false
}

// Keys returns the canonical key followed by its legacy aliases.
func (f Field) Keys() []string {
	return append([]string{string(f)}, aliases[f]...)
}

// Label is the Dutch label used in relayed mails.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

func (f Field) String() string { return string(f) }

// Values is a snapshot of form input keyed by field.
type Values map[Field]string

// ValuesFrom reads every field through lookup, trying the canonical key
// first and then the legacy aliases. The first non-empty value wins.
func ValuesFrom(lookup func(key string) string) Values {
	out := make(Values, len(Fields))
	for _, f := range Fields {
		for _, k := range f.Keys() {
			if v := lookup(k); v != "" {
				out[f] = v
				break
			}
		}
		if _, ok := out[f]; !ok {
			out[f] = ""
		}
	}
	return out
}
