package validate

// Result maps each invalid field to its message. A missing entry means the
// field is currently valid.
type Result map[Field]string

// FieldError is one entry of a Result in table order.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// Validator tracks the validation state of one form.
type Validator struct {
	table  *Table
	errors Result
}

// New returns a Validator with an empty Result. A nil table selects
// DefaultTable.
func New(table *Table) *Validator {
	if table == nil {
		table = DefaultTable()
	}
	return &Validator{table: table, errors: make(Result)}
}

func (v *Validator) Table() *Table { return v.table }

// ValidateField checks one field and updates the Result.
func (v *Validator) ValidateField(f Field, value string) bool {
	msg, ok := v.table.ValidateField(f, value)
	if ok {
		delete(v.errors, f)
		return true
	}
	v.errors[f] = msg
	return false
}

// Reject records msg for f regardless of the table, for checks that need
// more than the field value.
func (v *Validator) Reject(f Field, msg string) {
	v.errors[f] = msg
}

// ValidateAll checks every tracked field. Fields missing from values are
// validated as empty.
func (v *Validator) ValidateAll(values Values) Result {
	for _, f := range v.table.fields {
		v.ValidateField(f, values[f])
	}
	return v.Errors()
}

// Errors returns a copy of the current Result.
func (v *Validator) Errors() Result {
	out := make(Result, len(v.errors))
	for f, msg := range v.errors {
		out[f] = msg
	}
	return out
}

// Error returns the current message for f.
func (v *Validator) Error(f Field) (string, bool) {
	msg, ok := v.errors[f]
	return msg, ok
}

func (v *Validator) Valid() bool { return len(v.errors) == 0 }

// FirstInvalid returns the first invalid field in table order.
func (v *Validator) FirstInvalid() (Field, bool) {
	for _, f := range v.table.fields {
		if _, bad := v.errors[f]; bad {
			return f, true
		}
	}
	return "", false
}

// FieldErrors lists the current Result in table order.
func (v *Validator) FieldErrors() []FieldError {
	out := make([]FieldError, 0, len(v.errors))
	for _, f := range v.table.fields {
		if msg, bad := v.errors[f]; bad {
			out = append(out, FieldError{Field: f, Message: msg})
		}
	}
	return out
}

// Clear drops every entry of the Result.
func (v *Validator) Clear() {
	v.errors = make(Result)
}
