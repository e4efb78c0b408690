package validate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultTable_Check(t *testing.T) {
	if err := DefaultTable().Check(); err != nil {
		t.Fatalf("default table is inconsistent: %v", err)
	}
	if diff := cmp.Diff(Fields, DefaultTable().Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
	if n, ok := DefaultTable().MaxLength(FieldDescription); !ok || n != DescriptionMaxLength {
		t.Errorf("MaxLength(description) = %d, %v", n, ok)
	}
}

func TestNewTable_RejectsBrokenRules(t *testing.T) {
	tests := []struct {
		name    string
		entries []FieldRules
		wantErr string
	}{
		{
			name:    "missing message",
			entries: []FieldRules{{Field: FieldName, Rules: []Rule{Require("")}}},
			wantErr: "has no message",
		},
		{
			name:    "zero bound",
			entries: []FieldRules{{Field: FieldName, Rules: []Rule{MinLen(0, "too short")}}},
			wantErr: "positive bound",
		},
		{
			name:    "unknown kind",
			entries: []FieldRules{{Field: FieldName, Rules: []Rule{{Kind: Kind(42), Message: "?"}}}},
			wantErr: "unknown rule",
		},
		{
			name: "duplicate field",
			entries: []FieldRules{
				{Field: FieldName, Rules: []Rule{Require("a")}},
				{Field: FieldName, Rules: []Rule{Require("b")}},
			},
			wantErr: "duplicate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("NewTable() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewTable_OrdersRequiredFormatLength(t *testing.T) {
	table := MustTable(FieldRules{Field: FieldEmail, Rules: []Rule{
		MaxLen(20, "max"),
		EmailFormat("format"),
		Require("required"),
	}})

	var kinds []Kind
	for _, r := range table.Rules(FieldEmail) {
		kinds = append(kinds, r.Kind)
	}
	want := []Kind{KindRequired, KindEmail, KindMaxLength}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}

	if msg, _ := table.ValidateField(FieldEmail, ""); msg != "required" {
		t.Errorf("empty email message = %q, want required", msg)
	}
}

func TestValidateField_FirstFailureWins(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name    string
		field   Field
		value   string
		wantMsg string
		wantOK  bool
	}{
		{"empty name", FieldName, "", "Vul uw naam in", false},
		{"short name", FieldName, "J", "Naam moet minimaal 2 karakters bevatten", false},
		{"long name", FieldName, strings.Repeat("x", 51), "Naam mag maximaal 50 karakters bevatten", false},
		{"valid name", FieldName, "John Doe", "", true},
		{"empty email", FieldEmail, "  ", "Vul uw e-mailadres in", false},
		{"bad email", FieldEmail, "test@domain", "Vul een geldig e-mailadres in", false},
		{"bad phone", FieldPhone, "+32612345678", "Vul een geldig Nederlands telefoonnummer in", false},
		{"no service", FieldService, "", "Selecteer een dienst", false},
		{"service", FieldService, "auto", "", true},
		{"short description", FieldDescription, "Too short", "Bericht moet minimaal 10 karakters bevatten", false},
		{"long description", FieldDescription, strings.Repeat("a", 501), "Bericht mag maximaal 500 karakters bevatten", false},
		{"max description", FieldDescription, strings.Repeat("a", 500), "", true},
		{"untracked field", Field("newsletter"), "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := table.ValidateField(tt.field, tt.value)
			if ok != tt.wantOK || msg != tt.wantMsg {
				t.Errorf("ValidateField(%s, %q) = (%q, %v), want (%q, %v)", tt.field, tt.value, msg, ok, tt.wantMsg, tt.wantOK)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	tests := map[string]Field{
		"name":        FieldName,
		"naam":        FieldName,
		"Telefoon":    FieldPhone,
		"dienst":      FieldService,
		"bericht":     FieldDescription,
		"description": FieldDescription,
		" email ":     FieldEmail,
	}
	for key, want := range tests {
		got, ok := ParseField(key)
		if !ok || got != want {
			t.Errorf("ParseField(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}
	if _, ok := ParseField("g-recaptcha-response"); ok {
		t.Error("ParseField should reject unknown keys")
	}
}

func TestValuesFrom_Aliases(t *testing.T) {
	form := map[string]string{
		"naam":     "Jan",
		"email":    "jan@example.com",
		"telefoon": "0612345678",
		"dienst":   "tapijt",
		"bericht":  "Graag een offerte voor tapijtreiniging.",
	}
	got := ValuesFrom(func(k string) string { return form[k] })
	want := Values{
		FieldName:        "Jan",
		FieldEmail:       "jan@example.com",
		FieldPhone:       "0612345678",
		FieldService:     "tapijt",
		FieldDescription: "Graag een offerte voor tapijtreiniging.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValuesFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesFrom_CanonicalWins(t *testing.T) {
	form := map[string]string{"name": "Canonical", "naam": "Alias"}
	got := ValuesFrom(func(k string) string { return form[k] })
	if got[FieldName] != "Canonical" {
		t.Errorf("name = %q, want Canonical", got[FieldName])
	}
	if v, ok := got[FieldPhone]; !ok || v != "" {
		t.Errorf("missing phone should be present and empty, got %q, %v", v, ok)
	}
}
