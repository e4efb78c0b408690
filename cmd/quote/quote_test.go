package quote

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runQuote(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "offerte", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", t.TempDir()+"/config.yaml", "")
	root.AddCommand(NewQuoteCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := runQuote(t, "quote", "validate",
		"--name", "Jan de Vries",
		"--email", "jan@example.com",
		"--phone", "06-12345678",
		"--service", "Kantoorschoonmaak",
		"--description", "Twee verdiepingen, wekelijks.",
	)
	if err != nil {
		t.Fatalf("validate error = %v\n%s", err, out)
	}
	if strings.Contains(out, "✗") {
		t.Errorf("output = %q, want no failures", out)
	}
	if !strings.Contains(out, "471 tekens resterend") {
		t.Errorf("output = %q, want remaining character count", out)
	}
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := runQuote(t, "quote", "validate", "--name", "Jan", "--email", "test@domain")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("validate error = %v, want errInvalid", err)
	}
	if !strings.Contains(out, "Vul een geldig e-mailadres in") {
		t.Errorf("output = %q, want the email message", out)
	}
	if !strings.Contains(out, "✓ Naam") {
		t.Errorf("output = %q, want name to pass", out)
	}
}
