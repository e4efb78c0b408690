package quote

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astraclean/offerte_backend/pkg/validate"
)

var errInvalid = errors.New("quote request is invalid")

func NewValidateCommand() *cobra.Command {
	var flags fieldFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a quote request against the form rules without sending it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags.values())
		},
	}

	flags = addFieldFlags(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, values validate.Values) error {
	out := cmd.OutOrStdout()
	v := validate.New(nil)
	v.ValidateAll(values)

	for _, f := range v.Table().Fields() {
		if msg, bad := v.Error(f); bad {
			fmt.Fprintf(out, "✗ %-12s %s\n", f.Label(), msg)
			continue
		}
		fmt.Fprintf(out, "✓ %s\n", f.Label())
	}
	if limit, ok := v.Table().MaxLength(validate.FieldDescription); ok {
		fmt.Fprintf(out, "%d tekens resterend\n", validate.Remaining(values[validate.FieldDescription], limit))
	}

	if !v.Valid() {
		return errInvalid
	}
	return nil
}
