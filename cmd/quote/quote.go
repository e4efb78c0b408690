package quote

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astraclean/offerte_backend/config"
	"github.com/astraclean/offerte_backend/pkg/validate"
)

func NewQuoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Validate or submit a quote request from the terminal",
	}

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewSubmitCommand())

	return cmd
}

// fieldFlags binds one string flag per form field.
type fieldFlags map[validate.Field]*string

func addFieldFlags(cmd *cobra.Command) fieldFlags {
	flags := make(fieldFlags, len(validate.Fields))
	for _, f := range validate.Fields {
		flags[f] = cmd.Flags().String(string(f), "", f.Label())
	}
	return flags
}

func (ff fieldFlags) values() validate.Values {
	out := make(validate.Values, len(ff))
	for f, v := range ff {
		out[f] = *v
	}
	return out
}

func readConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.ReadConfig(filepath.Dir(cfgPath))
}
