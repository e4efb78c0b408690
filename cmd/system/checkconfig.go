package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astraclean/offerte_backend/config"
)

// NewCheckConfigCommand loads and validates the configuration without
// starting anything.
func NewCheckConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate the configuration and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "environment:  %s\n", cfg.Server.Environment)
			fmt.Fprintf(out, "port:         %d\n", cfg.Server.Port)
			fmt.Fprintf(out, "email:        %s\n", onOff(cfg.Email.Enabled))
			fmt.Fprintf(out, "recipient:    %s\n", cfg.Quote.Recipient)
			fmt.Fprintf(out, "captcha:      %s\n", onOff(cfg.Captcha.Enabled))
			fmt.Fprintf(out, "archive:      %s\n", onOff(cfg.Archive.Enabled))
			fmt.Fprintf(out, "redis:        %s\n", onOff(cfg.Redis.Enabled))
			fmt.Fprintf(out, "telemetry:    %s\n", onOff(cfg.Observability.Enabled))
			fmt.Fprintln(out, "configuration OK")
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
