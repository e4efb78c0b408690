package quote

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/astraclean/offerte_backend/internal/form"
	"github.com/astraclean/offerte_backend/pkg/logs"
	"github.com/astraclean/offerte_backend/pkg/submit"
)

func NewSubmitCommand() *cobra.Command {
	var (
		flags    fieldFlags
		endpoint string
		encoding string
		captcha  string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate a quote request and post it to the relay endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLogs := logs.New(cfg)
			defer closeLogs()

			if endpoint == "" {
				endpoint = cfg.Client.Endpoint
			}
			if encoding == "" {
				encoding = cfg.Client.Encoding
			}
			enc, err := submit.ParseEncoding(encoding)
			if err != nil {
				return err
			}

			client, err := submit.New(endpoint, submit.WithEncoding(enc), submit.WithLogger(logger))
			if err != nil {
				return err
			}

			view := form.NewTerminalView(flags.values(), captcha, cmd.OutOrStdout())
			h := form.New(view, client, form.WithLogger(logger))

			out, err := h.Submit(cmd.Context())
			switch {
			case errors.Is(err, form.ErrInvalid):
				return errInvalid
			case err != nil:
				return err
			case !out.OK():
				logger.Debug("relay rejected quote", slog.Int("status", out.StatusCode))
				return fmt.Errorf("submission failed: status %d: %s", out.StatusCode, out.Reason)
			}
			return nil
		},
	}

	flags = addFieldFlags(cmd)
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "relay endpoint (defaults to client.endpoint)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "body encoding: urlencoded or multipart (defaults to client.encoding)")
	cmd.Flags().StringVar(&captcha, "captcha-token", "", "g-recaptcha-response token to forward")

	return cmd
}
