package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/astraclean/offerte_backend/cmd/http"
	quotecmd "github.com/astraclean/offerte_backend/cmd/quote"
	systemcmd "github.com/astraclean/offerte_backend/cmd/system"
	"github.com/astraclean/offerte_backend/pkg/constants"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "AstraClean quote requests: form validation, submission and mail relay.",
	Long: `offerte validates cleaning-service quote requests and relays them to the
AstraClean inbox by email. It runs the relay endpoint the website posts to and
can submit or check a request from the terminal.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(quotecmd.NewQuoteCommand())
}
