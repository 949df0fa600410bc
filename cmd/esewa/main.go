// Command esewa is a small CLI over the esewa package: generate signatures
// and transaction ids, validate callbacks, initiate test payments, and run
// the demo server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"esewa-payment/internal/config"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "esewa",
		Short:   "eSewa ePay v2 payment gateway helper",
		Version: Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to esewa.yaml (default: ./esewa.yaml if present)")

	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(uuidCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(payCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the --config flag into an effective config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
