package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"esewa-payment/esewa"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [callback-blob]",
		Short: "Decode and validate a base64 callback blob",
		Long: `Decode the base64 data parameter eSewa appends to the success redirect,
recompute its signature with the configured secret key, and print the
validation result as JSON. Exits non-zero when the blob cannot be decoded
or the signature does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := esewa.ValidateEncoded(args[0], []byte(cfg.SecretKey))
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			if !result.SignatureValid {
				// Still print the decoded response above; the exit code is
				// for scripts that only check pass/fail.
				os.Exit(2)
			}
			return nil
		},
	}

	return cmd
}
