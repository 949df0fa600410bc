package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esewa-payment/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default esewa.yaml config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if path == "" {
				path = config.DefaultPath
			}

			if err := config.WriteDefault(path); err != nil {
				return err
			}

			fmt.Printf("wrote %s with sandbox defaults — replace secret_key and product_code before going live\n", path)
			return nil
		},
	}

	return cmd
}
