package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esewa-payment/esewa"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign [total-amount] [transaction-uuid]",
		Short: "Compute the HMAC-SHA256 signature for a payment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			product, err := cmd.Flags().GetString("product-code")
			if err != nil {
				return err
			}
			if product == "" {
				product = cfg.ProductCode
			}

			signature := esewa.Sign(args[0], args[1], product, []byte(cfg.SecretKey))
			fmt.Println(signature)
			return nil
		},
	}

	cmd.Flags().StringP("product-code", "p", "", "Product code (default: from config)")

	return cmd
}
