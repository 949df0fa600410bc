package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esewa-payment/esewa"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Initiate a payment and print the checkout URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			amount, _ := cmd.Flags().GetString("amount")
			tax, _ := cmd.Flags().GetString("tax-amount")
			service, _ := cmd.Flags().GetString("service-charge")
			delivery, _ := cmd.Flags().GetString("delivery-charge")

			req, err := esewa.NewPaymentRequest(amount, tax, service, delivery,
				cfg.ProductCode, cfg.SuccessURL, cfg.FailureURL)
			if err != nil {
				return err
			}

			fmt.Printf("initiating payment: total_amount=%s transaction_uuid=%s environment=%s\n",
				req.TotalAmount, req.TransactionUUID, cfg.Env())

			client := esewa.NewClient(cfg.Env())
			redirectURL, err := client.Initiate(cmd.Context(), req, []byte(cfg.SecretKey))
			if err != nil {
				return fmt.Errorf("payment initiation failed: %w", err)
			}

			fmt.Printf("redirect the user to:\n%s\n", redirectURL)
			return nil
		},
	}

	cmd.Flags().String("amount", "100", "Base amount")
	cmd.Flags().String("tax-amount", "10", "Tax amount")
	cmd.Flags().String("service-charge", "0", "Product service charge")
	cmd.Flags().String("delivery-charge", "0", "Product delivery charge")

	return cmd
}
