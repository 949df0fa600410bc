package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"esewa-payment/esewa"
)

func uuidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate transaction identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				fmt.Println(esewa.NewTransactionUUID())
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "Number of identifiers to generate")

	return cmd
}
