package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/formula"
)

func newFormulaCmd() *cobra.Command {
	var (
		months int
		weight float64
	)

	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Compute the recommended daily formula amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if months < 0 {
				return fmt.Errorf("months must not be negative")
			}
			if weight <= 0 {
				return fmt.Errorf("weight must be positive")
			}
			amount := formula.Dose(months, weight)
			renderAmount(cmd.OutOrStdout(), amount, formula.BuildSchedule(amount))
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", 0, "Age in whole months")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
