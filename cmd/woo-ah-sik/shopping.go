package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/shopping"
)

func newShoppingCmd(e *env) *cobra.Command {
	var (
		planID string
		links  bool
	)

	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Show the shopping lists of a saved plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			lists, err := shopping.NewRepository(db.SQL).GetByMealPlanID(cmd.Context(), planID)
			if err != nil {
				return err
			}
			if len(lists) == 0 {
				return fmt.Errorf("no shopping lists for plan %s", planID)
			}

			w := cmd.OutOrStdout()
			for i, list := range lists {
				if i > 0 {
					fmt.Fprintln(w)
				}
				renderShopping(w, list, links)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&planID, "plan-id", "", "ID of a saved plan")
	cmd.Flags().BoolVar(&links, "links", false, "Print Coupang and Kurly search links")
	_ = cmd.MarkFlagRequired("plan-id")
	return cmd
}
