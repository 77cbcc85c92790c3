package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/planner"
)

func newHistoryCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive")
			}
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			plans, err := planner.NewPlanRepository(db.SQL).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(w, "저장된 식단이 없습니다.")
				return nil
			}
			rows := [][]string{{"ID", "CREATED", "KIND", "CHILDREN"}}
			for _, p := range plans {
				rows = append(rows, []string{
					p.ID,
					p.CreatedAt.Local().Format("2006-01-02 15:04"),
					string(p.Kind),
					fmt.Sprint(p.Children),
				})
			}
			writeTable(w, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of plans to list")
	return cmd
}
