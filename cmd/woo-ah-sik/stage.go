package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/stage"
)

func newStageCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Show the feeding stage for an age, or list all stages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if !cmd.Flags().Changed("months") {
				for _, id := range stage.All() {
					s := id.Stage()
					fmt.Fprintf(w, "%-16s %s (%s)\n", id.Key(), s.Name, s.MealsPerDay)
				}
				return nil
			}
			if months < 0 {
				return fmt.Errorf("months must not be negative")
			}

			s := stage.Classify(months)
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d개월: %s", months, s.Name)))
			fmt.Fprintf(w, "  식사 횟수: %s\n", s.MealsPerDay)
			fmt.Fprintf(w, "  %s\n", s.Description)
			if !s.HasMenu {
				fmt.Fprintln(w, "  식단 대신 분유 권장량을 확인하세요: woo-ah-sik formula")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", 0, "Age in whole months")
	return cmd
}
