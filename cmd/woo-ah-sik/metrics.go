package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/metrics"
)

func newMetricsCmd(e *env) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show generation counts and storage usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			counts, err := metrics.NewStore(db.SQL).DailyCounts(cmd.Context(), days)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			rows := [][]string{{"DATE", "GROUPS", "CHILDREN", "MERGED", "AVG MS"}}
			for _, c := range counts {
				rows = append(rows, []string{
					c.Date,
					fmt.Sprint(c.Groups),
					fmt.Sprint(c.Children),
					fmt.Sprint(c.MergedGroups),
					fmt.Sprintf("%.1f", c.AvgLatencyMS),
				})
			}
			writeTable(w, rows)

			h := metrics.GetSysHealth(e.cfg.DatabasePath, e.cfg.ExportPath)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  database: %s\n", h.DatabaseSize)
			fmt.Fprintf(w, "  exports:  %s\n", h.ExportSize)
			fmt.Fprintf(w, "  memory:   %d MB alloc, %d MB sys, %d GC\n", h.AllocMB, h.SysMB, h.NumGC)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to summarize")
	return cmd
}

func newMetricsCleanupCmd(e *env) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "metrics-cleanup",
		Short: "Remove generation metrics older than N days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days < 0 {
				return fmt.Errorf("days must not be negative")
			}
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			affected, err := metrics.NewStore(db.SQL).Cleanup(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("cleanup failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully removed %d old metric records.\n", affected)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Keep records for the last N days")
	return cmd
}
