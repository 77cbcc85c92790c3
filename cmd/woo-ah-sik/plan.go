package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"woo-ah-sik/internal/app"
	"woo-ah-sik/internal/metrics"
	"woo-ah-sik/internal/planner"
	"woo-ah-sik/internal/shopping"
	"woo-ah-sik/internal/storage"
)

type planOptions struct {
	children  []string
	monthly   bool
	month     string
	format    string
	save      bool
	export    bool
	seed      uint64
	allergens bool
	seasonal  bool
}

func newPlanCmd(e *env) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate meal plans for up to four children",
		Example: `  woo-ah-sik plan --child 2023-06-01 --child 2024-01-02:5.2
  woo-ah-sik plan --child 첫째=2022-01-01 --child 둘째=2020-03-10 --month 2024-02 --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("seed") {
				e.cfg.PlanSeed = &opts.seed
			}
			return runPlan(cmd, e, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.children, "child", nil, "Child as [LABEL=]YYYY-MM-DD[:KG]; repeat per child")
	f.BoolVar(&opts.monthly, "monthly", false, "Generate a monthly plan instead of a weekly one")
	f.StringVar(&opts.month, "month", "", "Month of a monthly plan as YYYY-MM (implies --monthly)")
	f.StringVar(&opts.format, "format", "text", "Output format: text, json or yaml")
	f.BoolVar(&opts.save, "save", false, "Store the plan and its shopping lists in the database")
	f.BoolVar(&opts.export, "export", false, "Write the plan to the export directory")
	f.Uint64Var(&opts.seed, "seed", 0, "Fix menu selection (overrides PLAN_SEED)")
	f.BoolVar(&opts.allergens, "allergens", false, "Mark allergens next to each menu")
	f.BoolVar(&opts.seasonal, "seasonal", false, "Mark menus using in-season ingredients")
	_ = cmd.MarkFlagRequired("child")
	return cmd
}

func runPlan(cmd *cobra.Command, e *env, opts *planOptions) error {
	ctx := cmd.Context()

	sub := app.Submission{Kind: planner.KindWeekly}
	for _, raw := range opts.children {
		child, err := parseChild(raw)
		if err != nil {
			return err
		}
		sub.Children = append(sub.Children, child)
	}
	if opts.monthly || opts.month != "" {
		sub.Kind = planner.KindMonthly
	}
	if opts.month != "" {
		year, month, err := parseMonth(opts.month)
		if err != nil {
			return err
		}
		sub.Year, sub.Month = year, month
	}

	var format storage.Format
	if opts.format != "text" {
		f, err := storage.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		format = f
	}

	appOpts := []app.Option{app.WithLogger(e.logger)}
	if opts.save {
		db, err := e.openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		appOpts = append(appOpts,
			app.WithPlanStore(planner.NewPlanRepository(db.SQL), shopping.NewRepository(db.SQL)),
			app.WithRecorder(metrics.NewStore(db.SQL)),
		)
	}

	a := app.NewApp(e.cfg, appOpts...)
	result, err := a.Generate(ctx, sub)
	if err != nil {
		return err
	}

	if opts.save {
		if err := a.Save(ctx, result); err != nil {
			return err
		}
		e.logger.Info("plan saved", "id", result.ID)
	}

	if opts.export {
		store, err := storage.NewExportStore(e.cfg.ExportPath)
		if err != nil {
			return err
		}
		exportFormat := format
		if exportFormat == "" {
			exportFormat = storage.FormatJSON
		}
		path, err := store.Save(result.ID, exportFormat, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", path)
	}

	w := cmd.OutOrStdout()
	if format == "" {
		month := result.CreatedAt.Month()
		if sub.Month != 0 {
			month = sub.Month
		}
		renderResult(w, result, renderOptions{
			Allergens: opts.allergens,
			Seasonal:  opts.seasonal,
			Month:     month,
		})
		return nil
	}

	data, err := storage.Encode(format, result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// parseChild parses [LABEL=]YYYY-MM-DD[:KG].
func parseChild(raw string) (app.ChildInput, error) {
	var child app.ChildInput

	arg := strings.TrimSpace(raw)
	if label, rest, ok := strings.Cut(arg, "="); ok {
		child.Label = strings.TrimSpace(label)
		arg = rest
	}

	date, weight, hasWeight := strings.Cut(arg, ":")
	birth, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), time.Local)
	if err != nil {
		return child, fmt.Errorf("invalid birth date in %q: want YYYY-MM-DD", raw)
	}
	child.BirthDate = birth

	if hasWeight {
		kg, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil || kg <= 0 {
			return child, fmt.Errorf("invalid weight in %q: want a positive number of kilograms", raw)
		}
		child.WeightKg = kg
	}
	return child, nil
}

// parseMonth parses YYYY-MM.
func parseMonth(raw string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(raw))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: want YYYY-MM", raw)
	}
	return t.Year(), t.Month(), nil
}
