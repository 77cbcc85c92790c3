package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"woo-ah-sik/internal/config"
	"woo-ah-sik/internal/formula"
	"woo-ah-sik/internal/logging"
	"woo-ah-sik/internal/metrics"
	"woo-ah-sik/internal/planner"
	"woo-ah-sik/internal/shopping"
	"woo-ah-sik/internal/stage"
)

// MaxChildren is the largest household a submission may describe.
const MaxChildren = 4

var defaultLabels = [MaxChildren]string{"첫째 아이", "둘째 아이", "셋째 아이", "넷째 아이"}

var (
	ErrNoChildren       = errors.New("at least one child is required")
	ErrTooManyChildren  = fmt.Errorf("at most %d children are supported", MaxChildren)
	ErrInvalidBirthDate = errors.New("birth date must be set and not in the future")
	ErrInvalidWeight    = errors.New("weight must be positive for a formula-fed child")
)

// ChildInput is one child as entered by the user.
type ChildInput struct {
	Label     string    `json:"label,omitempty" yaml:"label,omitempty"`
	BirthDate time.Time `json:"birth_date" yaml:"birth_date"`
	WeightKg  float64   `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
}

// Submission is one request to plan for a household.
type Submission struct {
	Children []ChildInput `json:"children" yaml:"children"`
	Kind     planner.Kind `json:"kind" yaml:"kind"`
	// Year and Month pick the calendar month of a monthly plan; zero means
	// the current month.
	Year  int        `json:"year,omitempty" yaml:"year,omitempty"`
	Month time.Month `json:"month,omitempty" yaml:"month,omitempty"`
}

// FormulaResult is the feeding recommendation for a child without a menu.
type FormulaResult struct {
	Child    planner.ChildInfo `json:"child" yaml:"child"`
	Stage    stage.Stage       `json:"stage" yaml:"stage"`
	WeightKg float64           `json:"weight_kg" yaml:"weight_kg"`
	Amount   formula.Amount    `json:"amount" yaml:"amount"`
	Schedule []formula.Feeding `json:"schedule" yaml:"schedule"`
}

// Result is everything produced for one submission.
type Result struct {
	ID        string              `json:"id" yaml:"id"`
	CreatedAt time.Time           `json:"created_at" yaml:"created_at"`
	Kind      planner.Kind        `json:"kind" yaml:"kind"`
	Children  []planner.ChildInfo `json:"children" yaml:"children"`
	Formulas  []FormulaResult     `json:"formulas,omitempty" yaml:"formulas,omitempty"`
	Plans     []planner.PlanEntry `json:"plans,omitempty" yaml:"plans,omitempty"`
}

// GenerationRecorder stores one metric per generated group.
type GenerationRecorder interface {
	Record(ctx context.Context, m metrics.GenerationMetric) error
}

// PlanSaver persists serialized results.
type PlanSaver interface {
	Save(ctx context.Context, p planner.StoredPlan) error
	Get(ctx context.Context, id string) (*planner.StoredPlan, error)
}

// ShoppingSaver persists shopping lists derived from saved plans.
type ShoppingSaver interface {
	Save(ctx context.Context, list *shopping.ShoppingList) (int64, error)
}

// App runs the household planning pipeline.
type App struct {
	logger    *slog.Logger
	now       func() time.Time
	seed      *uint64
	recorder  GenerationRecorder
	plans     PlanSaver
	shopLists ShoppingSaver
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithRecorder records generation metrics.
func WithRecorder(r GenerationRecorder) Option {
	return func(a *App) { a.recorder = r }
}

// WithPlanStore enables Save and Load.
func WithPlanStore(p PlanSaver, s ShoppingSaver) Option {
	return func(a *App) {
		a.plans = p
		a.shopLists = s
	}
}

// NewApp creates an App. The configured seed, when present, makes every
// submission draw the same menus.
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{
		logger: logging.Discard(),
		now:    time.Now,
	}
	if cfg != nil {
		a.seed = cfg.PlanSeed
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) newGenerator() *planner.Generator {
	if a.seed != nil {
		return planner.NewGenerator(planner.WithSeed(*a.seed))
	}
	return planner.NewGenerator()
}

// Generate classifies every child, computes formula doses for children
// without a menu and generates plans for the rest, sharing plans between
// children at compatible stages.
func (a *App) Generate(ctx context.Context, sub Submission) (*Result, error) {
	if len(sub.Children) == 0 {
		return nil, ErrNoChildren
	}
	if len(sub.Children) > MaxChildren {
		return nil, ErrTooManyChildren
	}

	start := time.Now()
	now := a.now()

	kind := sub.Kind
	if kind == "" {
		kind = planner.KindWeekly
	}
	if kind != planner.KindWeekly && kind != planner.KindMonthly {
		return nil, fmt.Errorf("unknown plan kind %q", kind)
	}

	result := &Result{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Kind:      kind,
	}

	var menuChildren []planner.ChildInfo
	for i, in := range sub.Children {
		label := in.Label
		if label == "" {
			label = defaultLabels[i]
		}
		if in.BirthDate.IsZero() || in.BirthDate.After(now) {
			return nil, fmt.Errorf("%s: %w", label, ErrInvalidBirthDate)
		}

		months := stage.MonthsSince(in.BirthDate, now)
		info := planner.ChildInfo{
			Index:  i,
			Label:  label,
			Months: months,
			Stage:  stage.ClassifyID(months),
		}
		result.Children = append(result.Children, info)

		if info.Stage.Stage().HasMenu {
			menuChildren = append(menuChildren, info)
			continue
		}

		if in.WeightKg <= 0 {
			return nil, fmt.Errorf("%s: %w", label, ErrInvalidWeight)
		}
		amount := formula.Dose(months, in.WeightKg)
		result.Formulas = append(result.Formulas, FormulaResult{
			Child:    info,
			Stage:    info.Stage.Stage(),
			WeightKg: in.WeightKg,
			Amount:   amount,
			Schedule: formula.BuildSchedule(amount),
		})
	}

	period := planner.Period{Kind: kind, Year: sub.Year, Month: sub.Month}
	if period.Year == 0 || period.Month == 0 {
		period.Year, period.Month = now.Year(), now.Month()
	}

	gen := a.newGenerator()
	groups := planner.GroupChildren(menuChildren)
	for _, group := range groups {
		groupStart := time.Now()
		entries := gen.PlanGroup(group, period)
		if entries == nil {
			a.logger.Warn("no menu pool for group", "base_stage", group.Base.Key())
			continue
		}
		result.Plans = append(result.Plans, entries...)

		a.logger.Debug("generated group plan",
			"base_stage", group.Base.Key(),
			"children", len(group.Children),
			"entries", len(entries),
			"merged", entries[0].Merged,
		)
		a.record(ctx, metrics.GenerationMetric{
			Kind:      string(kind),
			BaseStage: group.Base.Key(),
			Children:  len(group.Children),
			Days:      len(entries[0].Meals()),
			Merged:    entries[0].Merged,
			LatencyMS: time.Since(groupStart).Milliseconds(),
		})
	}

	a.logger.Info("generated plans",
		"id", result.ID,
		"kind", kind,
		"children", len(result.Children),
		"formulas", len(result.Formulas),
		"groups", len(groups),
		"elapsed", time.Since(start),
	)
	return result, nil
}

func (a *App) record(ctx context.Context, m metrics.GenerationMetric) {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.Record(ctx, m); err != nil {
		a.logger.Warn("failed to record generation metric", "error", err)
	}
}

// Save stores the result and a shopping list for each of its plans.
func (a *App) Save(ctx context.Context, result *Result) error {
	if a.plans == nil {
		return errors.New("no plan store configured")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	err = a.plans.Save(ctx, planner.StoredPlan{
		ID:        result.ID,
		Kind:      result.Kind,
		Children:  len(result.Children),
		PlanData:  data,
		CreatedAt: result.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save plan %s: %w", result.ID, err)
	}

	if a.shopLists == nil {
		return nil
	}
	for _, list := range ShoppingLists(result) {
		if _, err := a.shopLists.Save(ctx, list); err != nil {
			return fmt.Errorf("failed to save shopping list for plan %s: %w", result.ID, err)
		}
	}
	return nil
}

// Load reads a saved result back.
func (a *App) Load(ctx context.Context, id string) (*Result, error) {
	if a.plans == nil {
		return nil, errors.New("no plan store configured")
	}
	stored, err := a.plans.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", id, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("plan %s not found", id)
	}

	var result Result
	if err := json.Unmarshal(stored.PlanData, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %s: %w", id, err)
	}
	return &result, nil
}

// ShoppingLists builds one shopping list per plan entry of the result.
func ShoppingLists(result *Result) []*shopping.ShoppingList {
	lists := make([]*shopping.ShoppingList, 0, len(result.Plans))
	for _, entry := range result.Plans {
		labels := make([]string, len(entry.Children))
		for i, c := range entry.Children {
			labels[i] = c.Label
		}
		lists = append(lists, &shopping.ShoppingList{
			MealPlanID: result.ID,
			Children:   labels,
			Groups:     shopping.FromDays(entry.Meals()),
		})
	}
	return lists
}
