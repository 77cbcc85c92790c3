package planner

import (
	"math/rand/v2"
	"time"

	"woo-ah-sik/internal/stage"
)

// Generator builds weekly and monthly plans from the stage menu pools. A
// Generator owns its random source and is meant for one request at a time.
type Generator struct {
	registry *stage.Registry
	rng      *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand pins the random source used for menu selection.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed is WithRand with a PCG source built from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithRegistry replaces the built-in stage registry.
func WithRegistry(reg *stage.Registry) Option {
	return func(g *Generator) {
		g.registry = reg
	}
}

// NewGenerator creates a Generator over the default registry with a
// runtime-seeded random source unless options say otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = stage.Default()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Registry returns the registry the generator draws from.
func (g *Generator) Registry() *stage.Registry {
	return g.registry
}

// selectDays picks n menus per slot and repairs same-day protein repeats.
// Snacks are drawn independently.
func (g *Generator) selectDays(pool stage.MealPool, n int) []Meals {
	breakfast := Pick(g.rng, pool.Breakfast, n)
	lunch := Pick(g.rng, pool.Lunch, n)
	dinner := Pick(g.rng, pool.Dinner, n)
	snack := Pick(g.rng, pool.Snack, n)

	rearrangeDailyVariety(breakfast, lunch, dinner)

	days := make([]Meals, n)
	for i := range days {
		days[i] = Meals{
			Breakfast: breakfast[i],
			Lunch:     lunch[i],
			Dinner:    dinner[i],
			Snack:     snack[i],
		}
	}
	return days
}

// WeeklyPlan generates seven days, Monday to Sunday, from pool.
func (g *Generator) WeeklyPlan(pool stage.MealPool) []DayMeal {
	meals := g.selectDays(pool, len(DayNames))
	week := make([]DayMeal, len(DayNames))
	for i, day := range DayNames {
		week[i] = DayMeal{Day: day, Meals: meals[i]}
	}
	return week
}

// MonthlyPlan generates one entry per calendar day of the month from pool.
func (g *Generator) MonthlyPlan(pool stage.MealPool, year int, month time.Month) MonthPlan {
	n := DaysIn(year, month)
	meals := g.selectDays(pool, n)
	days := make([]MonthDayMeal, n)
	for i := range days {
		days[i] = MonthDayMeal{Date: i + 1, Meals: meals[i]}
	}
	return MonthPlan{Year: year, Month: month, Days: days}
}

// WeeklyPlanFor classifies months and generates a week from that stage's
// pool. Stages without a menu report false.
func (g *Generator) WeeklyPlanFor(months int) ([]DayMeal, bool) {
	return g.WeeklyPlanFromPool(stage.ClassifyID(months))
}

// MonthlyPlanFor classifies months and generates the given month from that
// stage's pool. Stages without a menu report false.
func (g *Generator) MonthlyPlanFor(months, year int, month time.Month) (MonthPlan, bool) {
	return g.MonthlyPlanFromPool(stage.ClassifyID(months), year, month)
}

// WeeklyPlanFromPool generates a week from the pool of id.
func (g *Generator) WeeklyPlanFromPool(id stage.ID) ([]DayMeal, bool) {
	pool, ok := g.registry.Pool(id)
	if !ok {
		return nil, false
	}
	return g.WeeklyPlan(pool), true
}

// MonthlyPlanFromPool generates a month from the pool of id.
func (g *Generator) MonthlyPlanFromPool(id stage.ID, year int, month time.Month) (MonthPlan, bool) {
	pool, ok := g.registry.Pool(id)
	if !ok {
		return MonthPlan{}, false
	}
	return g.MonthlyPlan(pool, year, month), true
}

// WeeklyPlanFromMergedPool generates a week from the union of the pools of
// ids. It reports false when none of the stages has a menu.
func (g *Generator) WeeklyPlanFromMergedPool(ids []stage.ID) ([]DayMeal, bool) {
	pool := g.registry.MergedPool(ids)
	if pool.Empty() {
		return nil, false
	}
	return g.WeeklyPlan(pool), true
}

// MonthlyPlanFromMergedPool generates a month from the union of the pools of
// ids.
func (g *Generator) MonthlyPlanFromMergedPool(ids []stage.ID, year int, month time.Month) (MonthPlan, bool) {
	pool := g.registry.MergedPool(ids)
	if pool.Empty() {
		return MonthPlan{}, false
	}
	return g.MonthlyPlan(pool, year, month), true
}

// IsMergeable reports whether the stages may share a merged pool.
func (g *Generator) IsMergeable(ids []stage.ID) bool {
	return g.registry.IsMergeable(ids)
}
