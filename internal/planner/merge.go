package planner

import (
	"slices"
	"time"

	"woo-ah-sik/internal/stage"
)

// Period is the span a plan is generated for. Year and Month are only read
// for monthly plans.
type Period struct {
	Kind  Kind
	Year  int
	Month time.Month
}

// PlanEntry is one displayed plan: the children it covers and the plan drawn
// for them. Exactly one of Weekly and Monthly is set.
type PlanEntry struct {
	Children []ChildInfo `json:"children" yaml:"children"`
	Stage    stage.ID    `json:"stage" yaml:"stage"`
	Shared   bool        `json:"shared" yaml:"shared"`
	Merged   bool        `json:"merged" yaml:"merged"`
	Weekly   []DayMeal   `json:"weekly,omitempty" yaml:"weekly,omitempty"`
	Monthly  *MonthPlan  `json:"monthly,omitempty" yaml:"monthly,omitempty"`
}

// Meals returns the entry's days without labels, whichever shape it has.
func (e PlanEntry) Meals() []Meals {
	if e.Monthly != nil {
		return MonthMeals(*e.Monthly)
	}
	return WeekMeals(e.Weekly)
}

// FillGapsForChild copies a shared weekly plan and fills every slot the shared
// plan left empty from the child's own pool. Filled slots are never changed.
func (g *Generator) FillGapsForChild(shared []DayMeal, child stage.ID) []DayMeal {
	out := slices.Clone(shared)
	meals := WeekMeals(out)
	g.fillGaps(meals, child)
	for i := range out {
		out[i].Meals = meals[i]
	}
	return out
}

// FillMonthGapsForChild is FillGapsForChild for a monthly plan.
func (g *Generator) FillMonthGapsForChild(shared MonthPlan, child stage.ID) MonthPlan {
	out := shared
	out.Days = slices.Clone(shared.Days)
	meals := MonthMeals(out)
	g.fillGaps(meals, child)
	for i := range out.Days {
		out.Days[i].Meals = meals[i]
	}
	return out
}

func (g *Generator) fillGaps(days []Meals, child stage.ID) {
	pool, ok := g.registry.Pool(child)
	if !ok {
		return
	}
	for _, slot := range stage.Slots {
		candidates := pool.Get(slot)
		if len(candidates) == 0 {
			continue
		}
		var fill []string
		for i := range days {
			if days[i].Get(slot) != "" {
				continue
			}
			if fill == nil {
				fill = Pick(g.rng, candidates, len(days))
			}
			days[i].Set(slot, fill[i])
		}
	}
}

// PlanGroup generates the plans for one stage group. The group shares one
// plan drawn from the merged pool of its stages when they are mergeable, or
// from the base stage's pool otherwise. Children are then bucketed by
// canonical stage and each bucket gets the shared plan with its own gaps
// filled. It returns nil when the base stage has no menu.
func (g *Generator) PlanGroup(group StageGroup, period Period) []PlanEntry {
	if len(group.Children) == 0 {
		return nil
	}

	stages := group.Stages()
	pool, ok := g.registry.Pool(group.Base)
	merged := len(stages) > 1 && g.registry.IsMergeable(stages)
	if merged {
		pool, ok = g.registry.MergedPool(stages), true
	}
	if !ok || pool.Empty() {
		return nil
	}

	var (
		weekly  []DayMeal
		monthly MonthPlan
	)
	if period.Kind == KindMonthly {
		monthly = g.MonthlyPlan(pool, period.Year, period.Month)
	} else {
		weekly = g.WeeklyPlan(pool)
	}

	var entries []PlanEntry
	index := map[stage.ID]int{}
	for _, child := range group.Children {
		canonical := child.Stage.Canonical()
		if i, seen := index[canonical]; seen {
			entries[i].Children = append(entries[i].Children, child)
			continue
		}
		index[canonical] = len(entries)
		entries = append(entries, PlanEntry{
			Children: []ChildInfo{child},
			Stage:    canonical,
			Shared:   len(group.Children) > 1,
			Merged:   merged,
		})
	}

	for i := range entries {
		if period.Kind == KindMonthly {
			filled := g.FillMonthGapsForChild(monthly, entries[i].Stage)
			entries[i].Monthly = &filled
		} else {
			entries[i].Weekly = g.FillGapsForChild(weekly, entries[i].Stage)
		}
	}
	return entries
}
