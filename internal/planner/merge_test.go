package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"woo-ah-sik/internal/stage"
)

func TestFillGapsForChild(t *testing.T) {
	g := NewGenerator(WithSeed(5))

	shared, ok := g.WeeklyPlanFromPool(stage.Mid)
	require.True(t, ok)

	filled := g.FillGapsForChild(shared, stage.Late)
	require.Len(t, filled, len(shared))

	latePool, _ := stage.Default().Pool(stage.Late)
	for i := range shared {
		assert.Equal(t, shared[i].Day, filled[i].Day)
		assert.Equal(t, shared[i].Breakfast, filled[i].Breakfast)
		assert.Equal(t, shared[i].Lunch, filled[i].Lunch)
		assert.Contains(t, latePool.Dinner, filled[i].Dinner)
		assert.Contains(t, latePool.Snack, filled[i].Snack)

		assert.Empty(t, shared[i].Dinner, "shared plan must not be modified")
	}

	t.Run("UnknownStageReturnsCopy", func(t *testing.T) {
		assert.Equal(t, shared, g.FillGapsForChild(shared, stage.ID(-3)))
	})

	t.Run("StageWithoutSlotKeepsGap", func(t *testing.T) {
		out := g.FillGapsForChild(shared, stage.Early)
		for _, d := range out {
			assert.Empty(t, d.Dinner)
		}
	})
}

func TestFillMonthGapsForChild(t *testing.T) {
	g := NewGenerator(WithSeed(6))

	shared, ok := g.MonthlyPlanFromPool(stage.Early, 2024, time.February)
	require.True(t, ok)

	filled := g.FillMonthGapsForChild(shared, stage.Completion)
	require.Len(t, filled.Days, 29)
	assert.Equal(t, 2024, filled.Year)
	for i, d := range filled.Days {
		assert.Equal(t, shared.Days[i].Breakfast, d.Breakfast)
		assert.NotEmpty(t, d.Dinner)
		assert.NotEmpty(t, d.Snack)
		assert.Empty(t, shared.Days[i].Snack)
	}
}

func TestFillGapsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := stage.ID(rapid.IntRange(1, 6).Draw(t, "base"))
		target := stage.ID(rapid.IntRange(1, 6).Draw(t, "target"))
		g := NewGenerator(WithSeed(rapid.Uint64().Draw(t, "seed")))

		shared, _ := g.WeeklyPlanFromPool(base)
		// Blank a random slot on a random day to exercise breakfast/lunch gaps.
		day := rapid.IntRange(0, 6).Draw(t, "day")
		slot := rapid.SampledFrom(stage.Slots).Draw(t, "slot")
		shared[day].Set(slot, "")

		filled := g.FillGapsForChild(shared, target)
		pool, _ := stage.Default().Pool(target)
		for i := range shared {
			for _, s := range stage.Slots {
				before, after := shared[i].Get(s), filled[i].Get(s)
				if before != "" && before != after {
					t.Fatalf("day %d slot %s changed from %q to %q", i, s, before, after)
				}
				if before == "" && len(pool.Get(s)) > 0 && after == "" {
					t.Fatalf("day %d slot %s left empty", i, s)
				}
			}
		}
	})
}

func TestPlanGroup(t *testing.T) {
	g := NewGenerator(WithSeed(8))
	weekly := Period{Kind: KindWeekly}

	t.Run("SoloChild", func(t *testing.T) {
		entries := g.PlanGroup(StageGroup{Children: []ChildInfo{child(0, stage.Late)}, Base: stage.Late}, weekly)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Shared)
		assert.False(t, entries[0].Merged)
		assert.Len(t, entries[0].Weekly, 7)
		assert.Nil(t, entries[0].Monthly)
	})

	t.Run("SharedFromBaseWithGapFill", func(t *testing.T) {
		group := GroupChildren([]ChildInfo{child(0, stage.Late), child(1, stage.Early)})
		require.Len(t, group, 1)

		entries := g.PlanGroup(group[0], weekly)
		require.Len(t, entries, 2)

		early, late := entries[0], entries[1]
		assert.Equal(t, stage.Early, early.Stage)
		assert.Equal(t, stage.Late, late.Stage)
		assert.True(t, early.Shared)
		assert.False(t, early.Merged)

		earlyPool, _ := stage.Default().Pool(stage.Early)
		for i := range early.Weekly {
			assert.Equal(t, early.Weekly[i].Breakfast, late.Weekly[i].Breakfast, "shared breakfast")
			assert.Contains(t, earlyPool.Breakfast, late.Weekly[i].Breakfast)
			assert.Empty(t, early.Weekly[i].Dinner)
			assert.NotEmpty(t, late.Weekly[i].Dinner)
		}
	})

	t.Run("MergeableStagesCollapse", func(t *testing.T) {
		group := StageGroup{
			Children: []ChildInfo{child(0, stage.Toddler), child(1, stage.GeneralToddler)},
			Base:     stage.Toddler,
		}
		entries := g.PlanGroup(group, Period{Kind: KindMonthly, Year: 2024, Month: time.February})
		require.Len(t, entries, 1)
		assert.True(t, entries[0].Merged)
		assert.True(t, entries[0].Shared)
		assert.Len(t, entries[0].Children, 2)
		assert.Equal(t, stage.Toddler, entries[0].Stage)
		require.NotNil(t, entries[0].Monthly)
		assert.Len(t, entries[0].Monthly.Days, 29)
		assert.Len(t, entries[0].Meals(), 29)
	})

	t.Run("BaseWithoutMenu", func(t *testing.T) {
		group := StageGroup{Children: []ChildInfo{child(0, stage.PreWeaning)}, Base: stage.PreWeaning}
		assert.Nil(t, g.PlanGroup(group, weekly))
	})

	t.Run("EmptyGroup", func(t *testing.T) {
		assert.Nil(t, g.PlanGroup(StageGroup{}, weekly))
	})
}
