package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woo-ah-sik/internal/config"
	"woo-ah-sik/internal/database"
	"woo-ah-sik/internal/metrics"
	"woo-ah-sik/internal/planner"
	"woo-ah-sik/internal/shopping"
	"woo-ah-sik/internal/stage"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

type memRecorder struct {
	metrics []metrics.GenerationMetric
}

func (r *memRecorder) Record(_ context.Context, m metrics.GenerationMetric) error {
	r.metrics = append(r.metrics, m)
	return nil
}

func newTestApp(seed uint64, opts ...Option) *App {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewApp(&config.Config{PlanSeed: &seed}, opts...)
}

func born(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateValidation(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(1)

	tests := []struct {
		name string
		sub  Submission
		err  error
	}{
		{"NoChildren", Submission{}, ErrNoChildren},
		{"TooManyChildren", Submission{Children: make([]ChildInput, MaxChildren+1)}, ErrTooManyChildren},
		{"MissingBirthDate", Submission{Children: []ChildInput{{}}}, ErrInvalidBirthDate},
		{"FutureBirthDate", Submission{Children: []ChildInput{{BirthDate: fixedNow.AddDate(0, 0, 1)}}}, ErrInvalidBirthDate},
		{"FormulaChildWithoutWeight", Submission{Children: []ChildInput{{BirthDate: born(2024, 1, 2)}}}, ErrInvalidWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Generate(ctx, tt.sub)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := a.Generate(ctx, Submission{
			Kind:     "daily",
			Children: []ChildInput{{BirthDate: born(2023, 6, 1)}},
		})
		require.Error(t, err)
	})
}

func TestGenerateHousehold(t *testing.T) {
	ctx := context.Background()
	rec := &memRecorder{}
	a := newTestApp(42, WithRecorder(rec))

	result, err := a.Generate(ctx, Submission{Children: []ChildInput{
		{BirthDate: born(2023, 6, 1)},                // 9 months, late
		{Label: "막내", BirthDate: born(2023, 10, 20)}, // 4 months, early
		{BirthDate: born(2024, 1, 2), WeightKg: 5},   // 2 months, pre-weaning
	}})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, fixedNow, result.CreatedAt)
	assert.Equal(t, planner.KindWeekly, result.Kind)

	require.Len(t, result.Children, 3)
	assert.Equal(t, "첫째 아이", result.Children[0].Label)
	assert.Equal(t, stage.Late, result.Children[0].Stage)
	assert.Equal(t, "막내", result.Children[1].Label)
	assert.Equal(t, 4, result.Children[1].Months)
	assert.Equal(t, stage.Early, result.Children[1].Stage)
	assert.Equal(t, stage.PreWeaning, result.Children[2].Stage)

	require.Len(t, result.Formulas, 1)
	f := result.Formulas[0]
	assert.Equal(t, "셋째 아이", f.Child.Label)
	assert.Equal(t, 6, f.Amount.FeedingsPerDay)
	assert.Equal(t, 120, f.Amount.PerFeedingMax)
	assert.Equal(t, 100, f.Amount.PerFeedingMin)
	assert.Len(t, f.Schedule, 6)

	// Late and early are two stages apart, so they share one plan.
	require.Len(t, result.Plans, 2)
	early, late := result.Plans[0], result.Plans[1]
	assert.Equal(t, stage.Early, early.Stage)
	assert.Equal(t, stage.Late, late.Stage)
	assert.True(t, early.Shared)
	assert.False(t, early.Merged)
	for i := range early.Weekly {
		assert.Equal(t, early.Weekly[i].Breakfast, late.Weekly[i].Breakfast)
		assert.Equal(t, planner.DayNames[i], late.Weekly[i].Day)
	}

	require.Len(t, rec.metrics, 1)
	assert.Equal(t, "early", rec.metrics[0].BaseStage)
	assert.Equal(t, 2, rec.metrics[0].Children)
	assert.Equal(t, 7, rec.metrics[0].Days)

	t.Run("SameSeedSameMenus", func(t *testing.T) {
		again, err := newTestApp(42).Generate(ctx, Submission{Children: []ChildInput{
			{BirthDate: born(2023, 6, 1)},
			{BirthDate: born(2023, 10, 20)},
		}})
		require.NoError(t, err)
		require.Len(t, again.Plans, 2)
		assert.Equal(t, result.Plans[0].Weekly, again.Plans[0].Weekly)
		assert.Equal(t, result.Plans[1].Weekly, again.Plans[1].Weekly)
	})
}

func TestGenerateSeparateGroups(t *testing.T) {
	result, err := newTestApp(3).Generate(context.Background(), Submission{Children: []ChildInput{
		{BirthDate: born(2023, 10, 20)}, // early
		{BirthDate: born(2023, 4, 1)},  // 11 months, completion
	}})
	require.NoError(t, err)

	require.Len(t, result.Plans, 2)
	for _, p := range result.Plans {
		assert.False(t, p.Shared)
		assert.Len(t, p.Children, 1)
	}
	assert.Equal(t, stage.Early, result.Plans[0].Stage)
	assert.Equal(t, stage.Completion, result.Plans[1].Stage)
}

func TestGenerateMonthlyMerged(t *testing.T) {
	rec := &memRecorder{}
	result, err := newTestApp(9, WithRecorder(rec)).Generate(context.Background(), Submission{
		Kind:  planner.KindMonthly,
		Year:  2024,
		Month: time.February,
		Children: []ChildInput{
			{BirthDate: born(2022, 1, 1)}, // toddler
			{BirthDate: born(2020, 1, 1)}, // general toddler
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Plans, 1)
	entry := result.Plans[0]
	assert.True(t, entry.Merged)
	assert.True(t, entry.Shared)
	assert.Equal(t, stage.Toddler, entry.Stage)
	require.NotNil(t, entry.Monthly)
	assert.Equal(t, time.February, entry.Monthly.Month)
	assert.Len(t, entry.Monthly.Days, 29)

	require.Len(t, rec.metrics, 1)
	assert.True(t, rec.metrics[0].Merged)
	assert.Equal(t, "monthly", rec.metrics[0].Kind)
	assert.Equal(t, 29, rec.metrics[0].Days)

	t.Run("DefaultsToCurrentMonth", func(t *testing.T) {
		result, err := newTestApp(9).Generate(context.Background(), Submission{
			Kind:     planner.KindMonthly,
			Children: []ChildInput{{BirthDate: born(2022, 1, 1)}},
		})
		require.NoError(t, err)
		require.Len(t, result.Plans, 1)
		assert.Equal(t, time.March, result.Plans[0].Monthly.Month)
		assert.Len(t, result.Plans[0].Monthly.Days, 31)
	})
}

func TestFormulaOnlyHousehold(t *testing.T) {
	result, err := newTestApp(1).Generate(context.Background(), Submission{Children: []ChildInput{
		{BirthDate: born(2024, 2, 1), WeightKg: 10},
	}})
	require.NoError(t, err)
	assert.Empty(t, result.Plans)
	require.Len(t, result.Formulas, 1)
	assert.Equal(t, 8, result.Formulas[0].Amount.FeedingsPerDay)
	assert.Equal(t, "00:00", result.Formulas[0].Schedule[0].Time)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	shops := shopping.NewRepository(db.SQL)
	a := newTestApp(5,
		WithPlanStore(planner.NewPlanRepository(db.SQL), shops),
		WithRecorder(metrics.NewStore(db.SQL)),
	)

	result, err := a.Generate(ctx, Submission{Children: []ChildInput{
		{BirthDate: born(2023, 6, 1)},
		{BirthDate: born(2023, 10, 20)},
	}})
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, result))

	loaded, err := a.Load(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, loaded.ID)
	assert.True(t, result.CreatedAt.Equal(loaded.CreatedAt))
	assert.Equal(t, result.Children, loaded.Children)
	require.Len(t, loaded.Plans, 2)
	assert.Equal(t, result.Plans[1].Weekly, loaded.Plans[1].Weekly)

	lists, err := shops.GetByMealPlanID(ctx, result.ID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, []string{"둘째 아이"}, lists[0].Children)
	assert.NotEmpty(t, lists[1].Groups)

	t.Run("UnknownID", func(t *testing.T) {
		_, err := a.Load(ctx, "missing")
		require.Error(t, err)
	})

	t.Run("NoStore", func(t *testing.T) {
		require.Error(t, newTestApp(1).Save(ctx, result))
		_, err := newTestApp(1).Load(ctx, result.ID)
		require.Error(t, err)
	})
}

func TestShoppingLists(t *testing.T) {
	result := &Result{
		ID: "plan-x",
		Plans: []planner.PlanEntry{{
			Children: []planner.ChildInfo{{Label: "첫째 아이"}},
			Weekly:   []planner.DayMeal{{Day: "월", Meals: planner.Meals{Breakfast: "소고기 미음"}}},
		}},
	}

	lists := ShoppingLists(result)
	require.Len(t, lists, 1)
	assert.Equal(t, "plan-x", lists[0].MealPlanID)
	assert.Equal(t, []string{"첫째 아이"}, lists[0].Children)
	assert.Equal(t, 2, lists[0].Count())
}
