package stage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	_, ok := reg.Pool(PreWeaning)
	assert.False(t, ok, "pre-weaning has no menu pool")

	for _, id := range []ID{Early, Mid} {
		p, ok := reg.Pool(id)
		require.True(t, ok)
		assert.NotEmpty(t, p.Breakfast)
		assert.NotEmpty(t, p.Lunch)
		assert.Empty(t, p.Dinner, "%s has no dinner menu", id)
		assert.Empty(t, p.Snack, "%s has no snack menu", id)
	}

	for _, id := range []ID{Late, Completion, Toddler, GeneralToddler} {
		p, ok := reg.Pool(id)
		require.True(t, ok)
		for _, slot := range Slots {
			assert.NotEmpty(t, p.Get(slot), "%s/%s", id, slot)
		}
	}

	toddler, _ := reg.Pool(Toddler)
	general, _ := reg.Pool(GeneralToddler)
	assert.Equal(t, toddler, general)
}

func TestPoolIsACopy(t *testing.T) {
	reg := Default()
	p, ok := reg.Pool(Late)
	require.True(t, ok)
	original := p.Breakfast[0]
	p.Breakfast[0] = "changed"

	again, _ := reg.Pool(Late)
	assert.Equal(t, original, again.Breakfast[0])
}

func TestPoolByName(t *testing.T) {
	reg := Default()

	p, ok := reg.PoolByName("완료기 이유식")
	require.True(t, ok)
	assert.NotEmpty(t, p.Dinner)

	_, ok = reg.PoolByName("nope")
	assert.False(t, ok)
}

func TestIsMergeable(t *testing.T) {
	reg := Default()

	assert.True(t, reg.IsMergeable([]ID{Toddler, GeneralToddler}))
	assert.True(t, reg.IsMergeable([]ID{GeneralToddler}))
	assert.False(t, reg.IsMergeable([]ID{Completion, Toddler}))
	assert.False(t, reg.IsMergeable([]ID{Mid, Late}))
	assert.False(t, reg.IsMergeable(nil))
}

func TestMergedPoolDeduplicates(t *testing.T) {
	reg := NewRegistry(map[ID]MealPool{
		Mid:  {Breakfast: []string{"a", "b"}, Lunch: []string{"x"}},
		Late: {Breakfast: []string{"b", "c"}, Dinner: []string{"d"}},
	}, nil)

	merged := reg.MergedPool([]ID{Mid, Late, PreWeaning})
	assert.Equal(t, []string{"a", "b", "c"}, merged.Breakfast)
	assert.Equal(t, []string{"x"}, merged.Lunch)
	assert.Equal(t, []string{"d"}, merged.Dinner)
	assert.Empty(t, merged.Snack)

	toddlers := Default().MergedPool([]ID{Toddler, GeneralToddler})
	toddler, _ := Default().Pool(Toddler)
	assert.Equal(t, toddler, toddlers)
}

func TestMonthsSinceBirth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int
	}{
		{"SameDay", 2024, time.March, 15, 0},
		{"DayNotReached", 2024, time.February, 16, 0},
		{"DayReached", 2024, time.February, 15, 1},
		{"AcrossYear", 2023, time.March, 20, 11},
		{"TwoYears", 2022, time.March, 1, 24},
		{"FutureClampsToZero", 2025, time.January, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsSinceBirth(tt.year, tt.month, tt.day, now))
		})
	}

	birth := time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, MonthsSince(birth, now))
}
