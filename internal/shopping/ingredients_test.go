package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woo-ah-sik/internal/planner"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		menu string
		want []string
	}{
		{"소고기 미음", []string{"소고기", "쌀"}},
		{"찹쌀죽", []string{"찹쌀"}},
		{"무른밥", []string{"쌀"}},
		{"제육볶음", []string{"돼지고기"}},
		{"달걀찜", []string{"계란"}},
		{"배추국", []string{"배추"}},
		{"비타민 나물", []string{"비타민채소"}},
		{"생선까스", []string{"생선"}},
		{"함박스테이크", []string{"소고기"}},
		{"닭볶음탕", []string{"닭고기"}},
		{"오트밀죽", []string{"오트밀"}},
		{"쌀밥", []string{"쌀"}},
		{"수제 과자", nil},
	}

	for _, tt := range tests {
		t.Run(tt.menu, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.menu))
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"소고기", 3, "약 150g"},
		{"미역", 1, "약 20g"},
		{"쌀", 20, "약 1kg"},
		{"돼지고기", 25, "약 1.5kg"},
		{"우유", 1, "약 200ml"},
		{"우유", 3, "약 600ml"},
		{"귤", 2, "약 4개"},
		{"치즈", 3, "약 3장"},
		{"모르는재료", 3, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quantity(tt.name, tt.count), "%s x%d", tt.name, tt.count)
	}
}

func TestFromDays(t *testing.T) {
	days := []planner.Meals{
		{Breakfast: "소고기 미음", Lunch: "소고기 감자죽", Snack: "바나나 + 요거트"},
	}

	groups := FromDays(days)
	require.Len(t, groups, 5)

	var categories []string
	for _, g := range groups {
		categories = append(categories, g.Category)
	}
	assert.Equal(t, []string{"육류", "채소", "과일", "유제품", "곡류"}, categories)

	beef := groups[0].Items[0]
	assert.Equal(t, "소고기", beef.Name)
	assert.Equal(t, "약 100g", beef.Quantity)
	assert.Equal(t, []string{"소고기 미음", "소고기 감자죽"}, beef.Meals)

	assert.Equal(t, "약 100g", groups[4].Items[0].Quantity)
	assert.Equal(t, []string{"바나나 + 요거트"}, groups[2].Items[0].Meals)
	assert.Equal(t, "🍎", groups[2].Emoji)

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, FromDays(nil))
		assert.Empty(t, FromDays([]planner.Meals{{}}))
	})
}

func TestLinks(t *testing.T) {
	assert.Equal(t, "https://www.coupang.com/np/search?q=%EC%86%8C%EA%B3%A0%EA%B8%B0&channel=user", CoupangLink("소고기"))
	assert.Equal(t, "https://www.kurly.com/search?sword=%EC%86%8C%EA%B3%A0%EA%B8%B0", KurlyLink("소고기"))
}
