package planner

import "strings"

// Category is the coarse protein group of a menu, used only to spread
// selections across different proteins.
type Category int

const (
	CategoryBeef Category = iota
	CategoryChicken
	CategoryFish
	CategoryPork
	CategoryTofu
	CategoryEgg
	CategoryOther
)

const numCategories = int(CategoryOther) + 1

var categoryNames = [numCategories]string{"beef", "chicken", "fish", "pork", "tofu", "egg", "other"}

func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Checked in order; the first keyword found in a menu name decides.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryBeef, []string{"소고기"}},
	{CategoryChicken, []string{"닭"}},
	{CategoryFish, []string{"연어", "대구", "생선", "갈치", "어묵", "멸치"}},
	{CategoryPork, []string{"돼지", "제육"}},
	{CategoryTofu, []string{"두부"}},
	{CategoryEgg, []string{"계란", "달걀"}},
}

// CategoryOf classifies a menu name by substring match. Anything without a
// known protein keyword, including the empty placeholder, is CategoryOther.
func CategoryOf(menu string) Category {
	if menu == "" {
		return CategoryOther
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(menu, kw) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
