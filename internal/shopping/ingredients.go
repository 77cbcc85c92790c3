package shopping

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"woo-ah-sik/internal/planner"
)

type unit string

const (
	grams      unit = "g"
	millilitre unit = "ml"
	pieces     unit = "개"
	sheets     unit = "장"
)

type ingredient struct {
	name     string
	category string
	emoji    string
	amount   float64 // per serving
	unit     unit
}

// Category names in display order.
var categoryOrder = []string{"육류", "생선·해산물", "채소", "달걀·두부", "과일", "유제품", "곡류"}

var categoryEmoji = map[string]string{
	"육류":     "🥩",
	"생선·해산물": "🐟",
	"채소":     "🥦",
	"달걀·두부":  "🥚",
	"과일":     "🍎",
	"유제품":    "🧀",
	"곡류":     "🌾",
}

var ingredients = []ingredient{
	{"소고기", "육류", "🥩", 50, grams},
	{"닭고기", "육류", "🍗", 50, grams},
	{"돼지고기", "육류", "🥓", 60, grams},

	{"연어", "생선·해산물", "🐟", 60, grams},
	{"대구", "생선·해산물", "🐟", 60, grams},
	{"갈치", "생선·해산물", "🐟", 70, grams},
	{"고등어", "생선·해산물", "🐟", 70, grams},
	{"삼치", "생선·해산물", "🐟", 70, grams},
	{"생선", "생선·해산물", "🐟", 70, grams},
	{"참치", "생선·해산물", "🐟", 50, grams},
	{"새우", "생선·해산물", "🦐", 50, grams},
	{"어묵", "생선·해산물", "🍢", 50, grams},

	{"당근", "채소", "🥕", 40, grams},
	{"감자", "채소", "🥔", 70, grams},
	{"고구마", "채소", "🍠", 70, grams},
	{"브로콜리", "채소", "🥦", 40, grams},
	{"시금치", "채소", "🥬", 30, grams},
	{"애호박", "채소", "🥒", 40, grams},
	{"단호박", "채소", "🎃", 60, grams},
	{"양배추", "채소", "🥬", 40, grams},
	{"청경채", "채소", "🥬", 30, grams},
	{"배추", "채소", "🥬", 50, grams},
	{"무", "채소", "🌿", 50, grams},
	{"양파", "채소", "🧅", 40, grams},
	{"완두콩", "채소", "🌱", 30, grams},
	{"콜리플라워", "채소", "🥦", 40, grams},
	{"콩나물", "채소", "🌱", 50, grams},
	{"미역", "채소", "🌿", 15, grams},
	{"옥수수", "채소", "🌽", 40, grams},
	{"비타민채소", "채소", "🥬", 30, grams},

	{"두부", "달걀·두부", "⬜", 60, grams},
	{"계란", "달걀·두부", "🥚", 1, pieces},

	{"바나나", "과일", "🍌", 1, pieces},
	{"사과", "과일", "🍎", 1, pieces},
	{"배", "과일", "🍐", 1, pieces},
	{"귤", "과일", "🍊", 2, pieces},
	{"딸기", "과일", "🍓", 5, pieces},
	{"아보카도", "과일", "🥑", 1, pieces},

	{"치즈", "유제품", "🧀", 1, sheets},
	{"우유", "유제품", "🥛", 200, millilitre},
	{"요거트", "유제품", "🥛", 1, pieces},

	{"쌀", "곡류", "🌾", 50, grams},
	{"찹쌀", "곡류", "🌾", 50, grams},
	{"오트밀", "곡류", "🌾", 30, grams},
}

const (
	rice     = "쌀"
	mask     = "⬜"
	vitamin  = "비타민"
	vitaminG = "비타민채"
)

var (
	byName = func() map[string]ingredient {
		m := make(map[string]ingredient, len(ingredients))
		for _, ing := range ingredients {
			m[ing.name] = ing
		}
		return m
	}()

	// Longest names are matched first so 찹쌀 wins over 쌀.
	matchOrder = func() []ingredient {
		out := slices.Clone(ingredients)
		slices.SortStableFunc(out, func(a, b ingredient) int {
			return utf8.RuneCountInString(b.name) - utf8.RuneCountInString(a.name)
		})
		return out
	}()

	aliases = []struct{ from, to string }{
		{"무른", mask + mask},
		{"닭볶음탕", "닭고기볶음"},
		{"제육", "돼지고기"},
		{"달걀", "계란"},
	}

	fishDishes = regexp.MustCompile(`생선까스|생선전|생선구이|생선조림`)
	plus       = regexp.MustCompile(`\s*\+\s*`)

	grainDishes = []string{"죽", "미음", "밥", "국수", "우동"}
)

// normalize rewrites menu names so keyword matching neither misses aliases
// nor fires on look-alike words (무른 is not 무).
func normalize(name string) string {
	for _, a := range aliases {
		name = strings.ReplaceAll(name, a.from, a.to)
	}
	name = strings.ReplaceAll(name, vitaminG, "\x00")
	name = strings.ReplaceAll(name, vitamin, "비타민채소")
	name = strings.ReplaceAll(name, "\x00", vitaminG)
	name = fishDishes.ReplaceAllString(name, "생선요리")
	return strings.ReplaceAll(name, "함박스테이크", "소고기요리")
}

// Extract returns the ingredients found in a single menu name.
func Extract(menu string) []string {
	text := normalize(menu)

	var found []string
	for _, ing := range matchOrder {
		if !strings.Contains(text, ing.name) {
			continue
		}
		found = append(found, ing.name)
		text = strings.ReplaceAll(text, ing.name, strings.Repeat(mask, utf8.RuneCountInString(ing.name)))
	}

	if slices.ContainsFunc(grainDishes, func(g string) bool { return strings.Contains(menu, g) }) &&
		!slices.Contains(found, "찹쌀") && !slices.Contains(found, "오트밀") && !slices.Contains(found, rice) {
		found = append(found, rice)
	}
	return found
}

// Quantity returns the display quantity for an ingredient used count times.
func Quantity(name string, count int) string {
	ing, ok := byName[name]
	if !ok {
		return ""
	}
	total := ing.amount * float64(count)

	switch ing.unit {
	case grams:
		rounded := math.Ceil(total/10) * 10
		if rounded >= 1000 {
			kg := strconv.FormatFloat(rounded/1000, 'f', 1, 64)
			return "약 " + strings.Replace(kg, ".0", "", 1) + "kg"
		}
		return "약 " + strconv.Itoa(int(rounded)) + "g"
	case millilitre:
		return "약 " + strconv.Itoa(int(math.Ceil(total/50)*50)) + "ml"
	default:
		return "약 " + strconv.Itoa(int(math.Ceil(total))) + string(ing.unit)
	}
}

// FromDays extracts the ingredients of every menu in the given days and
// groups them by category. Combined menus ("A + B") count each part.
// Empty categories are omitted.
func FromDays(days []planner.Meals) []CategoryGroup {
	type usage struct {
		count int
		meals []string
	}
	uses := make(map[string]*usage)
	var seen []string

	for _, day := range days {
		for _, meal := range []string{day.Breakfast, day.Lunch, day.Dinner, day.Snack} {
			if meal == "" {
				continue
			}
			for _, part := range plus.Split(meal, -1) {
				for _, name := range Extract(strings.TrimSpace(part)) {
					u, ok := uses[name]
					if !ok {
						u = &usage{}
						uses[name] = u
						seen = append(seen, name)
					}
					u.count++
					if !slices.Contains(u.meals, meal) {
						u.meals = append(u.meals, meal)
					}
				}
			}
		}
	}

	byCategory := make(map[string][]Item, len(categoryOrder))
	for _, name := range seen {
		ing := byName[name]
		byCategory[ing.category] = append(byCategory[ing.category], Item{
			Name:     name,
			Emoji:    ing.emoji,
			Quantity: Quantity(name, uses[name].count),
			Meals:    uses[name].meals,
		})
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, cat := range categoryOrder {
		items := byCategory[cat]
		if len(items) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Category: cat, Emoji: categoryEmoji[cat], Items: items})
	}
	return groups
}
