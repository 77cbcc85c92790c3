// Package recipe annotates menu names with allergen and seasonal information.
package recipe

import (
	"slices"
	"strings"
)

// Allergen is one of the allergy-causing food groups that Korean food
// labelling requires.
type Allergen struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

type allergenRule struct {
	Allergen
	keywords []string
}

var allergenRules = []allergenRule{
	{Allergen{"난류", "🥚"}, []string{"계란", "달걀", "메추리알"}},
	{Allergen{"우유", "🥛"}, []string{"우유", "요거트", "치즈", "시리얼"}},
	{Allergen{"대두", "🫘"}, []string{"두부", "된장", "간장", "콩나물"}},
	{Allergen{"밀", "🌾"}, []string{"국수", "우동", "과자", "쿠키", "소면"}},
	{Allergen{"소고기", "🐄"}, []string{"소고기"}},
	{Allergen{"돼지고기", "🐷"}, []string{"돼지고기", "제육"}},
	{Allergen{"닭고기", "🐔"}, []string{"닭고기", "닭가슴살", "닭볶음"}},
	{Allergen{"연어", "🐟"}, []string{"연어"}},
	{Allergen{"대구", "🐟"}, []string{"대구"}},
	{Allergen{"갈치", "🐟"}, []string{"갈치"}},
	{Allergen{"생선", "🐟"}, []string{"생선"}},
	{Allergen{"어묵", "🍢"}, []string{"어묵"}},
}

// AllergenNames lists every known allergen group in check order.
func AllergenNames() []string {
	names := make([]string, len(allergenRules))
	for i, r := range allergenRules {
		names[i] = r.Name
	}
	return names
}

// Allergens returns the allergen groups a menu name mentions, in check order.
func Allergens(menu string) []Allergen {
	var found []Allergen
	for _, r := range allergenRules {
		if slices.ContainsFunc(r.keywords, func(kw string) bool { return strings.Contains(menu, kw) }) {
			found = append(found, r.Allergen)
		}
	}
	return found
}
