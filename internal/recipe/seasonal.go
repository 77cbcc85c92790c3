package recipe

import (
	"slices"
	"strings"
	"time"
)

var seasonal = map[time.Month][]string{
	time.January:   {"무", "배추", "시금치", "귤", "대구", "딸기"},
	time.February:  {"시금치", "딸기", "무", "배추", "대구"},
	time.March:     {"시금치", "양배추", "딸기", "미나리", "청경채"},
	time.April:     {"시금치", "양배추", "완두콩", "딸기", "청경채"},
	time.May:       {"감자", "양배추", "완두콩", "애호박", "양파"},
	time.June:      {"감자", "애호박", "옥수수", "양파", "브로콜리"},
	time.July:      {"옥수수", "감자", "애호박", "고구마", "브로콜리"},
	time.August:    {"옥수수", "고구마", "배", "단호박", "애호박"},
	time.September: {"고구마", "배", "사과", "단호박", "연어"},
	time.October:   {"사과", "배", "단호박", "고구마", "무", "갈치"},
	time.November:  {"사과", "배추", "무", "시금치", "귤", "갈치"},
	time.December:  {"배추", "무", "시금치", "귤", "대구"},
}

// SeasonalIngredients returns the ingredients in season during a month.
// An invalid month yields nil.
func SeasonalIngredients(month time.Month) []string {
	return slices.Clone(seasonal[month])
}

// Seasonal returns the in-season ingredients a menu name mentions.
func Seasonal(menu string, month time.Month) []string {
	var found []string
	for _, ing := range seasonal[month] {
		if strings.Contains(menu, ing) {
			found = append(found, ing)
		}
	}
	return found
}
