package planner

import (
	"time"

	"woo-ah-sik/internal/stage"
)

// Kind selects the shape of a generated plan.
type Kind string

const (
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

// DayNames labels the days of a weekly plan, Monday first.
var DayNames = []string{"월", "화", "수", "목", "금", "토", "일"}

// Meals holds the four meal slots of one day. An empty string means the slot
// has no menu at the child's stage.
type Meals struct {
	Breakfast string `json:"breakfast" yaml:"breakfast"`
	Lunch     string `json:"lunch" yaml:"lunch"`
	Dinner    string `json:"dinner" yaml:"dinner"`
	Snack     string `json:"snack" yaml:"snack"`
}

// Get returns the menu in a slot.
func (m Meals) Get(slot stage.Slot) string {
	switch slot {
	case stage.Breakfast:
		return m.Breakfast
	case stage.Lunch:
		return m.Lunch
	case stage.Dinner:
		return m.Dinner
	case stage.Snack:
		return m.Snack
	}
	return ""
}

// Set stores a menu in a slot.
func (m *Meals) Set(slot stage.Slot, menu string) {
	switch slot {
	case stage.Breakfast:
		m.Breakfast = menu
	case stage.Lunch:
		m.Lunch = menu
	case stage.Dinner:
		m.Dinner = menu
	case stage.Snack:
		m.Snack = menu
	}
}

// DayMeal is one day of a weekly plan.
type DayMeal struct {
	Day   string `json:"day" yaml:"day"`
	Meals `yaml:",inline"`
}

// MonthDayMeal is one calendar day of a monthly plan.
type MonthDayMeal struct {
	Date  int `json:"date" yaml:"date"`
	Meals `yaml:",inline"`
}

// MonthPlan covers every day of one calendar month.
type MonthPlan struct {
	Year  int            `json:"year" yaml:"year"`
	Month time.Month     `json:"month" yaml:"month"`
	Days  []MonthDayMeal `json:"days" yaml:"days"`
}

// DaysIn returns the number of calendar days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekMeals returns the meals of a weekly plan without day labels.
func WeekMeals(days []DayMeal) []Meals {
	meals := make([]Meals, len(days))
	for i, d := range days {
		meals[i] = d.Meals
	}
	return meals
}

// MonthMeals returns the meals of a monthly plan without dates.
func MonthMeals(plan MonthPlan) []Meals {
	meals := make([]Meals, len(plan.Days))
	for i, d := range plan.Days {
		meals[i] = d.Meals
	}
	return meals
}
