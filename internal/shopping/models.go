package shopping

import "time"

// ShoppingList represents the ingredients needed for one plan entry.
type ShoppingList struct {
	ID         int64           `json:"id" yaml:"id"`
	MealPlanID string          `json:"meal_plan_id" yaml:"meal_plan_id"`
	Children   []string        `json:"children" yaml:"children"`
	Groups     []CategoryGroup `json:"groups" yaml:"groups"`
	CreatedAt  time.Time       `json:"created_at" yaml:"created_at"`
}

// Item is one ingredient with its estimated quantity and the menus using it.
type Item struct {
	Name     string   `json:"name" yaml:"name"`
	Emoji    string   `json:"emoji" yaml:"emoji"`
	Quantity string   `json:"quantity" yaml:"quantity"`
	Meals    []string `json:"meals" yaml:"meals"`
}

// CategoryGroup holds the items of one grocery category.
type CategoryGroup struct {
	Category string `json:"category" yaml:"category"`
	Emoji    string `json:"emoji" yaml:"emoji"`
	Items    []Item `json:"items" yaml:"items"`
}

// Count returns the number of items across all groups.
func (l *ShoppingList) Count() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Items)
	}
	return n
}
