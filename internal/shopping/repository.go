package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository handles persistence of shopping lists.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save creates a new shopping list in the database.
func (r *Repository) Save(ctx context.Context, list *ShoppingList) (int64, error) {
	childrenJSON, err := json.Marshal(list.Children)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal shopping list children: %w", err)
	}
	itemsJSON, err := json.Marshal(list.Groups)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal shopping list items: %w", err)
	}

	createdAt := list.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO shopping_lists (meal_plan_id, children, items, created_at) VALUES (?, ?, ?, ?)`,
		list.MealPlanID, string(childrenJSON), string(itemsJSON), createdAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert shopping list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read shopping list id: %w", err)
	}
	list.ID = id
	list.CreatedAt = createdAt
	return id, nil
}

// GetByMealPlanID retrieves the shopping lists of a meal plan in insertion order.
func (r *Repository) GetByMealPlanID(ctx context.Context, mealPlanID string) ([]*ShoppingList, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, meal_plan_id, children, items, created_at FROM shopping_lists WHERE meal_plan_id = ? ORDER BY id`,
		mealPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping lists by meal plan ID: %w", err)
	}
	defer rows.Close()

	var lists []*ShoppingList
	for rows.Next() {
		var (
			l        ShoppingList
			children string
			items    string
		)
		if err := rows.Scan(&l.ID, &l.MealPlanID, &children, &items, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		if err := json.Unmarshal([]byte(children), &l.Children); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shopping list children: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &l.Groups); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shopping list items: %w", err)
		}
		lists = append(lists, &l)
	}
	return lists, rows.Err()
}

// DeleteByMealPlanID deletes the shopping lists of a meal plan.
func (r *Repository) DeleteByMealPlanID(ctx context.Context, mealPlanID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE meal_plan_id = ?`, mealPlanID); err != nil {
		return fmt.Errorf("failed to delete shopping lists for %s: %w", mealPlanID, err)
	}
	return nil
}
