package planner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StoredPlan is a serialized planning result kept in the database.
type StoredPlan struct {
	ID        string
	Kind      Kind
	Children  int
	PlanData  []byte // Raw JSON of the result
	CreatedAt time.Time
}

// PlanRepository is a database-backed repository for generated plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{db: d}
}

// Save inserts a plan. Saving the same ID twice is an error.
func (r *PlanRepository) Save(ctx context.Context, p StoredPlan) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meal_plans (id, kind, children, plan_data, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, string(p.Kind), p.Children, string(p.PlanData), createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal plan %s: %w", p.ID, err)
	}
	return nil
}

// Get retrieves a plan by ID. A missing plan returns nil without error.
func (r *PlanRepository) Get(ctx context.Context, id string) (*StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, kind, children, plan_data, created_at FROM meal_plans WHERE id = ?`, id)

	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal plan %s: %w", id, err)
	}
	return p, nil
}

// ListRecent retrieves the most recent plans, newest first.
func (r *PlanRepository) ListRecent(ctx context.Context, limit int) ([]StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, children, plan_data, created_at FROM meal_plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent meal plans: %w", err)
	}
	defer rows.Close()

	var plans []StoredPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(s scanner) (*StoredPlan, error) {
	var (
		p    StoredPlan
		kind string
		data string
	)
	if err := s.Scan(&p.ID, &kind, &p.Children, &data, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Kind = Kind(kind)
	p.PlanData = []byte(data)
	return &p, nil
}
