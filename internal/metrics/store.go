package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GenerationMetric records one generated plan group.
type GenerationMetric struct {
	Kind      string
	BaseStage string
	Children  int
	Days      int
	Merged    bool
	LatencyMS int64
	Timestamp time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Timestamps are kept as UTC text so day grouping and range checks are
// plain string comparisons.
func formatTS(t time.Time) string {
	return t.UTC().Format(time.DateTime)
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_metrics (kind, base_stage, children, days, merged, latency_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Kind, m.BaseStage, m.Children, m.Days, m.Merged, m.LatencyMS, formatTS(ts),
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation metric: %w", err)
	}
	return nil
}

// DailyCount summarizes the generations of a single day.
type DailyCount struct {
	Date         string
	Groups       int
	Children     int
	MergedGroups int
	AvgLatencyMS float64
}

// DailyCounts retrieves per-day totals for the last N days, newest first.
func (s *Store) DailyCounts(ctx context.Context, days int) ([]DailyCount, error) {
	since := formatTS(s.now().AddDate(0, 0, -days))
	rows, err := s.db.QueryContext(ctx,
		`SELECT substr(timestamp, 1, 10) AS day, COUNT(*), SUM(children), SUM(merged), AVG(latency_ms)
		 FROM generation_metrics
		 WHERE timestamp >= ?
		 GROUP BY day
		 ORDER BY day DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	var results []DailyCount
	for rows.Next() {
		var c DailyCount
		if err := rows.Scan(&c.Date, &c.Groups, &c.Children, &c.MergedGroups, &c.AvgLatencyMS); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := formatTS(s.now().AddDate(0, 0, -olderThanDays))
	res, err := s.db.ExecContext(ctx, `DELETE FROM generation_metrics WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up generation metrics: %w", err)
	}
	return res.RowsAffected()
}
