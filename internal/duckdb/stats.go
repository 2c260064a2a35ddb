package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LabelStat aggregates scores for one label across all loaded batches.
type LabelStat struct {
	Label  string
	Count  int
	Scored int
	Failed int
	// Mean, Min and Max are nil when no item of the label has a score.
	Mean *float64
	Min  *float64
	Max  *float64
}

// LabelStats returns per-label aggregates ordered by label.
func LabelStats(ctx context.Context, db *sql.DB) ([]LabelStat, error) {
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT label, item_count, scored_count, failed_count, mean_score, min_score, max_score
		FROM v_label_stats
		ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("query label stats: %w", err)
	}
	defer rows.Close()

	var stats []LabelStat
	for rows.Next() {
		var (
			stat            LabelStat
			mean, low, high sql.NullFloat64
		)
		if err := rows.Scan(&stat.Label, &stat.Count, &stat.Scored, &stat.Failed, &mean, &low, &high); err != nil {
			return nil, fmt.Errorf("scan label stats: %w", err)
		}
		stat.Mean = floatPtr(mean)
		stat.Min = floatPtr(low)
		stat.Max = floatPtr(high)
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read label stats: %w", err)
	}
	return stats, nil
}

// BatchCount returns the number of loaded batches.
func BatchCount(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM batches").Scan(&count); err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return count, nil
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	out := value.Float64
	return &out
}
