package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

type WeightEntryInput struct {
	WeightKG   float64
	MeasuredAt time.Time
	Notes      string
}

// AddWeightEntry appends to the weight log.
func AddWeightEntry(db *sql.DB, in WeightEntryInput) (int64, error) {
	if in.WeightKG <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if in.MeasuredAt.IsZero() {
		in.MeasuredAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO weight_log(weight_kg, measured_at, notes)
VALUES(?, ?, ?)
`, in.WeightKG, in.MeasuredAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("add weight entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve weight entry id: %w", err)
	}
	return id, nil
}

func ListWeightEntries(db *sql.DB, limit int) ([]model.WeightEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, weight_kg, measured_at, IFNULL(notes, '')
FROM weight_log
ORDER BY measured_at DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightEntry, 0)
	for rows.Next() {
		var e model.WeightEntry
		var measuredRaw string
		if err := rows.Scan(&e.ID, &e.WeightKG, &measuredRaw, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		measured, err := time.Parse(time.RFC3339, measuredRaw)
		if err != nil {
			return nil, fmt.Errorf("parse measured_at: %w", err)
		}
		e.MeasuredAt = measured
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	return items, nil
}

// CurrentWeightKG resolves the user's current weight: the most recent
// log entry, falling back to the profile weight when the log is empty.
// Returns 0 only when there is neither.
func CurrentWeightKG(db *sql.DB, profile *model.Profile) (float64, error) {
	var weight float64
	err := db.QueryRow(`
SELECT weight_kg FROM weight_log ORDER BY measured_at DESC LIMIT 1
`).Scan(&weight)
	if err == nil {
		return weight, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("latest weight entry: %w", err)
	}
	if profile != nil {
		return profile.WeightKG, nil
	}
	return 0, nil
}
