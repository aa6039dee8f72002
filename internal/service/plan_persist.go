package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// SavePlan stores the full weekly plan, one JSON row per day. The write
// replaces whatever was there so deleted days do not linger.
func SavePlan(db *sql.DB, plan model.WeeklyPlan) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin plan save: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM weekly_plan`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear previous plan: %w", err)
	}
	for _, day := range model.WeekDays {
		dp := plan[day]
		if dp == nil {
			continue
		}
		raw, err := json.Marshal(dp)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode plan for %s: %w", day, err)
		}
		if _, err := tx.Exec(`
INSERT INTO weekly_plan(day, plan, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
`, string(day), string(raw)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save plan for %s: %w", day, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit plan save: %w", err)
	}
	return nil
}

// LoadPlan reads the stored weekly plan. Unknown day keys are skipped.
func LoadPlan(db *sql.DB) (model.WeeklyPlan, error) {
	rows, err := db.Query(`SELECT day, plan FROM weekly_plan`)
	if err != nil {
		return nil, fmt.Errorf("load weekly plan: %w", err)
	}
	defer rows.Close()

	valid := map[model.Weekday]bool{}
	for _, d := range model.WeekDays {
		valid[d] = true
	}

	plan := model.WeeklyPlan{}
	for rows.Next() {
		var day, raw string
		if err := rows.Scan(&day, &raw); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		key := model.Weekday(day)
		if !valid[key] {
			continue
		}
		var dp model.DailyPlan
		if err := json.Unmarshal([]byte(raw), &dp); err != nil {
			return nil, fmt.Errorf("decode plan for %s: %w", day, err)
		}
		plan[key] = &dp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan rows: %w", err)
	}
	return plan, nil
}

func ClearPlan(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM weekly_plan`); err != nil {
		return fmt.Errorf("clear weekly plan: %w", err)
	}
	return nil
}
