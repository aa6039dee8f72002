package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

type GoalInput struct {
	StartDate      string
	EndDate        string
	TargetWeightKG float64
}

// SetGoal records a new weight goal. Only the date format and target
// weight are validated here; whether the window makes sense (start
// before end, target below current weight) is the calculator's call,
// which degrades to the default deficit instead of rejecting the goal.
func SetGoal(db *sql.DB, in GoalInput) (int64, error) {
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	if err := validateDate("start date", in.StartDate); err != nil {
		return 0, err
	}
	if err := validateDate("end date", in.EndDate); err != nil {
		return 0, err
	}
	if in.TargetWeightKG <= 0 {
		return 0, fmt.Errorf("target weight must be > 0")
	}

	res, err := db.Exec(`
INSERT INTO goals(start_date, end_date, target_weight_kg)
VALUES(?, ?, ?)
`, in.StartDate, in.EndDate, in.TargetWeightKG)
	if err != nil {
		return 0, fmt.Errorf("set goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve goal id: %w", err)
	}
	return id, nil
}

// CurrentGoal returns the most recently set goal, nil when none exists.
func CurrentGoal(db *sql.DB) (*model.Goal, error) {
	var g model.Goal
	err := db.QueryRow(`
SELECT id, start_date, end_date, target_weight_kg, created_at
FROM goals
ORDER BY id DESC
LIMIT 1
`).Scan(&g.ID, &g.StartDate, &g.EndDate, &g.TargetWeightKG, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current goal: %w", err)
	}
	return &g, nil
}

func GoalHistory(db *sql.DB) ([]model.Goal, error) {
	rows, err := db.Query(`
SELECT id, start_date, end_date, target_weight_kg, created_at
FROM goals
ORDER BY id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list goal history: %w", err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.StartDate, &g.EndDate, &g.TargetWeightKG, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}
