package service_test

import (
	"testing"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

func TestSetAndCurrentGoal(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if g, err := service.CurrentGoal(sqldb); err != nil || g != nil {
		t.Fatalf("fresh db: goal %+v, err %v; want nil, nil", g, err)
	}

	first, err := service.SetGoal(sqldb, service.GoalInput{StartDate: "2026-09-01", EndDate: "2026-10-01", TargetWeightKG: 90})
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	second, err := service.SetGoal(sqldb, service.GoalInput{StartDate: "2026-10-01", EndDate: "2026-12-01", TargetWeightKG: 86})
	if err != nil {
		t.Fatalf("set second goal: %v", err)
	}
	if second <= first {
		t.Fatalf("goal ids not increasing: %d then %d", first, second)
	}

	g, err := service.CurrentGoal(sqldb)
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if g.ID != second || g.TargetWeightKG != 86 {
		t.Fatalf("current goal = %+v, want the latest", g)
	}

	history, err := service.GoalHistory(sqldb)
	if err != nil {
		t.Fatalf("goal history: %v", err)
	}
	if len(history) != 2 || history[0].ID != second || history[1].ID != first {
		t.Fatalf("history = %+v, want newest first", history)
	}
}

func TestSetGoalValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	cases := []service.GoalInput{
		{StartDate: "01/09/2026", EndDate: "2026-10-01", TargetWeightKG: 90},
		{StartDate: "2026-09-01", EndDate: "soon", TargetWeightKG: 90},
		{StartDate: "2026-09-01", EndDate: "2026-10-01", TargetWeightKG: 0},
	}
	for _, in := range cases {
		if _, err := service.SetGoal(sqldb, in); err == nil {
			t.Errorf("SetGoal(%+v): expected an error", in)
		}
	}

	// An inverted window is stored as-is; the calculator degrades to the
	// default deficit instead of rejecting it here.
	if _, err := service.SetGoal(sqldb, service.GoalInput{StartDate: "2026-10-01", EndDate: "2026-09-01", TargetWeightKG: 90}); err != nil {
		t.Fatalf("inverted window rejected: %v", err)
	}
}
