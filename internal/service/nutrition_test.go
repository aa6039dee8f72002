package service_test

import (
	"strings"
	"testing"

	"github.com/samuhlo/diet-planner-cli/internal/model"
	"github.com/samuhlo/diet-planner-cli/internal/service"
)

func baseProfile() *model.Profile {
	return &model.Profile{
		Gender:           model.GenderMale,
		Age:              35,
		HeightCM:         180,
		WeightKG:         96,
		DailySteps:       8000,
		StrengthTraining: true,
		TrainingDays:     3,
	}
}

func TestActivityLevelFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		steps int
		want  service.ActivityLevel
	}{
		{0, service.ActivitySedentary},
		{4999, service.ActivitySedentary},
		{5000, service.ActivityLight},
		{7499, service.ActivityLight},
		{7500, service.ActivityModerate},
		{9999, service.ActivityModerate},
		{10000, service.ActivityVeryActive},
		{25000, service.ActivityVeryActive},
	}
	for _, c := range cases {
		if got := service.ActivityLevelFor(c.steps); got != c.want {
			t.Errorf("ActivityLevelFor(%d) = %q, want %q", c.steps, got, c.want)
		}
	}
}

func TestCalculateBMR(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	if got := service.CalculateBMR(p); got != 1915 {
		t.Fatalf("male BMR = %d, want 1915", got)
	}

	p.Gender = model.GenderFemale
	if got := service.CalculateBMR(p); got != 1749 {
		t.Fatalf("female BMR = %d, want 1749", got)
	}

	// Without an override the third gender uses the female constant.
	p.Gender = model.GenderOther
	if got := service.CalculateBMR(p); got != 1749 {
		t.Fatalf("other BMR = %d, want 1749", got)
	}

	p.BMROverride = intPtr(1800)
	if got := service.CalculateBMR(p); got != 1800 {
		t.Fatalf("override BMR = %d, want 1800", got)
	}

	if got := service.CalculateBMR(nil); got != 0 {
		t.Fatalf("nil profile BMR = %d, want 0", got)
	}
}

func TestCalculateTDEE(t *testing.T) {
	t.Parallel()

	// 1915 * 1.55 = 2968.25, rounded.
	if got := service.CalculateTDEE(baseProfile()); got != 2968 {
		t.Fatalf("TDEE = %d, want 2968", got)
	}

	p := baseProfile()
	p.DailySteps = 2000
	if got := service.CalculateTDEE(p); got != 2298 {
		t.Fatalf("sedentary TDEE = %d, want 2298", got)
	}
}

func TestProteinGoalG(t *testing.T) {
	t.Parallel()

	// moderate activity, 3 training days: 1.9 g/kg * 96 kg.
	if got := service.ProteinGoalG(baseProfile()); got != 182 {
		t.Fatalf("protein goal = %d, want 182", got)
	}

	p := baseProfile()
	p.TrainingDays = 6
	capped := service.ProteinGoalG(p)
	p.TrainingDays = 4
	if atCap := service.ProteinGoalG(p); capped != atCap {
		t.Fatalf("6 training days gave %d, 4 gave %d; want identical (cap)", capped, atCap)
	}

	p = baseProfile()
	p.StrengthTraining = false
	p.TrainingDays = 3
	// Training days are ignored when strength training is off.
	if got := service.ProteinGoalG(p); got != 154 {
		t.Fatalf("no-training protein goal = %d, want 154", got)
	}

	if got := service.ProteinGoalG(nil); got != service.DefaultProteinGoalG {
		t.Fatalf("nil profile protein goal = %d, want %d", got, service.DefaultProteinGoalG)
	}
}

func TestTargetCalories(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	goal := &model.Goal{StartDate: "2026-09-01", EndDate: "2026-10-01", TargetWeightKG: 90}

	// 6 kg over 30 days: deficit round(6*7700/30) = 1540, so 2968-1540.
	got := service.TargetCalories(p, goal, 96)
	if got.Calories != 1428 {
		t.Fatalf("target calories = %d, want 1428", got.Calories)
	}
	if got.DailyDeficit != 1540 {
		t.Fatalf("daily deficit = %d, want 1540", got.DailyDeficit)
	}
	// 1.4 kg/week sits in the warning band.
	if got.Status != service.StatusWarning {
		t.Fatalf("status = %q, want %q", got.Status, service.StatusWarning)
	}
}

func TestTargetCaloriesAdvisories(t *testing.T) {
	t.Parallel()

	p := baseProfile()

	// 1 kg/week exactly is still ok.
	ok := service.TargetCalories(p, &model.Goal{StartDate: "2026-09-01", EndDate: "2026-09-29", TargetWeightKG: 92}, 96)
	if ok.Status != service.StatusOK {
		t.Fatalf("1 kg/week status = %q, want ok (notes: %v)", ok.Status, ok.Notes)
	}

	// 2 kg/week is danger.
	danger := service.TargetCalories(p, &model.Goal{StartDate: "2026-09-01", EndDate: "2026-09-15", TargetWeightKG: 92}, 96)
	if danger.Status != service.StatusDanger {
		t.Fatalf("2 kg/week status = %q, want danger", danger.Status)
	}

	// An extreme goal clamps to the calorie floor.
	clamped := service.TargetCalories(p, &model.Goal{StartDate: "2026-09-01", EndDate: "2026-09-11", TargetWeightKG: 86}, 96)
	if clamped.Calories != service.MinDailyCalories {
		t.Fatalf("clamped calories = %d, want %d", clamped.Calories, service.MinDailyCalories)
	}
	if clamped.Status != service.StatusDanger {
		t.Fatalf("clamped status = %q, want danger", clamped.Status)
	}
}

func TestTargetCaloriesFallbacks(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	wantFallback := service.CalculateTDEE(p) - service.DefaultDailyDeficit

	cases := []struct {
		name   string
		goal   *model.Goal
		weight float64
	}{
		{"nil goal", nil, 96},
		{"missing dates", &model.Goal{TargetWeightKG: 90}, 96},
		{"bad start date", &model.Goal{StartDate: "01/09/2026", EndDate: "2026-10-01", TargetWeightKG: 90}, 96},
		{"empty window", &model.Goal{StartDate: "2026-09-01", EndDate: "2026-09-01", TargetWeightKG: 90}, 96},
		{"already met", &model.Goal{StartDate: "2026-09-01", EndDate: "2026-10-01", TargetWeightKG: 90}, 89},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := service.TargetCalories(p, c.goal, c.weight)
			if got.Calories != wantFallback {
				t.Fatalf("calories = %d, want fallback %d", got.Calories, wantFallback)
			}
			if got.Status != service.StatusOK {
				t.Fatalf("status = %q, want ok", got.Status)
			}
			if len(got.Notes) == 0 {
				t.Fatal("fallback produced no explanatory note")
			}
		})
	}
}

func TestComputeTargetsNoProfile(t *testing.T) {
	t.Parallel()

	got := service.ComputeTargets(nil, nil, 0)
	if got.Calories != service.DefaultCalorieGoal {
		t.Fatalf("calories = %d, want %d", got.Calories, service.DefaultCalorieGoal)
	}
	if got.ProteinG != service.DefaultProteinGoalG {
		t.Fatalf("protein = %d, want %d", got.ProteinG, service.DefaultProteinGoalG)
	}
	if got.CarbsG == 0 || got.FatG == 0 {
		t.Fatalf("macro split not applied: carbs %d fat %d", got.CarbsG, got.FatG)
	}
	if len(got.Notes) == 0 {
		t.Fatal("neutral defaults produced no note")
	}
}

func TestComputeTargetsGenderOtherNote(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.Gender = model.GenderOther
	got := service.ComputeTargets(p, nil, 0)

	found := false
	for _, n := range got.Notes {
		if strings.Contains(n, "override") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a BMR override note for gender other, got %v", got.Notes)
	}

	p.BMROverride = intPtr(1800)
	got = service.ComputeTargets(p, nil, 0)
	for _, n := range got.Notes {
		if strings.Contains(n, "override") {
			t.Fatalf("override set but advisory note still present: %v", got.Notes)
		}
	}
}

func TestComputeTargetsMacroEnergyBalance(t *testing.T) {
	t.Parallel()

	got := service.ComputeTargets(baseProfile(), nil, 0)
	energy := got.ProteinG*4 + got.CarbsG*4 + got.FatG*9
	diff := energy - got.Calories
	if diff < -10 || diff > 10 {
		t.Fatalf("macro energy %d kcal drifts from target %d by %d", energy, got.Calories, diff)
	}
}

func TestStatusAgainst(t *testing.T) {
	t.Parallel()
	cases := []struct {
		actual, goal float64
		want         service.BandStatus
	}{
		{1500, 2000, service.BandUnder},
		{1600, 2000, service.BandOn},
		{2000, 2000, service.BandOn},
		{2400, 2000, service.BandOn},
		{2401, 2000, service.BandOver},
		{500, 0, service.BandOn},
	}
	for _, c := range cases {
		if got := service.StatusAgainst(c.actual, c.goal); got != c.want {
			t.Errorf("StatusAgainst(%v, %v) = %q, want %q", c.actual, c.goal, got, c.want)
		}
	}
}

func TestCompareToTargets(t *testing.T) {
	t.Parallel()

	targets := service.Targets{Calories: 2000, ProteinG: 150, CarbsG: 200, FatG: 60}
	totals := service.NutritionTotals{Calories: 1500, ProteinG: 150, CarbsG: 250, FatG: 40}

	cmp := service.CompareToTargets(totals, targets)
	if cmp.Calories != service.BandUnder {
		t.Fatalf("calories band = %q, want under", cmp.Calories)
	}
	if cmp.Protein != service.BandOn {
		t.Fatalf("protein band = %q, want on", cmp.Protein)
	}
	if cmp.Carbs != service.BandOver {
		t.Fatalf("carbs band = %q, want over", cmp.Carbs)
	}
	if cmp.Fat != service.BandUnder {
		t.Fatalf("fat band = %q, want under", cmp.Fat)
	}
}
