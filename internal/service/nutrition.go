package service

import (
	"fmt"
	"math"
	"time"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

const (
	// KcalPerKgFat is the energy content assumed per kg of body fat.
	KcalPerKgFat = 7700
	// DefaultDailyDeficit applies when no usable goal is configured.
	DefaultDailyDeficit = 500
	// MinDailyCalories is the floor below which targets are clamped.
	MinDailyCalories = 1200

	// Neutral defaults when no profile exists. The engine never blocks
	// on missing data; callers always get something to render.
	DefaultCalorieGoal  = 2000
	DefaultProteinGoalG = 150

	warnWeeklyLossKG   = 1.0
	dangerWeeklyLossKG = 1.5

	dateLayout = "2006-01-02"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevelFor maps a daily step count onto a fixed step function.
func ActivityLevelFor(steps int) ActivityLevel {
	switch {
	case steps >= 10000:
		return ActivityVeryActive
	case steps >= 7500:
		return ActivityModerate
	case steps >= 5000:
		return ActivityLight
	default:
		return ActivitySedentary
	}
}

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityVeryActive: 1.725,
}

func ActivityFactor(steps int) float64 {
	return activityFactors[ActivityLevelFor(steps)]
}

// proteinMatrix maps [activity level][strength training days, capped at
// 4] to grams of protein per kg of body weight. No strength training
// uses the zero-days column.
var proteinMatrix = map[ActivityLevel][5]float64{
	ActivitySedentary:  {1.2, 1.3, 1.4, 1.5, 1.6},
	ActivityLight:      {1.4, 1.5, 1.6, 1.7, 1.8},
	ActivityModerate:   {1.6, 1.7, 1.8, 1.9, 2.0},
	ActivityVeryActive: {1.8, 1.9, 2.0, 2.1, 2.2},
}

// CalculateBMR estimates the basal metabolic rate with Mifflin-St Jeor.
// A profile BMR override wins outright. Without an override, the third
// gender uses the female constant; ComputeTargets surfaces a note so
// that choice is visible rather than silent.
func CalculateBMR(p *model.Profile) int {
	if p == nil {
		return 0
	}
	if p.BMROverride != nil {
		return *p.BMROverride
	}
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

func CalculateTDEE(p *model.Profile) int {
	if p == nil {
		return 0
	}
	return int(math.Round(float64(CalculateBMR(p)) * ActivityFactor(p.DailySteps)))
}

// ProteinGoalG returns the daily protein goal in grams.
func ProteinGoalG(p *model.Profile) int {
	if p == nil {
		return DefaultProteinGoalG
	}
	days := 0
	if p.StrengthTraining {
		days = p.TrainingDays
		if days > 4 {
			days = 4
		}
		if days < 0 {
			days = 0
		}
	}
	mult := proteinMatrix[ActivityLevelFor(p.DailySteps)][days]
	return int(math.Round(p.WeightKG * mult))
}

type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// CalorieTarget is the daily calorie target plus advisory output.
// Advisories are informational; an aggressive goal still produces a
// number, never an error.
type CalorieTarget struct {
	Calories     int
	DailyDeficit int
	Status       Status
	Notes        []string
}

// TargetCalories derives the daily calorie target from the goal window.
// Unusable goals (missing fields, empty window, already met) fall back
// to TDEE minus the default deficit with an explanatory note.
func TargetCalories(p *model.Profile, g *model.Goal, currentWeightKG float64) CalorieTarget {
	tdee := CalculateTDEE(p)
	fallback := func(note string) CalorieTarget {
		return CalorieTarget{
			Calories:     tdee - DefaultDailyDeficit,
			DailyDeficit: DefaultDailyDeficit,
			Status:       StatusOK,
			Notes:        []string{note},
		}
	}

	if g == nil || g.StartDate == "" || g.EndDate == "" || g.TargetWeightKG <= 0 {
		return fallback("no usable goal configured, applying the default deficit")
	}
	start, err := time.Parse(dateLayout, g.StartDate)
	if err != nil {
		return fallback(fmt.Sprintf("invalid goal start date %q, applying the default deficit", g.StartDate))
	}
	end, err := time.Parse(dateLayout, g.EndDate)
	if err != nil {
		return fallback(fmt.Sprintf("invalid goal end date %q, applying the default deficit", g.EndDate))
	}
	if !start.Before(end) {
		return fallback("goal start date is not before end date, applying the default deficit")
	}
	if currentWeightKG <= g.TargetWeightKG {
		return fallback("goal already met, applying the default deficit")
	}

	weightDelta := currentWeightKG - g.TargetWeightKG
	durationDays := end.Sub(start).Hours() / 24
	dailyDeficit := int(math.Round(weightDelta * KcalPerKgFat / durationDays))

	out := CalorieTarget{
		Calories:     tdee - dailyDeficit,
		DailyDeficit: dailyDeficit,
		Status:       StatusOK,
	}

	weeklyLoss := weightDelta / (durationDays / 7)
	switch {
	case weeklyLoss > dangerWeeklyLossKG:
		out.Status = StatusDanger
		out.Notes = append(out.Notes, fmt.Sprintf("planned loss rate %.2f kg/week exceeds %.1f kg/week", weeklyLoss, dangerWeeklyLossKG))
	case weeklyLoss > warnWeeklyLossKG:
		out.Status = StatusWarning
		out.Notes = append(out.Notes, fmt.Sprintf("planned loss rate %.2f kg/week exceeds %.1f kg/week", weeklyLoss, warnWeeklyLossKG))
	}
	if out.Calories < MinDailyCalories {
		out.Calories = MinDailyCalories
		if out.Status == StatusOK {
			out.Status = StatusWarning
		}
		out.Notes = append(out.Notes, fmt.Sprintf("target clamped to the %d kcal floor", MinDailyCalories))
	}
	return out
}

// Targets bundles everything the plan views need: the metabolic
// estimates, the daily calorie target, and the derived macro goals.
type Targets struct {
	BMR      int
	TDEE     int
	Calories int
	ProteinG int
	CarbsG   int
	FatG     int
	Status   Status
	Notes    []string
}

// ComputeTargets is tolerant of absent inputs: without a profile it
// returns the documented neutral defaults instead of failing.
func ComputeTargets(p *model.Profile, g *model.Goal, currentWeightKG float64) Targets {
	if p == nil {
		carbs, fat := macroSplit(DefaultCalorieGoal, DefaultProteinGoalG)
		return Targets{
			Calories: DefaultCalorieGoal,
			ProteinG: DefaultProteinGoalG,
			CarbsG:   carbs,
			FatG:     fat,
			Status:   StatusOK,
			Notes:    []string{"no profile configured, using neutral defaults"},
		}
	}
	if currentWeightKG <= 0 {
		currentWeightKG = p.WeightKG
	}

	target := TargetCalories(p, g, currentWeightKG)
	protein := ProteinGoalG(p)
	carbs, fat := macroSplit(target.Calories, protein)

	out := Targets{
		BMR:      CalculateBMR(p),
		TDEE:     CalculateTDEE(p),
		Calories: target.Calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		Status:   target.Status,
		Notes:    target.Notes,
	}
	if p.Gender == model.GenderOther && p.BMROverride == nil {
		out.Notes = append(out.Notes, "no BMR formula is defined for gender 'other'; using the female constant (set a BMR override to change this)")
	}
	return out
}

// macroSplit allocates fat as 25% of calories (9 kcal/g) and fills the
// rest with carbs (4 kcal/g) after protein (4 kcal/g).
func macroSplit(calories, proteinG int) (carbsG, fatG int) {
	fat := float64(calories) * 0.25 / 9
	carbs := (float64(calories) - float64(proteinG)*4 - fat*9) / 4
	if carbs < 0 {
		carbs = 0
	}
	return int(math.Round(carbs)), int(math.Round(fat))
}

const (
	bandLow  = 0.8
	bandHigh = 1.2
)

type BandStatus string

const (
	BandUnder BandStatus = "under"
	BandOn    BandStatus = "on"
	BandOver  BandStatus = "over"
)

// StatusAgainst classifies an actual intake against a goal using the
// fixed 80%/120% bands. A zero goal always reads as on-target.
func StatusAgainst(actual, goal float64) BandStatus {
	if goal <= 0 {
		return BandOn
	}
	ratio := actual / goal
	switch {
	case ratio < bandLow:
		return BandUnder
	case ratio > bandHigh:
		return BandOver
	default:
		return BandOn
	}
}

// TargetComparison holds the per-macro band status for a day or week.
type TargetComparison struct {
	Calories BandStatus
	Protein  BandStatus
	Carbs    BandStatus
	Fat      BandStatus
}

func CompareToTargets(t NutritionTotals, targets Targets) TargetComparison {
	return TargetComparison{
		Calories: StatusAgainst(float64(t.Calories), float64(targets.Calories)),
		Protein:  StatusAgainst(t.ProteinG, float64(targets.ProteinG)),
		Carbs:    StatusAgainst(t.CarbsG, float64(targets.CarbsG)),
		Fat:      StatusAgainst(t.FatG, float64(targets.FatG)),
	}
}
