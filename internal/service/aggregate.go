package service

import (
	"math"

	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/catalog"
	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// NutritionTotals is one day's (or week's) macro rollup. Nutrition is
// always per single serving; diners never scale it.
type NutritionTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

func (t NutritionTotals) IsZero() bool {
	return t.Calories == 0 && t.ProteinG == 0 && t.CarbsG == 0 && t.FatG == 0
}

// Aggregator walks plan snapshots against the catalog index. It holds
// no mutable state, so one instance can serve any number of reads.
type Aggregator struct {
	catalog *catalog.Index
	log     *zap.Logger
}

func NewAggregator(ix *catalog.Index, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{catalog: ix, log: log}
}

type macroAcc struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func (m *macroAcc) add(calories float64, protein, carbs, fat float64) {
	m.calories += calories
	m.protein += protein
	m.carbs += carbs
	m.fat += fat
}

func (m *macroAcc) totals() NutritionTotals {
	return NutritionTotals{
		Calories: int(math.Round(m.calories)),
		ProteinG: m.protein,
		CarbsG:   m.carbs,
		FatG:     m.fat,
	}
}

// DailyNutrition sums the day's meal recipes, enabled supplement and
// snack selections, and enabled desserts. Unmatched names contribute
// zero; they are logged, never surfaced as errors.
func (a *Aggregator) DailyNutrition(day *model.DailyPlan) NutritionTotals {
	var acc macroAcc
	if day == nil {
		return acc.totals()
	}

	for _, mt := range model.MealTypes {
		slot := day.Meals[mt]
		if slot == nil || slot.RecipeName == "" {
			continue
		}
		r, ok := a.catalog.Recipe(slot.RecipeName)
		if !ok {
			a.log.Warn("recipe not found in catalog", zap.String("recipe", slot.RecipeName))
			continue
		}
		acc.add(float64(r.Calories), r.ProteinG, r.CarbsG, r.FatG)
	}

	if p := day.Supplements; p != nil && p.Enabled {
		for _, sel := range p.Items {
			s, ok := a.catalog.Supplement(sel.ID)
			if !ok {
				a.log.Warn("supplement not found in catalog", zap.String("id", sel.ID))
				continue
			}
			acc.add(float64(s.Calories)*sel.Quantity, s.ProteinG*sel.Quantity, s.CarbsG*sel.Quantity, s.FatG*sel.Quantity)
		}
	}

	if p := day.Snacks; p != nil && p.Enabled {
		for _, sel := range p.Items {
			s, ok := a.catalog.Snack(sel.ID)
			if !ok {
				a.log.Warn("snack not found in catalog", zap.String("id", sel.ID))
				continue
			}
			acc.add(float64(s.Calories)*sel.Quantity, s.ProteinG*sel.Quantity, s.CarbsG*sel.Quantity, s.FatG*sel.Quantity)
		}
	}

	if p := day.Desserts; p != nil && p.Enabled {
		for _, sel := range p.Items {
			r, ok := a.catalog.Dessert(sel.ID)
			if !ok {
				a.log.Warn("dessert not found in catalog", zap.String("name", sel.ID))
				continue
			}
			acc.add(float64(r.Calories)*sel.Quantity, r.ProteinG*sel.Quantity, r.CarbsG*sel.Quantity, r.FatG*sel.Quantity)
		}
	}

	return acc.totals()
}

type DayNutrition struct {
	Day model.Weekday
	NutritionTotals
	HasData bool
}

// WeeklyReport is the Mon-Sun rollup. Averages divide by days that
// actually contributed, not by seven, so a half-planned week is not
// diluted toward zero.
type WeeklyReport struct {
	Days         []DayNutrition
	Totals       NutritionTotals
	DaysWithData int
	AvgCalories  float64
	AvgProteinG  float64
	AvgCarbsG    float64
	AvgFatG      float64
}

func (a *Aggregator) WeeklyNutrition(plan model.WeeklyPlan) *WeeklyReport {
	report := &WeeklyReport{Days: make([]DayNutrition, 0, len(model.WeekDays))}
	var acc macroAcc
	for _, day := range model.WeekDays {
		totals := a.DailyNutrition(plan[day])
		hasData := !totals.IsZero()
		report.Days = append(report.Days, DayNutrition{Day: day, NutritionTotals: totals, HasData: hasData})
		if hasData {
			report.DaysWithData++
			acc.add(float64(totals.Calories), totals.ProteinG, totals.CarbsG, totals.FatG)
		}
	}
	report.Totals = acc.totals()
	if report.DaysWithData > 0 {
		div := float64(report.DaysWithData)
		report.AvgCalories = float64(report.Totals.Calories) / div
		report.AvgProteinG = report.Totals.ProteinG / div
		report.AvgCarbsG = report.Totals.CarbsG / div
		report.AvgFatG = report.Totals.FatG / div
	}
	return report
}

// ShoppingItem keeps the first-seen display name and unit for its
// merge key.
type ShoppingItem struct {
	Name     string
	Quantity float64
	Unit     string
}

// ShoppingList expands the week's recipes, snacks and desserts into a
// merged ingredient list. Items merge on normalized name + unit, with
// quantities summed; list order is first-seen insertion order over the
// fixed day/section traversal, so the same plan always lists the same
// way.
func (a *Aggregator) ShoppingList(plan model.WeeklyPlan) []ShoppingItem {
	items := make([]ShoppingItem, 0)
	index := map[string]int{}

	merge := func(name string, quantity float64, unit string) {
		if quantity <= 0 {
			return
		}
		key := catalog.Normalize(name) + "_" + catalog.Normalize(unit)
		if i, ok := index[key]; ok {
			items[i].Quantity += quantity
			return
		}
		index[key] = len(items)
		items = append(items, ShoppingItem{Name: name, Quantity: quantity, Unit: unit})
	}

	for _, day := range model.WeekDays {
		dp := plan[day]
		if dp == nil {
			continue
		}

		for _, mt := range model.MealTypes {
			slot := dp.Meals[mt]
			if slot == nil || slot.RecipeName == "" {
				continue
			}
			r, ok := a.catalog.Recipe(slot.RecipeName)
			if !ok {
				a.log.Warn("recipe not found in catalog", zap.String("recipe", slot.RecipeName))
				continue
			}
			diners := slot.Diners
			if diners < 1 {
				diners = 1
			}
			for _, ing := range r.Ingredients {
				merge(ing.Name, ing.Quantity*float64(diners), ing.Unit)
			}
		}

		if p := dp.Snacks; p != nil && p.Enabled {
			for _, sel := range p.Items {
				s, ok := a.catalog.Snack(sel.ID)
				if !ok {
					a.log.Warn("snack not found in catalog", zap.String("id", sel.ID))
					continue
				}
				switch s.Kind {
				case model.SnackElaborate:
					for _, ing := range s.Ingredients {
						merge(ing.Name, ing.Quantity*sel.Quantity, ing.Unit)
					}
				default:
					grams, ok := ParsePortion(s.Portion)
					if !ok {
						a.log.Warn("simple snack portion has no gram marker, assuming default",
							zap.String("snack", s.Name),
							zap.String("portion", s.Portion),
							zap.Int("default_g", DefaultPortionGrams))
						grams = DefaultPortionGrams
					}
					merge(s.Name, grams*sel.Quantity, "g")
				}
			}
		}

		if p := dp.Desserts; p != nil && p.Enabled {
			for _, sel := range p.Items {
				r, ok := a.catalog.Dessert(sel.ID)
				if !ok {
					a.log.Warn("dessert not found in catalog", zap.String("name", sel.ID))
					continue
				}
				for _, ing := range r.Ingredients {
					merge(ing.Name, ing.Quantity*sel.Quantity, ing.Unit)
				}
			}
		}
	}

	return items
}
