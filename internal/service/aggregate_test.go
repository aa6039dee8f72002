package service_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/samuhlo/diet-planner-cli/internal/model"
	"github.com/samuhlo/diet-planner-cli/internal/service"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailyNutrition(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	day := &model.DailyPlan{
		Meals: map[model.MealType]*model.MealSlot{
			// Diners scale shopping only; nutrition stays per serving.
			model.MealLunch: {RecipeName: "Lentejas con verduras", Diners: 2},
		},
		Supplements: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{
			{ID: "whey", Quantity: 1},
			{ID: "creatina", Quantity: 1},
		}},
		Snacks: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{
			{ID: "yogur", Quantity: 2},
		}},
		Desserts: &model.ItemPlan{Enabled: false, Items: []model.ItemSelection{
			{ID: "Flan de huevo", Quantity: 3},
		}},
	}

	got := agg.DailyNutrition(day)
	if got.Calories != 880 {
		t.Fatalf("calories = %d, want 880", got.Calories)
	}
	if !almostEqual(got.ProteinG, 72) {
		t.Fatalf("protein = %v, want 72", got.ProteinG)
	}
	if !almostEqual(got.CarbsG, 83) {
		t.Fatalf("carbs = %v, want 83", got.CarbsG)
	}
	if !almostEqual(got.FatG, 25.5) {
		t.Fatalf("fat = %v, want 25.5", got.FatG)
	}
}

func TestDailyNutritionDisabledPlansContributeNothing(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	day := &model.DailyPlan{
		Supplements: &model.ItemPlan{Enabled: false, Items: []model.ItemSelection{{ID: "whey", Quantity: 3}}},
		Snacks:      &model.ItemPlan{Enabled: false, Items: []model.ItemSelection{{ID: "yogur", Quantity: 3}}},
		Desserts:    &model.ItemPlan{Enabled: false, Items: []model.ItemSelection{{ID: "Flan de huevo", Quantity: 3}}},
	}
	if got := agg.DailyNutrition(day); !got.IsZero() {
		t.Fatalf("disabled sub-plans contributed %+v", got)
	}
}

func TestDailyNutritionUnknownNamesAreZeroNotErrors(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	day := &model.DailyPlan{
		Meals: map[model.MealType]*model.MealSlot{
			model.MealLunch: {RecipeName: "Receta inexistente"},
		},
		Supplements: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{{ID: "no-such", Quantity: 1}}},
		// A non-dessert recipe referenced as a dessert does not count.
		Desserts: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{{ID: "Tortilla francesa", Quantity: 1}}},
	}
	if got := agg.DailyNutrition(day); !got.IsZero() {
		t.Fatalf("unknown references contributed %+v", got)
	}

	if got := agg.DailyNutrition(nil); !got.IsZero() {
		t.Fatalf("nil day contributed %+v", got)
	}
}

func TestWeeklyNutritionAveragesOverDaysWithData(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	plan := model.WeeklyPlan{
		model.Monday:   mealDay("Lentejas con verduras", 1), // 520 kcal
		model.Thursday: {Meals: map[model.MealType]*model.MealSlot{model.MealDinner: {RecipeName: "Tortilla francesa"}}}, // 220 kcal
		model.Saturday: {}, // planned but empty: no data
	}

	report := agg.WeeklyNutrition(plan)
	if len(report.Days) != 7 {
		t.Fatalf("report covers %d days, want 7", len(report.Days))
	}
	if report.Days[0].Day != model.Monday || report.Days[6].Day != model.Sunday {
		t.Fatalf("day order broken: first %q last %q", report.Days[0].Day, report.Days[6].Day)
	}
	if report.DaysWithData != 2 {
		t.Fatalf("days with data = %d, want 2", report.DaysWithData)
	}
	if report.Totals.Calories != 740 {
		t.Fatalf("weekly calories = %d, want 740", report.Totals.Calories)
	}
	if !almostEqual(report.AvgCalories, 370) {
		t.Fatalf("avg calories = %v, want 370 (divide by 2, not 7)", report.AvgCalories)
	}
}

func TestWeeklyNutritionEmptyPlan(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	report := agg.WeeklyNutrition(model.WeeklyPlan{})
	if report.DaysWithData != 0 || report.AvgCalories != 0 {
		t.Fatalf("empty plan produced %+v", report)
	}
}

func TestShoppingList(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	plan := model.WeeklyPlan{
		model.Monday: {
			Meals: map[model.MealType]*model.MealSlot{
				model.MealLunch:  {RecipeName: "Lentejas con verduras", Diners: 2},
				model.MealDinner: {RecipeName: "Tortilla francesa"}, // zero diners counts as one
			},
		},
		model.Tuesday: {
			Meals: map[model.MealType]*model.MealSlot{
				model.MealLunch: {RecipeName: "Lentejas con verduras", Diners: 1},
			},
			Snacks: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{
				{ID: "yogur", Quantity: 2},  // simple, "1 unidad (125g)"
				{ID: "hummus", Quantity: 1}, // elaborated, expands ingredients
			}},
			Desserts: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{
				{ID: "Flan de huevo", Quantity: 2},
			}},
		},
	}

	got := agg.ShoppingList(plan)
	want := []service.ShoppingItem{
		{Name: "Lentejas", Quantity: 240, Unit: "g"},     // 80*2 + 80*1
		{Name: "Zanahoria", Quantity: 3, Unit: "unidad"}, // 1*2 + 1*1
		{Name: "Huevo", Quantity: 4, Unit: "unidad"},     // tortilla 2 + flan 1*2
		{Name: "Yogur griego", Quantity: 250, Unit: "g"}, // 125g portion * 2
		{Name: "Garbanzos", Quantity: 60, Unit: "g"},
		{Name: "Tahini", Quantity: 1, Unit: "cucharada"},
		{Name: "Leche", Quantity: 200, Unit: "ml"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("shopping list mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestShoppingListSimpleSnackDefaultPortion(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	plan := model.WeeklyPlan{
		model.Wednesday: {
			Snacks: &model.ItemPlan{Enabled: true, Items: []model.ItemSelection{
				{ID: "nueces", Quantity: 2}, // portion "un puñado" has no gram marker
			}},
		},
	}

	got := agg.ShoppingList(plan)
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Name != "Nueces" || got[0].Unit != "g" || !almostEqual(got[0].Quantity, 2*service.DefaultPortionGrams) {
		t.Fatalf("default portion item = %+v", got[0])
	}
}

func TestShoppingListScalesLinearlyWithDiners(t *testing.T) {
	t.Parallel()

	agg := service.NewAggregator(testCatalog(t), nil)
	one := agg.ShoppingList(model.WeeklyPlan{model.Monday: mealDay("Lentejas con verduras", 1)})
	four := agg.ShoppingList(model.WeeklyPlan{model.Monday: mealDay("Lentejas con verduras", 4)})

	if len(one) != len(four) {
		t.Fatalf("item counts differ: %d vs %d", len(one), len(four))
	}
	for i := range one {
		if !almostEqual(four[i].Quantity, one[i].Quantity*4) {
			t.Fatalf("%s: %v is not 4x %v", one[i].Name, four[i].Quantity, one[i].Quantity)
		}
	}
}
