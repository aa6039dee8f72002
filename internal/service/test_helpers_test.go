package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/samuhlo/diet-planner-cli/internal/catalog"
	"github.com/samuhlo/diet-planner-cli/internal/db"
	"github.com/samuhlo/diet-planner-cli/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dietplan.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return sqldb
}

func pricedIngredient(name string, totalPrice string, totalQuantityBase float64, equivalencies map[string]float64) model.CatalogIngredient {
	price, _ := decimal.NewFromString(totalPrice)
	perBase := decimal.Zero
	if price.IsPositive() && totalQuantityBase > 0 {
		perBase = price.Div(decimal.NewFromFloat(totalQuantityBase))
	}
	if equivalencies == nil {
		equivalencies = map[string]float64{}
	}
	equivalencies["g"] = 1
	return model.CatalogIngredient{
		ID:               name,
		Name:             name,
		BaseUnit:         "g",
		PricePerBaseUnit: perBase,
		Purchase:         model.PurchaseInfo{TotalPrice: price, TotalQuantityBase: totalQuantityBase},
		Equivalencies:    equivalencies,
	}
}

// testCatalog is the shared fixture for aggregation and price tests.
func testCatalog(t *testing.T) *catalog.Index {
	t.Helper()
	set := &catalog.Set{
		Recipes: []model.Recipe{
			{
				Name: "Lentejas con verduras", MealType: "lunch",
				Calories: 520, ProteinG: 28, CarbsG: 70, FatG: 12,
				Ingredients: []model.Ingredient{
					{Name: "Lentejas", Quantity: 80, Unit: "g"},
					{Name: "Zanahoria", Quantity: 1, Unit: "unidad"},
				},
			},
			{
				Name: "Tortilla francesa", MealType: "dinner",
				Calories: 220, ProteinG: 14, CarbsG: 2, FatG: 16,
				Ingredients: []model.Ingredient{
					{Name: "Huevo", Quantity: 2, Unit: "unidad"},
				},
			},
			{
				Name: "Flan de huevo", MealType: model.MealTypeDessert,
				Calories: 180, ProteinG: 6, CarbsG: 24, FatG: 6,
				Ingredients: []model.Ingredient{
					{Name: "Huevo", Quantity: 1, Unit: "unidad"},
					{Name: "Leche", Quantity: 100, Unit: "ml"},
				},
			},
		},
		Supplements: []model.Supplement{
			{ID: "creatina", Name: "Creatina", Calories: 0, ProteinG: 0, CarbsG: 0, FatG: 0},
			{ID: "whey", Name: "Proteína whey", Calories: 120, ProteinG: 24, CarbsG: 3, FatG: 1.5},
		},
		Snacks: []model.Snack{
			{
				ID: "yogur", Name: "Yogur griego", Kind: model.SnackSimple,
				Portion: "1 unidad (125g)", Calories: 120, ProteinG: 10, CarbsG: 5, FatG: 6,
			},
			{
				ID: "nueces", Name: "Nueces", Kind: model.SnackSimple,
				Portion: "un puñado", Calories: 180, ProteinG: 4, CarbsG: 4, FatG: 17,
			},
			{
				ID: "hummus", Name: "Hummus casero", Kind: model.SnackElaborate,
				Calories: 150, ProteinG: 6, CarbsG: 14, FatG: 8,
				Ingredients: []model.Ingredient{
					{Name: "Garbanzos", Quantity: 60, Unit: "g"},
					{Name: "Tahini", Quantity: 1, Unit: "cucharada"},
				},
			},
		},
		Ingredients: []model.CatalogIngredient{
			pricedIngredient("Lentejas", "2.10", 1000, nil),
			pricedIngredient("Huevo", "2.40", 720, map[string]float64{"unidad": 60}),
			pricedIngredient("Garbanzos", "1.50", 500, nil),
		},
	}
	return catalog.BuildIndex(set, nil)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func mealDay(recipe string, diners int) *model.DailyPlan {
	return &model.DailyPlan{
		Meals: map[model.MealType]*model.MealSlot{
			model.MealLunch: {RecipeName: recipe, Diners: diners},
		},
	}
}
