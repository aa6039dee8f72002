package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

const (
	recipesFile     = "recipes.json"
	supplementsFile = "supplements.json"
	snacksFile      = "snacks.json"
	ingredientsFile = "ingredients.json"
)

// LoadDir reads the catalog JSON files from dir. Missing files yield
// empty catalogs rather than errors: the engine degrades to zero
// contributions, it does not block. Malformed files are real errors.
func LoadDir(dir string, log *zap.Logger) (*Set, error) {
	if log == nil {
		log = zap.NewNop()
	}
	set := &Set{}
	if err := loadJSONFile(dir, recipesFile, &set.Recipes, log); err != nil {
		return nil, err
	}
	if err := loadJSONFile(dir, supplementsFile, &set.Supplements, log); err != nil {
		return nil, err
	}
	if err := loadJSONFile(dir, snacksFile, &set.Snacks, log); err != nil {
		return nil, err
	}
	if err := loadJSONFile(dir, ingredientsFile, &set.Ingredients, log); err != nil {
		return nil, err
	}
	for i := range set.Ingredients {
		sanitizeIngredient(&set.Ingredients[i], log)
	}
	return set, nil
}

func loadJSONFile(dir, name string, out any, log *zap.Logger) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("catalog file missing, using empty catalog", zap.String("file", name))
			return nil
		}
		return fmt.Errorf("read catalog file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode catalog file %s: %w", name, err)
	}
	return nil
}

// sanitizeIngredient enforces the catalog invariants: the equivalency
// table always contains baseUnit -> 1, and the derived price per base
// unit is total price / total base quantity when both are positive,
// zero otherwise.
func sanitizeIngredient(ing *model.CatalogIngredient, log *zap.Logger) {
	if ing.BaseUnit == "" {
		ing.BaseUnit = "g"
	}
	if ing.Equivalencies == nil {
		ing.Equivalencies = map[string]float64{}
	}
	if v, ok := ing.Equivalencies[ing.BaseUnit]; !ok || v != 1 {
		if ok && v != 1 {
			log.Warn("equivalency table maps base unit away from 1, fixing",
				zap.String("ingredient", ing.Name),
				zap.String("base_unit", ing.BaseUnit),
				zap.Float64("value", v))
		}
		ing.Equivalencies[ing.BaseUnit] = 1
	}

	if ing.Purchase.TotalPrice.IsPositive() && ing.Purchase.TotalQuantityBase > 0 {
		ing.PricePerBaseUnit = ing.Purchase.TotalPrice.Div(decimal.NewFromFloat(ing.Purchase.TotalQuantityBase))
	} else {
		ing.PricePerBaseUnit = decimal.Zero
	}
}
