package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// ToBaseQuantity resolves a quantity expressed in an arbitrary unit
// label into the ingredient's base unit ("g" or "ml") using its
// equivalency table. Unknown labels pass through unchanged: treating
// them as already-base keeps the computation going on sparse data, and
// the diagnostic marks the table entry to fill in later.
func ToBaseQuantity(entry *model.CatalogIngredient, quantity float64, unit string, log *zap.Logger) float64 {
	if entry == nil {
		return quantity
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if factor, ok := entry.Equivalencies[u]; ok {
		return quantity * factor
	}
	if log != nil {
		log.Warn("unknown unit for ingredient, assuming base unit",
			zap.String("ingredient", entry.Name),
			zap.String("unit", unit),
			zap.String("base_unit", entry.BaseUnit))
	}
	return quantity
}

// ToPrice prices a base-unit quantity of an ingredient.
func ToPrice(entry *model.CatalogIngredient, baseQuantity float64) decimal.Decimal {
	if entry == nil || baseQuantity <= 0 {
		return decimal.Zero
	}
	return entry.PricePerBaseUnit.Mul(decimal.NewFromFloat(baseQuantity))
}
