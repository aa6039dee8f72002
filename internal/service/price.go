package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// PriceLine is one ingredient's contribution to a price. Priced is
// false when the ingredient has no catalog entry; such lines carry a
// zero price and stay in the output so gaps are visible.
type PriceLine struct {
	Name         string
	Quantity     float64
	Unit         string
	BaseQuantity float64
	Price        decimal.Decimal
	Priced       bool
}

type RecipePriceResult struct {
	Total decimal.Decimal
	Lines []PriceLine
}

// RecipePrice prices a recipe's ingredient list at one serving.
func (a *Aggregator) RecipePrice(r *model.Recipe) RecipePriceResult {
	if r == nil {
		return RecipePriceResult{Total: decimal.Zero}
	}
	return a.priceIngredients(r.Ingredients)
}

func (a *Aggregator) priceIngredients(ings []model.Ingredient) RecipePriceResult {
	out := RecipePriceResult{Total: decimal.Zero, Lines: make([]PriceLine, 0, len(ings))}
	for _, ing := range ings {
		line := PriceLine{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit, Price: decimal.Zero}
		entry, ok := a.catalog.Ingredient(ing.Name)
		if ok {
			line.BaseQuantity = ToBaseQuantity(entry, ing.Quantity, ing.Unit, a.log)
			line.Price = ToPrice(entry, line.BaseQuantity)
			line.Priced = true
			out.Total = out.Total.Add(line.Price)
		} else {
			a.log.Warn("ingredient not priced, missing from catalog", zap.String("ingredient", ing.Name))
		}
		out.Lines = append(out.Lines, line)
	}
	return out
}

// PlanPrice estimates the week's grocery cost: meals scale by diners,
// desserts and elaborated snacks by their plan quantity. Simple snacks
// carry no ingredient data and are excluded.
func (a *Aggregator) PlanPrice(plan model.WeeklyPlan) decimal.Decimal {
	total := decimal.Zero

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
				continue
			}
			diners := slot.Diners
			if diners < 1 {
				diners = 1
			}
			total = total.Add(a.RecipePrice(r).Total.Mul(decimal.NewFromInt(int64(diners))))
		}

		if p := dp.Snacks; p != nil && p.Enabled {
			for _, sel := range p.Items {
				s, ok := a.catalog.Snack(sel.ID)
				if !ok || s.Kind != model.SnackElaborate {
					continue
				}
				price := a.priceIngredients(s.Ingredients).Total
				total = total.Add(price.Mul(decimal.NewFromFloat(sel.Quantity)))
			}
		}

		if p := dp.Desserts; p != nil && p.Enabled {
			for _, sel := range p.Items {
				r, ok := a.catalog.Dessert(sel.ID)
				if !ok {
					continue
				}
				total = total.Add(a.RecipePrice(r).Total.Mul(decimal.NewFromFloat(sel.Quantity)))
			}
		}
	}

	return total
}
