package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuhlo/diet-planner-cli/internal/catalog"
)

func writeCatalogFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDirMissingFilesYieldEmptyCatalogs(t *testing.T) {
	t.Parallel()
	set, err := catalog.LoadDir(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("load empty dir: %v", err)
	}
	if len(set.Recipes) != 0 || len(set.Supplements) != 0 || len(set.Snacks) != 0 || len(set.Ingredients) != 0 {
		t.Fatalf("expected empty catalogs, got %+v", set)
	}
}

func TestLoadDirSanitizesIngredients(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeCatalogFile(t, dir, "ingredients.json", `[
  {
    "id": "arroz",
    "name": "Arroz",
    "category": "despensa",
    "base_unit": "g",
    "purchase": {"total_price": "2.40", "format": "paquete 1kg", "total_quantity_base": 1000},
    "equivalencias": {"taza": 200}
  },
  {
    "id": "azafran",
    "name": "Azafrán",
    "category": "despensa",
    "base_unit": "g",
    "purchase": {"total_price": "0", "format": "", "total_quantity_base": 0}
  }
]`)

	set, err := catalog.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(set.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(set.Ingredients))
	}

	arroz := set.Ingredients[0]
	if arroz.Equivalencies["g"] != 1 {
		t.Fatalf("expected base unit equivalency of 1, got %v", arroz.Equivalencies["g"])
	}
	if arroz.PricePerBaseUnit.String() != "0.0024" {
		t.Fatalf("expected derived price 0.0024 per g, got %s", arroz.PricePerBaseUnit)
	}

	azafran := set.Ingredients[1]
	if !azafran.PricePerBaseUnit.IsZero() {
		t.Fatalf("expected zero price when purchase info is empty, got %s", azafran.PricePerBaseUnit)
	}
	if azafran.Equivalencies["g"] != 1 {
		t.Fatalf("expected base unit entry to be added")
	}
}

func TestLoadDirRejectsMalformedJSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeCatalogFile(t, dir, "recipes.json", `{not json`)
	if _, err := catalog.LoadDir(dir, nil); err == nil {
		t.Fatalf("expected malformed catalog file to error")
	}
}
