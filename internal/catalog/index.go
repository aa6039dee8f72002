package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samuhlo/diet-planner-cli/internal/model"
)

// Set holds the read-only reference catalogs supplied by the loader.
type Set struct {
	Recipes     []model.Recipe
	Supplements []model.Supplement
	Snacks      []model.Snack
	Ingredients []model.CatalogIngredient
}

// Collision records two catalog entries whose display names normalize to
// the same key. The first entry wins; the rest are unreachable by name
// lookup and should be surfaced to whoever owns the data.
type Collision struct {
	Kind    string
	Key     string
	Kept    string
	Dropped string
}

// Index resolves display names once at load time into canonical IDs so
// that every later lookup is normalized-name -> ID -> entity. Plans
// still reference recipes by name (the natural key in the source data),
// but duplicates are detected here instead of silently merging.
type Index struct {
	recipeIDs     map[string]uuid.UUID
	recipes       map[uuid.UUID]*model.Recipe
	ingredientIDs map[string]uuid.UUID
	ingredients   map[uuid.UUID]*model.CatalogIngredient
	supplements   map[string]*model.Supplement
	snacks        map[string]*model.Snack
	collisions    []Collision
}

// BuildIndex mints canonical IDs and builds the lookup maps. Collisions
// are logged at Warn and kept for later review; they never fail the load.
func BuildIndex(set *Set, log *zap.Logger) *Index {
	if log == nil {
		log = zap.NewNop()
	}
	ix := &Index{
		recipeIDs:     make(map[string]uuid.UUID, len(set.Recipes)),
		recipes:       make(map[uuid.UUID]*model.Recipe, len(set.Recipes)),
		ingredientIDs: make(map[string]uuid.UUID, len(set.Ingredients)),
		ingredients:   make(map[uuid.UUID]*model.CatalogIngredient, len(set.Ingredients)),
		supplements:   make(map[string]*model.Supplement, len(set.Supplements)),
		snacks:        make(map[string]*model.Snack, len(set.Snacks)),
	}

	for i := range set.Recipes {
		r := &set.Recipes[i]
		key := Normalize(r.Name)
		if prev, ok := ix.recipeIDs[key]; ok {
			ix.addCollision(log, "recipe", key, ix.recipes[prev].Name, r.Name)
			continue
		}
		id := uuid.New()
		ix.recipeIDs[key] = id
		ix.recipes[id] = r
	}

	for i := range set.Ingredients {
		ing := &set.Ingredients[i]
		key := Normalize(ing.Name)
		if prev, ok := ix.ingredientIDs[key]; ok {
			ix.addCollision(log, "ingredient", key, ix.ingredients[prev].Name, ing.Name)
			continue
		}
		id := uuid.New()
		ing.CanonicalID = id
		ix.ingredientIDs[key] = id
		ix.ingredients[id] = ing
	}

	for i := range set.Supplements {
		s := &set.Supplements[i]
		if _, ok := ix.supplements[s.ID]; ok {
			ix.addCollision(log, "supplement", s.ID, ix.supplements[s.ID].Name, s.Name)
			continue
		}
		ix.supplements[s.ID] = s
	}

	for i := range set.Snacks {
		s := &set.Snacks[i]
		if _, ok := ix.snacks[s.ID]; ok {
			ix.addCollision(log, "snack", s.ID, ix.snacks[s.ID].Name, s.Name)
			continue
		}
		ix.snacks[s.ID] = s
	}

	return ix
}

func (ix *Index) addCollision(log *zap.Logger, kind, key, kept, dropped string) {
	ix.collisions = append(ix.collisions, Collision{Kind: kind, Key: key, Kept: kept, Dropped: dropped})
	log.Warn("catalog name collision",
		zap.String("kind", kind),
		zap.String("key", key),
		zap.String("kept", kept),
		zap.String("dropped", dropped))
}

// Recipe looks up any recipe by display name.
func (ix *Index) Recipe(name string) (*model.Recipe, bool) {
	id, ok := ix.recipeIDs[Normalize(name)]
	if !ok {
		return nil, false
	}
	return ix.recipes[id], true
}

// Dessert looks up a recipe by name and requires the dessert meal type.
func (ix *Index) Dessert(name string) (*model.Recipe, bool) {
	r, ok := ix.Recipe(name)
	if !ok || r.MealType != model.MealTypeDessert {
		return nil, false
	}
	return r, true
}

// Ingredient looks up a priced store ingredient by display name.
func (ix *Index) Ingredient(name string) (*model.CatalogIngredient, bool) {
	id, ok := ix.ingredientIDs[Normalize(name)]
	if !ok {
		return nil, false
	}
	return ix.ingredients[id], true
}

func (ix *Index) Supplement(id string) (*model.Supplement, bool) {
	s, ok := ix.supplements[id]
	return s, ok
}

func (ix *Index) Snack(id string) (*model.Snack, bool) {
	s, ok := ix.snacks[id]
	return s, ok
}

func (ix *Index) Collisions() []Collision {
	return ix.collisions
}

func (c Collision) String() string {
	return fmt.Sprintf("%s %q: kept %q, dropped %q", c.Kind, c.Key, c.Kept, c.Dropped)
}
