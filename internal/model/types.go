package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile is the single local user profile. BMROverride, when set,
// replaces the computed basal rate entirely.
type Profile struct {
	ID               int64
	Gender           Gender
	Age              int
	HeightCM         float64
	WeightKG         float64
	DailySteps       int
	StrengthTraining bool
	TrainingDays     int
	BMROverride      *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Goal is a weight target over a date window. Dates are YYYY-MM-DD.
type Goal struct {
	ID             int64
	StartDate      string
	EndDate        string
	TargetWeightKG float64
	CreatedAt      time.Time
}

type WeightEntry struct {
	ID         int64
	WeightKG   float64
	MeasuredAt time.Time
	Notes      string
}

// Ingredient is a recipe line item. Unit is a free-text label from the
// source data ("g", "ml", "unidad", "cucharada", ...).
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe macros are always per single serving regardless of diners.
type Recipe struct {
	Name        string       `json:"name"`
	MealType    string       `json:"meal_type"`
	Tags        []string     `json:"tags,omitempty"`
	Calories    int          `json:"calories"`
	ProteinG    float64      `json:"protein_g"`
	CarbsG      float64      `json:"carbs_g"`
	FatG        float64      `json:"fat_g"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

const MealTypeDessert = "dessert"

type Supplement struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type SnackKind string

const (
	SnackSimple    SnackKind = "simple"
	SnackElaborate SnackKind = "elaborado"
)

// Snack macros are per serving. Simple snacks describe their serving as
// a human-readable portion string instead of an ingredient list.
type Snack struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Kind        SnackKind    `json:"kind"`
	Portion     string       `json:"portion,omitempty"`
	Calories    int          `json:"calories"`
	ProteinG    float64      `json:"protein_g"`
	CarbsG      float64      `json:"carbs_g"`
	FatG        float64      `json:"fat_g"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// PurchaseInfo describes how an ingredient is bought at the store.
type PurchaseInfo struct {
	TotalPrice        decimal.Decimal `json:"total_price"`
	Format            string          `json:"format"`
	TotalQuantityBase float64         `json:"total_quantity_base"`
}

// CatalogIngredient is a priced store ingredient. Equivalencies maps a
// unit label to its size in base units; the base unit itself always maps
// to 1. PricePerBaseUnit is TotalPrice / TotalQuantityBase when both are
// positive, zero otherwise. CanonicalID is minted by the catalog index
// at load time and never comes from the data files.
type CatalogIngredient struct {
	CanonicalID      uuid.UUID          `json:"-"`
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	BaseUnit         string             `json:"base_unit"`
	PricePerBaseUnit decimal.Decimal    `json:"precio_por_unidad_base"`
	Purchase         PurchaseInfo       `json:"purchase"`
	Equivalencies    map[string]float64 `json:"equivalencias"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

var MealTypes = [3]MealType{MealBreakfast, MealLunch, MealDinner}

// MealSlot assigns a recipe to a meal. Diners scales shopping-list
// quantities only, never nutrition.
type MealSlot struct {
	RecipeName string `json:"recipe_name,omitempty"`
	Diners     int    `json:"diners,omitempty"`
}

// ItemSelection references a catalog item (supplement id, snack id, or
// dessert recipe name) with a serving quantity.
type ItemSelection struct {
	ID       string  `json:"id"`
	Quantity float64 `json:"quantity"`
}

// ItemPlan is a cohesive enable-flag + selection list. A disabled plan
// contributes nothing even when Items still carries stale selections.
type ItemPlan struct {
	Enabled bool            `json:"enabled"`
	Items   []ItemSelection `json:"items,omitempty"`
}

type DailyPlan struct {
	Meals       map[MealType]*MealSlot `json:"meals,omitempty"`
	Supplements *ItemPlan              `json:"supplements,omitempty"`
	Snacks      *ItemPlan              `json:"snacks,omitempty"`
	Desserts    *ItemPlan              `json:"desserts,omitempty"`
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekDays is the fixed traversal order for every weekly computation.
var WeekDays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeeklyPlan maps day keys to plans. A missing day is an empty day.
type WeeklyPlan map[Weekday]*DailyPlan
