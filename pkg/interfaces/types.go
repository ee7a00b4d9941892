// Package interfaces defines the shared types and contracts for all nutricart modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import "strings"

// NutritionFacts holds per-product nutrient readings as reported by an
// upstream enrichment source (barcode or name lookup).
//
// Every numeric field is optional: a nil pointer means "unknown", which is
// not the same as zero. Values are in the source's native unit — grams for
// macronutrients, milligrams for sodium/cholesterol/minerals, kcal for
// calories — always per serving, with the serving described by ServingSize
// free text (e.g. "30g", "2 cookies (28g)").
type NutritionFacts struct {
	Name        string `json:"name,omitempty"`
	ServingSize string `json:"serving_size,omitempty"`

	Calories     *float64 `json:"calories,omitempty"`
	TotalFat     *float64 `json:"total_fat,omitempty"`
	SaturatedFat *float64 `json:"saturated_fat,omitempty"`
	TransFat     *float64 `json:"trans_fat,omitempty"`
	Cholesterol  *float64 `json:"cholesterol,omitempty"`
	Sodium       *float64 `json:"sodium,omitempty"`
	TotalCarbs   *float64 `json:"total_carbohydrates,omitempty"`
	DietaryFiber *float64 `json:"dietary_fiber,omitempty"`
	Sugars       *float64 `json:"sugars,omitempty"`
	AddedSugars  *float64 `json:"added_sugars,omitempty"`
	Protein      *float64 `json:"protein,omitempty"`
	VitaminA     *float64 `json:"vitamin_a,omitempty"`
	VitaminC     *float64 `json:"vitamin_c,omitempty"`
	VitaminD     *float64 `json:"vitamin_d,omitempty"`
	Calcium      *float64 `json:"calcium,omitempty"`
	Iron         *float64 `json:"iron,omitempty"`
	Potassium    *float64 `json:"potassium,omitempty"`

	// Ingredients is the raw comma-joined ingredient text. IngredientList
	// is the tokenized form; when both are set, IngredientList wins.
	Ingredients    string   `json:"ingredients,omitempty"`
	IngredientList []string `json:"ingredient_list,omitempty"`
}

// IngredientText returns the ingredient list as a single string, joining
// the tokenized form when present. A comma-joined string and a token list
// are treated equivalently by the additive extractor.
func (f *NutritionFacts) IngredientText() string {
	if len(f.IngredientList) > 0 {
		return strings.Join(f.IngredientList, ", ")
	}
	return f.Ingredients
}

// RiskTier classifies an additive's health-impact concern level,
// ordered from safest to most concerning.
type RiskTier string

const (
	RiskTierGreen  RiskTier = "green"  // No known concern
	RiskTierYellow RiskTier = "yellow" // Limited concern
	RiskTierOrange RiskTier = "orange" // Moderate concern
	RiskTierRed    RiskTier = "red"    // High concern, best avoided
)

// ValidRiskTier reports whether s is one of the four defined tiers.
func ValidRiskTier(s RiskTier) bool {
	switch s {
	case RiskTierGreen, RiskTierYellow, RiskTierOrange, RiskTierRed:
		return true
	}
	return false
}

// AdditiveDefinition is one entry of the additive reference table.
// Definitions are immutable reference data, loaded once at startup.
type AdditiveDefinition struct {
	// Code is the EU E-number (e.g. "E330"). Empty for additives that are
	// only ever listed by name, like "high fructose corn syrup".
	Code        string   `json:"code,omitempty"`
	Name        string   `json:"name"`
	Tier        RiskTier `json:"tier"`
	Description string   `json:"description,omitempty"`
	// Deduction is the number of points this additive removes from the
	// additives sub-score. Non-negative, increasing with tier; the exact
	// values are reference data, not hardcoded logic.
	Deduction int `json:"deduction"`
}

// DetectedAdditive is the result of matching one ingredient-text token
// against the reference table. Created fresh per scoring call.
type DetectedAdditive struct {
	Code        string   `json:"code,omitempty"`
	Name        string   `json:"name"`
	Tier        RiskTier `json:"tier"`
	Description string   `json:"description,omitempty"`
	Deduction   int      `json:"deduction"`
}

// AdditiveLookup is the read-only reference table capability injected into
// the extractor and calculators. Both lookups are case-insensitive and
// return nil when nothing matches.
type AdditiveLookup interface {
	// LookupByCode resolves an exact E-number identifier.
	LookupByCode(code string) *AdditiveDefinition

	// LookupByNameContains resolves a name fragment against definition
	// names using a contains match in either direction.
	LookupByNameContains(text string) *AdditiveDefinition
}

// ScoreCategory is the four-tier consumer-facing classification of a score.
type ScoreCategory string

const (
	CategoryExcellent ScoreCategory = "excellent"
	CategoryGood      ScoreCategory = "good"
	CategoryFair      ScoreCategory = "fair"
	CategoryPoor      ScoreCategory = "poor"
)

// ScoreColor is the display color tag paired one-to-one with a category.
type ScoreColor string

const (
	ColorGreen      ScoreColor = "green"
	ColorLightGreen ScoreColor = "light-green"
	ColorOrange     ScoreColor = "orange"
	ColorRed        ScoreColor = "red"
)

// ScoreBreakdown carries the three sub-scores behind a final score.
// Each is independently clamped to [0, 100].
type ScoreBreakdown struct {
	NutritionalQuality int `json:"nutritional_quality"`
	AdditivesImpact    int `json:"additives_impact"`
	OrganicBonus       int `json:"organic_bonus"`
}

// NutritionScoring is the scoring core's output for one product.
// It is a pure derived value: stateless, identity-free, never persisted
// by the core.
type NutritionScoring struct {
	Score        int                `json:"score"` // 0-100
	Category     ScoreCategory      `json:"category"`
	Color        ScoreColor         `json:"color"`
	Breakdown    ScoreBreakdown     `json:"breakdown"`
	Additives    []DetectedAdditive `json:"additives,omitempty"`
	Improvements []string           `json:"improvements,omitempty"`
}
