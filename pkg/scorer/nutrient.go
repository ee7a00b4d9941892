package scorer

import (
	"regexp"
	"strconv"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// DefaultFallbackServingGrams is assumed when the serving size text is
// missing or carries no parseable gram quantity. This is a documented
// approximation: 30g is a typical labeled snack serving, and without it a
// per-serving reading cannot be normalized to a per-100g basis at all.
const DefaultFallbackServingGrams = 30.0

// servingGramsPattern extracts the first gram quantity from serving size
// free text ("30g", "2 cookies (28 g)", "45 grams").
var servingGramsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*g(?:rams?)?\b`)

// QualityCalculator produces the nutritional quality sub-score.
//
// Scores start from a 100-point ceiling. Four negative nutrients
// (calories, saturated fat, sugars, sodium) subtract banded penalties and
// two positive nutrients (dietary fiber, protein) add banded bonuses, all
// compared on a per-100g basis. An absent nutrient contributes nothing:
// unknown data is deliberately not penalized.
type QualityCalculator struct {
	calorieBands BandTable
	satFatBands  BandTable
	sugarBands   BandTable
	sodiumBands  BandTable
	fiberBands   BandTable
	proteinBands BandTable

	fallbackServingGrams float64
}

// QualityOption configures the QualityCalculator.
type QualityOption func(*QualityCalculator)

// WithPenaltyBands overrides the four penalty band tables.
func WithPenaltyBands(calories, saturatedFat, sugars, sodium BandTable) QualityOption {
	return func(c *QualityCalculator) {
		c.calorieBands = calories
		c.satFatBands = saturatedFat
		c.sugarBands = sugars
		c.sodiumBands = sodium
	}
}

// WithBonusBands overrides the two bonus band tables.
func WithBonusBands(fiber, protein BandTable) QualityOption {
	return func(c *QualityCalculator) {
		c.fiberBands = fiber
		c.proteinBands = protein
	}
}

// WithFallbackServingGrams overrides the serving size assumed when the
// serving text has no parseable gram quantity.
func WithFallbackServingGrams(grams float64) QualityOption {
	return func(c *QualityCalculator) {
		if grams > 0 {
			c.fallbackServingGrams = grams
		}
	}
}

// NewQualityCalculator creates a quality calculator with optional configuration.
func NewQualityCalculator(opts ...QualityOption) *QualityCalculator {
	c := &QualityCalculator{
		calorieBands:         DefaultCalorieBands(),
		satFatBands:          DefaultSaturatedFatBands(),
		sugarBands:           DefaultSugarBands(),
		sodiumBands:          DefaultSodiumBands(),
		fiberBands:           DefaultFiberBands(),
		proteinBands:         DefaultProteinBands(),
		fallbackServingGrams: DefaultFallbackServingGrams,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score computes the nutritional quality sub-score in [0, 100]. Missing
// nutrient values degrade to "no penalty / no bonus", never to an error.
func (c *QualityCalculator) Score(facts *interfaces.NutritionFacts) int {
	grams := c.servingGrams(facts.ServingSize)

	score := 100
	score -= bandPoints(facts.Calories, grams, c.calorieBands)
	score -= bandPoints(facts.SaturatedFat, grams, c.satFatBands)
	score -= bandPoints(facts.Sugars, grams, c.sugarBands)
	score -= bandPoints(facts.Sodium, grams, c.sodiumBands)
	score += bandPoints(facts.DietaryFiber, grams, c.fiberBands)
	score += bandPoints(facts.Protein, grams, c.proteinBands)

	return clampScore(score)
}

// servingGrams parses the gram quantity out of the serving size text,
// falling back to the configured assumption when absent or unparseable.
func (c *QualityCalculator) servingGrams(servingSize string) float64 {
	m := servingGramsPattern.FindStringSubmatch(servingSize)
	if m == nil {
		return c.fallbackServingGrams
	}
	grams, err := strconv.ParseFloat(m[1], 64)
	if err != nil || grams <= 0 {
		return c.fallbackServingGrams
	}
	return grams
}

// bandPoints normalizes a per-serving value to per-100g and looks up its
// band. A nil value contributes nothing.
func bandPoints(value *float64, servingGrams float64, bands BandTable) int {
	if value == nil {
		return 0
	}
	return bands.Points(*value * 100 / servingGrams)
}

// clampScore clamps to the closed interval [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
