package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// Default weights for combining the three sub-scores.
const (
	DefaultQualityWeight   = 0.6
	DefaultAdditivesWeight = 0.3
	DefaultOrganicWeight   = 0.1
)

// ScoringError is the composer's only failure mode: a sub-calculator blew
// up on genuinely malformed input. Missing data never produces one; the
// sub-calculators degrade gracefully instead.
type ScoringError struct {
	Product string
	Cause   error
}

func (e *ScoringError) Error() string {
	name := e.Product
	if name == "" {
		name = "product"
	}
	return fmt.Sprintf("scorer: scoring %s: %v", name, e.Cause)
}

func (e *ScoringError) Unwrap() error { return e.Cause }

// Composer combines the three sub-calculators into a final NutritionScoring.
// It is a pure function of its input plus the injected read-only reference
// table, so a single Composer is safe for concurrent use.
type Composer struct {
	quality   *QualityCalculator
	additives *AdditivesCalculator
	organic   *OrganicCalculator

	qualityWeight   float64
	additivesWeight float64
	organicWeight   float64

	excellentThreshold int
	goodThreshold      int
	fairThreshold      int
}

// Option configures the Composer.
type Option func(*Composer)

// WithQualityOptions passes options through to the quality calculator.
func WithQualityOptions(opts ...QualityOption) Option {
	return func(c *Composer) {
		c.quality = NewQualityCalculator(opts...)
	}
}

// WithOrganicDetector overrides the default no-certification detector.
func WithOrganicDetector(d OrganicDetector) Option {
	return func(c *Composer) {
		c.organic = NewOrganicCalculator(d)
	}
}

// WithWeights overrides the composite weights. The three weights should
// sum to 1.0; they are applied as given.
func WithWeights(quality, additives, organic float64) Option {
	return func(c *Composer) {
		c.qualityWeight = quality
		c.additivesWeight = additives
		c.organicWeight = organic
	}
}

// WithCategoryThresholds overrides the excellent/good/fair boundaries.
func WithCategoryThresholds(excellent, good, fair int) Option {
	return func(c *Composer) {
		c.excellentThreshold = excellent
		c.goodThreshold = good
		c.fairThreshold = fair
	}
}

// NewComposer creates a score composer around an additive extractor
// (normally additive.NewExtractor over a loaded reference table). The
// extractor is injected rather than reached for globally, so tests can
// run against an in-memory fixture.
func NewComposer(extractor AdditiveExtractor, opts ...Option) *Composer {
	c := &Composer{
		quality:            NewQualityCalculator(),
		additives:          NewAdditivesCalculator(extractor),
		organic:            NewOrganicCalculator(NoCertification{}),
		qualityWeight:      DefaultQualityWeight,
		additivesWeight:    DefaultAdditivesWeight,
		organicWeight:      DefaultOrganicWeight,
		excellentThreshold: DefaultExcellentThreshold,
		goodThreshold:      DefaultGoodThreshold,
		fairThreshold:      DefaultFairThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score computes the full NutritionScoring for one product.
// The only error path is a *ScoringError from a sub-calculator panicking
// on malformed input; missing data is handled inside the sub-calculators.
func (c *Composer) Score(facts *interfaces.NutritionFacts) (scoring *interfaces.NutritionScoring, err error) {
	if facts == nil {
		return nil, &ScoringError{Cause: fmt.Errorf("facts must not be nil")}
	}

	defer func() {
		if r := recover(); r != nil {
			scoring = nil
			err = &ScoringError{Product: facts.Name, Cause: fmt.Errorf("calculator panic: %v", r)}
		}
	}()

	quality := c.quality.Score(facts)
	additives := c.additives.Score(facts)
	organic := c.organic.Score(facts)

	weighted := float64(quality)*c.qualityWeight +
		float64(additives.Score)*c.additivesWeight +
		float64(organic)*c.organicWeight
	final := clampScore(int(math.Round(weighted)))

	category := CategoryFromScore(final, c.excellentThreshold, c.goodThreshold, c.fairThreshold)

	return &interfaces.NutritionScoring{
		Score:    final,
		Category: category,
		Color:    ColorForCategory(category),
		Breakdown: interfaces.ScoreBreakdown{
			NutritionalQuality: quality,
			AdditivesImpact:    additives.Score,
			OrganicBonus:       organic,
		},
		Additives:    additives.Additives,
		Improvements: c.improvements(quality, additives, organic),
	}, nil
}

// improvements generates the rule-based suggestion strings. The rules are
// independent and every applicable one fires: quality-related first, then
// additive-related, then organic-related.
func (c *Composer) improvements(quality int, additives AdditivesResult, organic int) []string {
	var out []string

	if quality < 60 {
		out = append(out,
			"Look for options with less sugar, sodium and saturated fat",
			"Prefer products with more dietary fiber and protein",
		)
	}

	if additives.Score < 80 {
		if risky := highRiskNames(additives.Additives); len(risky) > 0 {
			out = append(out, fmt.Sprintf("Avoid high-risk additives: %s", strings.Join(risky, ", ")))
		} else {
			out = append(out, "Prefer products with fewer additives")
		}
	}

	if organic == 0 {
		out = append(out, "Consider certified organic alternatives")
	}

	return out
}

// highRiskNames returns the names of red- and orange-tier detections,
// in detection order.
func highRiskNames(detected []interfaces.DetectedAdditive) []string {
	var names []string
	for _, d := range detected {
		if d.Tier == interfaces.RiskTierRed || d.Tier == interfaces.RiskTierOrange {
			names = append(names, d.Name)
		}
	}
	return names
}
