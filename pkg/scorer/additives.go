package scorer

import (
	"strings"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// AdditiveExtractor is the contract the additives calculator consumes.
// Defined here at the consumer site so the matching strategy (today a
// regex plus a curated name list in pkg/additive) can be swapped without
// touching the composer.
type AdditiveExtractor interface {
	// Extract returns the de-duplicated additives detected in the
	// ingredient text, resolved against the reference table.
	Extract(text string) []interfaces.DetectedAdditive
}

// AdditivesResult pairs the additives impact sub-score with the
// detections behind it.
type AdditivesResult struct {
	Score     int
	Additives []interfaces.DetectedAdditive
}

// AdditivesCalculator produces the additives impact sub-score: a perfect
// 100 baseline minus each detected additive's point deduction.
type AdditivesCalculator struct {
	extractor AdditiveExtractor
}

// NewAdditivesCalculator creates a calculator backed by the given extractor.
func NewAdditivesCalculator(extractor AdditiveExtractor) *AdditivesCalculator {
	return &AdditivesCalculator{extractor: extractor}
}

// Score computes the sub-score for the facts' ingredient text. Absent
// ingredient data is treated as "nothing concerning detected" and scores
// a clean 100 — an explicit assume-clean policy, not a failure.
func (c *AdditivesCalculator) Score(facts *interfaces.NutritionFacts) AdditivesResult {
	text := facts.IngredientText()
	if strings.TrimSpace(text) == "" {
		return AdditivesResult{Score: 100}
	}

	detected := c.extractor.Extract(text)
	score := 100
	for _, d := range detected {
		score -= d.Deduction
	}

	return AdditivesResult{Score: clampScore(score), Additives: detected}
}
