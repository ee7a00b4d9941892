package scorer

import (
	"errors"
	"strings"
	"testing"

	"github.com/nutricart/nutricart/pkg/additive"
	"github.com/nutricart/nutricart/pkg/interfaces"
)

func defaultComposer(t *testing.T, opts ...Option) *Composer {
	t.Helper()
	table, err := additive.LoadTable("")
	if err != nil {
		t.Fatalf("loading embedded reference table: %v", err)
	}
	return NewComposer(additive.NewExtractor(table), opts...)
}

func TestComposer_ReferenceScenario(t *testing.T) {
	c := defaultComposer(t)
	facts := &interfaces.NutritionFacts{
		Name:        "instant noodles",
		ServingSize: "50g",
		Sodium:      fv(1200),
		Ingredients: "water, E102, E621, natural flavor",
	}

	scoring, err := c.Score(facts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// sodium 1200mg/50g → 2400mg/100g → -10 → quality 90.
	if scoring.Breakdown.NutritionalQuality != 90 {
		t.Errorf("expected quality 90, got %d", scoring.Breakdown.NutritionalQuality)
	}
	// E102 (red, -20) + E621 (orange, -10) + natural flavor (yellow, -5) → 65.
	if scoring.Breakdown.AdditivesImpact != 65 {
		t.Errorf("expected additives 65, got %d", scoring.Breakdown.AdditivesImpact)
	}
	if scoring.Breakdown.OrganicBonus != 0 {
		t.Errorf("expected organic 0 by default, got %d", scoring.Breakdown.OrganicBonus)
	}
	// round(90*0.6 + 65*0.3 + 0*0.1) = round(73.5) = 74.
	if scoring.Score != 74 {
		t.Errorf("expected final score 74, got %d", scoring.Score)
	}
	if scoring.Category != interfaces.CategoryGood {
		t.Errorf("expected category good, got %s", scoring.Category)
	}
	if scoring.Color != interfaces.ColorLightGreen {
		t.Errorf("expected color light-green, got %s", scoring.Color)
	}
	if len(scoring.Additives) != 3 {
		t.Fatalf("expected 3 detected additives, got %d", len(scoring.Additives))
	}
	if scoring.Additives[0].Code != "E102" || scoring.Additives[1].Code != "E621" {
		t.Errorf("expected pattern-pass detections first (E102, E621), got %s, %s",
			scoring.Additives[0].Code, scoring.Additives[1].Code)
	}
}

func TestComposer_WeightConservation(t *testing.T) {
	c := defaultComposer(t, WithOrganicDetector(StaticDetector(true)))

	// No nutrients, no ingredients: quality 100, additives 100 (assume
	// clean), organic 100 → round(60+30+10) = 100.
	scoring, err := c.Score(&interfaces.NutritionFacts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoring.Score != 100 {
		t.Errorf("expected 100, got %d", scoring.Score)
	}
	if scoring.Category != interfaces.CategoryExcellent {
		t.Errorf("expected excellent, got %s", scoring.Category)
	}
	if scoring.Color != interfaces.ColorGreen {
		t.Errorf("expected green, got %s", scoring.Color)
	}
}

func TestComposer_ImprovementRulesFireIndependently(t *testing.T) {
	c := defaultComposer(t)
	facts := &interfaces.NutritionFacts{
		ServingSize:  "100g",
		Calories:     fv(500),
		SaturatedFat: fv(10),
		Sugars:       fv(40),
		Sodium:       fv(1500), // all four top-band: quality 100-40 = 60
		Ingredients:  "sugar, E102, E110",
	}

	scoring, err := c.Score(facts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// additives 100-40=60 < 80 → red-tier names; organic 0 → organic line.
	var hasAdditiveLine, hasOrganicLine bool
	for _, imp := range scoring.Improvements {
		switch {
		case strings.Contains(imp, "Tartrazine"):
			hasAdditiveLine = true
		case strings.Contains(imp, "organic"):
			hasOrganicLine = true
		}
	}
	if !hasAdditiveLine {
		t.Errorf("expected an improvement naming the red-tier additives, got %v", scoring.Improvements)
	}
	if !hasOrganicLine {
		t.Errorf("expected an organic suggestion, got %v", scoring.Improvements)
	}
}

func TestComposer_QualityRuleSilentAtBoundary(t *testing.T) {
	c := defaultComposer(t)
	facts := &interfaces.NutritionFacts{
		ServingSize:  "30g",
		Calories:     fv(200),  // 666 kcal/100g → -10
		SaturatedFat: fv(8),    // 26g/100g → -10
		Sugars:       fv(15),   // 50g/100g → -10
		Sodium:       fv(400),  // 1333mg/100g → -10
	}

	scoring, err := c.Score(facts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoring.Breakdown.NutritionalQuality != 60 {
		t.Fatalf("expected quality 60, got %d", scoring.Breakdown.NutritionalQuality)
	}

	// Quality is exactly 60, which is not below the threshold: the
	// quality suggestions must NOT fire.
	for _, imp := range scoring.Improvements {
		if strings.Contains(imp, "saturated fat") {
			t.Errorf("quality rule fired at the 60 boundary: %v", scoring.Improvements)
		}
	}
}

func TestComposer_PanicBecomesScoringError(t *testing.T) {
	c := NewComposer(panickingExtractor{})
	facts := &interfaces.NutritionFacts{Name: "broken", Ingredients: "E102"}

	scoring, err := c.Score(facts)
	if scoring != nil {
		t.Errorf("expected nil scoring on failure, got %+v", scoring)
	}

	var serr *ScoringError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ScoringError, got %T: %v", err, err)
	}
	if serr.Product != "broken" {
		t.Errorf("expected product name in error, got %q", serr.Product)
	}
}

func TestComposer_NilFacts_ScoringError(t *testing.T) {
	c := defaultComposer(t)

	_, err := c.Score(nil)
	var serr *ScoringError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ScoringError for nil facts, got %T: %v", err, err)
	}
}

type panickingExtractor struct{}

func (panickingExtractor) Extract(string) []interfaces.DetectedAdditive {
	panic("reference table corrupted")
}

