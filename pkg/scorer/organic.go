package scorer

import "github.com/nutricart/nutricart/pkg/interfaces"

// OrganicDetector reports whether a product carries organic certification.
// Certification data lives outside the scoring core, so the capability is
// pluggable; the default is NoCertification.
type OrganicDetector interface {
	IsOrganic(facts *interfaces.NutritionFacts) bool
}

// NoCertification is the default detector, used when no certification
// plumbing is wired through. It always reports not organic, which means
// the organic bonus contributes nothing. This is a documented
// incompleteness of the default configuration, not an error state.
type NoCertification struct{}

func (NoCertification) IsOrganic(*interfaces.NutritionFacts) bool { return false }

// StaticDetector answers with a fixed value, for callers that already
// resolved certification upstream.
type StaticDetector bool

func (d StaticDetector) IsOrganic(*interfaces.NutritionFacts) bool { return bool(d) }

// OrganicCalculator produces the binary organic bonus sub-score.
type OrganicCalculator struct {
	detector OrganicDetector
}

// NewOrganicCalculator creates a calculator backed by the given detector.
func NewOrganicCalculator(detector OrganicDetector) *OrganicCalculator {
	if detector == nil {
		detector = NoCertification{}
	}
	return &OrganicCalculator{detector: detector}
}

// Score returns 100 for certified-organic products, 0 otherwise.
func (c *OrganicCalculator) Score(facts *interfaces.NutritionFacts) int {
	if c.detector.IsOrganic(facts) {
		return 100
	}
	return 0
}
