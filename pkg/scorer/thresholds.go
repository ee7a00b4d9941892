package scorer

import "github.com/nutricart/nutricart/pkg/interfaces"

// Default category thresholds.
const (
	DefaultExcellentThreshold = 80
	DefaultGoodThreshold      = 60
	DefaultFairThreshold      = 40
)

// CategoryFromScore maps a final score to its four-tier category.
// excellent: score >= excellent
// good:      score >= good
// fair:      score >= fair
// poor:      everything below
func CategoryFromScore(score, excellent, good, fair int) interfaces.ScoreCategory {
	switch {
	case score >= excellent:
		return interfaces.CategoryExcellent
	case score >= good:
		return interfaces.CategoryGood
	case score >= fair:
		return interfaces.CategoryFair
	default:
		return interfaces.CategoryPoor
	}
}

// categoryColors is the fixed one-to-one category → display color mapping.
var categoryColors = map[interfaces.ScoreCategory]interfaces.ScoreColor{
	interfaces.CategoryExcellent: interfaces.ColorGreen,
	interfaces.CategoryGood:      interfaces.ColorLightGreen,
	interfaces.CategoryFair:      interfaces.ColorOrange,
	interfaces.CategoryPoor:      interfaces.ColorRed,
}

// ColorForCategory returns the display color paired with a category.
func ColorForCategory(category interfaces.ScoreCategory) interfaces.ScoreColor {
	return categoryColors[category]
}
