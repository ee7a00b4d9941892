package scorer

import (
	"testing"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

func TestCategoryFromScore_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  interfaces.ScoreCategory
	}{
		{100, interfaces.CategoryExcellent},
		{80, interfaces.CategoryExcellent},
		{79, interfaces.CategoryGood},
		{60, interfaces.CategoryGood},
		{59, interfaces.CategoryFair},
		{40, interfaces.CategoryFair},
		{39, interfaces.CategoryPoor},
		{0, interfaces.CategoryPoor},
	}

	for _, tc := range cases {
		got := CategoryFromScore(tc.score, DefaultExcellentThreshold, DefaultGoodThreshold, DefaultFairThreshold)
		if got != tc.want {
			t.Errorf("CategoryFromScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestColorForCategory_FixedMapping(t *testing.T) {
	cases := map[interfaces.ScoreCategory]interfaces.ScoreColor{
		interfaces.CategoryExcellent: interfaces.ColorGreen,
		interfaces.CategoryGood:      interfaces.ColorLightGreen,
		interfaces.CategoryFair:      interfaces.ColorOrange,
		interfaces.CategoryPoor:      interfaces.ColorRed,
	}

	for category, want := range cases {
		if got := ColorForCategory(category); got != want {
			t.Errorf("ColorForCategory(%s) = %s, want %s", category, got, want)
		}
	}
}
