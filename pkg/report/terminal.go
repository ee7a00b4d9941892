// Package report renders scored products for CLI consumption.
package report

import (
	"fmt"
	"io"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// Result pairs a product name with its scoring, the unit both formatters
// render.
type Result struct {
	Name    string                       `json:"name,omitempty"`
	Scoring *interfaces.NutritionScoring `json:"scoring"`
}

// Formatter writes scored products to a writer.
type Formatter interface {
	Format(w io.Writer, results []Result) error
}

// ANSI color codes for terminal output.
const (
	colorReset       = "\033[0m"
	colorRed         = "\033[31m"
	colorGreen       = "\033[32m"
	colorYellow      = "\033[33m"
	colorCyan        = "\033[36m"
	colorBrightGreen = "\033[92m"
	colorBold        = "\033[1m"
	colorDim         = "\033[2m"
)

// TerminalFormatter writes a color-coded scoring report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the results to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, results []Result) error {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  Nutricart Nutrition Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)

	for _, r := range results {
		f.writeProduct(w, r)
	}
	return nil
}

func (f *TerminalFormatter) writeProduct(w io.Writer, r Result) {
	name := r.Name
	if name == "" {
		name = "(unnamed product)"
	}
	s := r.Scoring
	color := categoryColor(s.Category)

	fmt.Fprintf(w, "  %s%s%s\n", colorBold, name, colorReset)
	fmt.Fprintf(w, "  %s%sScore: %d/100 [%s]%s\n",
		colorBold, color, s.Score, s.Category, colorReset)
	fmt.Fprintf(w, "  %squality %d | additives %d | organic %d%s\n\n",
		colorDim,
		s.Breakdown.NutritionalQuality,
		s.Breakdown.AdditivesImpact,
		s.Breakdown.OrganicBonus,
		colorReset)

	if len(s.Additives) > 0 {
		fmt.Fprintf(w, "  Additives detected:\n")
		for _, a := range s.Additives {
			label := a.Name
			if a.Code != "" {
				label = fmt.Sprintf("%s %s", a.Code, a.Name)
			}
			fmt.Fprintf(w, "    %s[%s]%s %s %s(-%d)%s\n",
				tierColor(a.Tier), a.Tier, colorReset, label, colorDim, a.Deduction, colorReset)
		}
		fmt.Fprintln(w)
	}

	for _, imp := range s.Improvements {
		fmt.Fprintf(w, "  %s→ %s%s\n", colorCyan, imp, colorReset)
	}
	fmt.Fprintln(w)
}

// categoryColor returns the ANSI color for a score category.
func categoryColor(c interfaces.ScoreCategory) string {
	switch c {
	case interfaces.CategoryExcellent:
		return colorGreen
	case interfaces.CategoryGood:
		return colorBrightGreen
	case interfaces.CategoryFair:
		return colorYellow
	case interfaces.CategoryPoor:
		return colorRed
	default:
		return colorReset
	}
}

// tierColor returns the ANSI color for an additive risk tier.
func tierColor(t interfaces.RiskTier) string {
	switch t {
	case interfaces.RiskTierRed:
		return colorRed
	case interfaces.RiskTierOrange, interfaces.RiskTierYellow:
		return colorYellow
	case interfaces.RiskTierGreen:
		return colorGreen
	default:
		return colorReset
	}
}
