package additive

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

// codePattern matches the E-number shape: the letter E, exactly three
// digits, and at most one trailing letter (e.g. "E330", "e150d").
var codePattern = regexp.MustCompile(`(?i)\bE(\d{3})([a-z])?\b`)

// commonNames is the curated list of additives that frequently appear in
// ingredient text without an E-number. Scanned in this order; each entry
// must resolve against the reference table by name.
var commonNames = []string{
	"high fructose corn syrup",
	"partially hydrogenated",
	"monosodium glutamate",
	"sodium nitrite",
	"sodium nitrate",
	"sodium benzoate",
	"potassium sorbate",
	"aspartame",
	"sucralose",
	"acesulfame",
	"carrageenan",
	"caramel color",
	"titanium dioxide",
	"yellow 5",
	"yellow 6",
	"red 40",
	"red 3",
	"bha",
	"bht",
	"maltodextrin",
	"yeast extract",
	"natural flavor",
	"artificial flavor",
}

// Extractor scans free-text ingredient lists for additives and resolves
// each detection against an injected reference table. The matching
// strategy (an E-number pattern pass followed by a curated-name pass) is
// an implementation detail behind Extract.
type Extractor struct {
	table interfaces.AdditiveLookup
}

// NewExtractor creates an extractor backed by the given reference table.
func NewExtractor(table interfaces.AdditiveLookup) *Extractor {
	return &Extractor{table: table}
}

// Extract returns the de-duplicated additives detected in the ingredient
// text: E-number matches first in order of appearance, then curated-name
// matches in list order. A detection that resolves to an additive already
// in the result is suppressed, keeping the first occurrence. E-number
// shapes absent from the reference table are skipped.
func (e *Extractor) Extract(text string) []interfaces.DetectedAdditive {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var detected []interfaces.DetectedAdditive
	seen := make(map[string]bool)

	add := func(def *interfaces.AdditiveDefinition) {
		key := strings.ToLower(def.Name)
		if seen[key] {
			return
		}
		seen[key] = true
		detected = append(detected, interfaces.DetectedAdditive{
			Code:        def.Code,
			Name:        def.Name,
			Tier:        def.Tier,
			Description: def.Description,
			Deduction:   def.Deduction,
		})
	}

	// Pattern pass: E-number codes in order of appearance.
	for _, m := range codePattern.FindAllStringSubmatch(text, -1) {
		code := "E" + m[1] + strings.ToLower(m[2])
		def := e.table.LookupByCode(code)
		if def == nil {
			slog.Debug("unrecognized additive code in ingredient text", "code", code)
			continue
		}
		add(def)
	}

	// Name pass: curated common names, case-insensitive substring search.
	lower := strings.ToLower(text)
	for _, name := range commonNames {
		if !strings.Contains(lower, name) {
			continue
		}
		if def := e.table.LookupByNameContains(name); def != nil {
			add(def)
		}
	}

	return detected
}
