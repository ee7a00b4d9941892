package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nutricart/nutricart/pkg/interfaces"
)

func sampleResult() Result {
	return Result{
		Name: "instant noodles",
		Scoring: &interfaces.NutritionScoring{
			Score:    74,
			Category: interfaces.CategoryGood,
			Color:    interfaces.ColorLightGreen,
			Breakdown: interfaces.ScoreBreakdown{
				NutritionalQuality: 90,
				AdditivesImpact:    65,
				OrganicBonus:       0,
			},
			Additives: []interfaces.DetectedAdditive{
				{Code: "E102", Name: "Tartrazine (Yellow 5)", Tier: interfaces.RiskTierRed, Deduction: 20},
			},
			Improvements: []string{"Consider certified organic alternatives"},
		},
	}
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Format(&buf, []Result{sampleResult()}); err != nil {
		t.Fatalf("format: %v", err)
	}

	var decoded []Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 result, got %d", len(decoded))
	}
	if decoded[0].Scoring.Score != 74 {
		t.Errorf("expected score 74, got %d", decoded[0].Scoring.Score)
	}
	if decoded[0].Scoring.Category != interfaces.CategoryGood {
		t.Errorf("expected category good, got %s", decoded[0].Scoring.Category)
	}
}

func TestTerminalFormatter_WritesScoreAndAdditives(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalFormatter().Format(&buf, []Result{sampleResult()}); err != nil {
		t.Fatalf("format: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"instant noodles",
		"74/100",
		"Tartrazine",
		"organic alternatives",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q:\n%s", want, out)
		}
	}
}
