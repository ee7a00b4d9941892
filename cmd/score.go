package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutricart/nutricart/pkg/additive"
	"github.com/nutricart/nutricart/pkg/cli"
	"github.com/nutricart/nutricart/pkg/interfaces"
	"github.com/nutricart/nutricart/pkg/report"
	"github.com/nutricart/nutricart/pkg/scorer"
)

var organicFlag bool

var scoreCmd = &cobra.Command{
	Use:   "score <facts.json>",
	Short: "Score a single product's nutrition facts",
	Long: `Score reads one product document and prints its nutrition score.

The document is JSON with the product name, serving size, per-serving
nutrient values and ingredient text:

  {
    "name": "Cola",
    "serving_size": "355ml (360g)",
    "calories": 140,
    "sugars": 39,
    "sodium": 45,
    "ingredients": "carbonated water, high fructose corn syrup, E150d, E338, natural flavor"
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&organicFlag, "organic", false, "treat the product as certified organic")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	composer, cfg, err := buildComposer()
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}

	facts := &interfaces.NutritionFacts{}
	if err := readJSONFile(args[0], facts); err != nil {
		return fmt.Errorf("score: %w", err)
	}

	scoring, err := composer.Score(facts)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}

	return writeResults(cfg, []report.Result{{Name: facts.Name, Scoring: scoring}})
}

// buildComposer loads config and assembles the reference table, extractor
// and composer shared by the score and batch commands.
func buildComposer() (*scorer.Composer, *cli.Config, error) {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	table, err := additive.LoadTable(cfg.Additives.Table)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("additive reference table loaded", "entries", table.Len(), "path", cfg.Additives.Table)

	opts := []scorer.Option{
		scorer.WithCategoryThresholds(cfg.Thresholds.Excellent, cfg.Thresholds.Good, cfg.Thresholds.Fair),
		scorer.WithWeights(cfg.Weights.Quality, cfg.Weights.Additives, cfg.Weights.Organic),
		scorer.WithQualityOptions(scorer.WithFallbackServingGrams(cfg.Serving.FallbackGrams)),
	}
	if organicFlag {
		opts = append(opts, scorer.WithOrganicDetector(scorer.StaticDetector(true)))
	}

	return scorer.NewComposer(additive.NewExtractor(table), opts...), cfg, nil
}

// readJSONFile decodes a JSON document from disk into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// writeResults renders results with the selected formatter, to stdout or
// the --output file.
func writeResults(cfg *cli.Config, results []report.Result) error {
	name := format
	if name == "" {
		name = cfg.Output.Format
	}

	var f report.Formatter
	switch name {
	case "json":
		f = report.NewJSONFormatter()
	default:
		f = report.NewTerminalFormatter()
	}

	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := f.Format(w, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
