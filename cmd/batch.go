package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutricart/nutricart/pkg/interfaces"
	"github.com/nutricart/nutricart/pkg/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch <facts.json>",
	Short: "Score many products concurrently",
	Long: `Batch reads a JSON array of product documents and scores them all.

Products are scored concurrently. An item that cannot be scored never
aborts the batch: its slot in the output is a worst-case sentinel result
with an explanatory message.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	composer, cfg, err := buildComposer()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	var items []*interfaces.NutritionFacts
	if err := readJSONFile(args[0], &items); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("batch: %s contains no products", args[0])
	}

	scorings := composer.BatchScore(cmd.Context(), items)

	results := make([]report.Result, len(scorings))
	for i, s := range scorings {
		var name string
		if items[i] != nil {
			name = items[i].Name
		}
		results[i] = report.Result{Name: name, Scoring: s}
	}

	return writeResults(cfg, results)
}
