package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutricart/nutricart/pkg/additive"
	"github.com/nutricart/nutricart/pkg/cli"
)

var additivesCmd = &cobra.Command{
	Use:   "additives [code-or-name]",
	Short: "Inspect the additive reference table",
	Long: `Additives lists the loaded additive reference table, or resolves a
single identifier or name fragment against it:

  nutricart additives
  nutricart additives E330
  nutricart additives "corn syrup"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdditives,
}

func init() {
	rootCmd.AddCommand(additivesCmd)
}

func runAdditives(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("additives: %w", err)
	}

	table, err := additive.LoadTable(cfg.Additives.Table)
	if err != nil {
		return fmt.Errorf("additives: %w", err)
	}

	if len(args) == 1 {
		def := table.LookupByCode(args[0])
		if def == nil {
			def = table.LookupByNameContains(args[0])
		}
		if def == nil {
			return fmt.Errorf("additives: %q not found in reference table", args[0])
		}
		printDefinition(def.Code, def.Name, string(def.Tier), def.Deduction, def.Description)
		return nil
	}

	for _, def := range table.Definitions() {
		printDefinition(def.Code, def.Name, string(def.Tier), def.Deduction, def.Description)
	}
	fmt.Printf("\n%d additives loaded\n", table.Len())
	return nil
}

func printDefinition(code, name, tier string, deduction int, description string) {
	if code == "" {
		code = "-"
	}
	fmt.Printf("%-7s %-8s -%-3d %s\n", code, tier, deduction, name)
	if description != "" {
		fmt.Printf("        %s\n", description)
	}
}
