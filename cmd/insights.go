package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/insights"
)

// insightsCmd represents the insights command.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show templated insights for the active user",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	sum := insights.Compute(ctx.Data, ctx.Prefs.CurrentUser(), timeNow())
	generated := insights.Generate(sum)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(generated)
	}

	f := ctx.Formatter
	for _, in := range generated {
		f.Printf("[%s]\n", in.Category)
		f.Printf("  %s\n", in.Message)
		f.Printf("  %s\n\n", in.Suggestion)
	}
	return nil
}
