// Package cmd provides the CLI commands for LifeOS.
package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/insights"
	"github.com/lifeos-app/lifeos/internal/logging"
	"github.com/lifeos-app/lifeos/internal/output"
	"github.com/lifeos-app/lifeos/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagConfig string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "A personal life management tool",
	Long: `LifeOS tracks your tasks, money, fitness and study time from one
place, per user profile.

Examples:
  lifeos task add "Send monthly report" --priority high --due tomorrow
  lifeos tx add "Supermarket" 420.50 --type expense --category food --account <id>
  lifeos meal add "Oatmeal" 320 --meal-type breakfast
  lifeos study add <subject-id> 45 --note "algebra review"
  lifeos dashboard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.Config{Level: slog.LevelWarn})
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.Format = format
		opts.ColorMode = colorMode

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the overview summary.
		return runOverview(cmd, args)
	},
}

// runOverview prints the dashboard summary for the active user.
func runOverview(cmd *cobra.Command, args []string) error {
	user := ctx.Prefs.CurrentUser()
	sum := insights.Compute(ctx.Data, user, time.Now())

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"user":               user,
			"pending_tasks":      sum.PendingTasks,
			"completed_tasks":    sum.CompletedTasks,
			"total_balance":      sum.TotalBalance,
			"monthly_income":     sum.MonthlyIncome,
			"monthly_expense":    sum.MonthlyExpense,
			"today_calories":     sum.TodayCalories,
			"weekly_study_hours": sum.WeeklyStudyHours,
		})
	}

	f := ctx.Formatter
	f.Printf("Welcome back, %s!\n\n", user)
	f.Printf("Pending tasks     %d (%d done)\n", sum.PendingTasks, sum.CompletedTasks)
	f.Printf("Total balance     %s\n", output.FormatMoney(sum.TotalBalance))
	f.Printf("Calories today    %d kcal\n", sum.TodayCalories)
	f.Printf("Study this week   %.1f h\n", sum.WeeklyStudyHours)
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "cli", "Output format (cli, json, plain)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color mode (auto, always, never)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Version = Version
}
