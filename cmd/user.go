package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
)

// userCmd represents the user command.
var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"users"},
	Short:   "Switch or list user profiles",
	RunE:    runUserList,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user profiles",
	RunE:  runUserList,
}

var userSwitchCmd = &cobra.Command{
	Use:   "switch NAME",
	Short: "Switch the active user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserSwitch,
}

// themeCmd represents the theme command.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme",
	RunE:  runThemeShow,
}

var themeSetCmd = &cobra.Command{
	Use:   "set MODE",
	Short: "Set the theme (light, dark)",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between light and dark",
	RunE:  runThemeToggle,
}

func init() {
	userCmd.AddCommand(userListCmd, userSwitchCmd)
	themeCmd.AddCommand(themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(userCmd, themeCmd)
}

func runUserList(cmd *cobra.Command, args []string) error {
	profiles := ctx.Prefs.Profiles()
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"current": ctx.Prefs.CurrentUser(),
			"users":   profiles,
		})
	}
	current := ctx.Prefs.CurrentUser()
	for _, p := range profiles {
		marker := " "
		if p.Name == current {
			marker = "*"
		}
		ctx.Formatter.Printf("%s %-12s %s\n", marker, p.Name, p.Email)
	}
	return nil
}

func runUserSwitch(cmd *cobra.Command, args []string) error {
	ctx.Prefs.SetUser(args[0])
	ctx.Formatter.Printf("Active user: %s\n", ctx.Prefs.CurrentUser())
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"theme": ctx.Prefs.Theme()})
	}
	ctx.Formatter.Printf("Theme: %s\n", ctx.Prefs.Theme())
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	theme := model.Theme(args[0])
	if !model.ValidTheme(theme) {
		return errors.NewUserErrorWithField("theme", args[0],
			"Unknown theme", "Use 'light' or 'dark'")
	}
	ctx.Prefs.SetTheme(theme)
	ctx.Formatter.Printf("Theme: %s\n", ctx.Prefs.Theme())
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	ctx.Prefs.ToggleTheme()
	ctx.Formatter.Printf("Theme: %s\n", ctx.Prefs.Theme())
	return nil
}
