package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/parser"
)

// subjectCmd represents the subject command.
var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"subjects"},
	Short:   "Manage study subjects",
	RunE:    runSubjectList,
}

var (
	subjectAddFlagColor string
	subjectAddFlagIcon  string
)

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects for the active user",
	RunE:  runSubjectList,
}

var subjectAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectAdd,
}

var subjectRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubjectRm,
}

// studyCmd represents the study session command.
var studyCmd = &cobra.Command{
	Use:     "study",
	Aliases: []string{"sessions"},
	Short:   "Log study sessions",
	Long: `List and log study sessions for the active user.

Examples:
  lifeos study list
  lifeos study add <subject-id> 45 --note "algebra review"
  lifeos study rm <id>`,
	RunE: runStudyList,
}

var (
	studyAddFlagNote string
	studyAddFlagDate string
)

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List study sessions for the active user",
	RunE:  runStudyList,
}

var studyAddCmd = &cobra.Command{
	Use:   "add SUBJECT_ID MINUTES",
	Short: "Log a study session",
	Args:  cobra.ExactArgs(2),
	RunE:  runStudyAdd,
}

var studyRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a study session",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudyRm,
}

func init() {
	subjectAddCmd.Flags().StringVarP(&subjectAddFlagColor, "color", "c", "", "Hex color (#RRGGBB)")
	subjectAddCmd.Flags().StringVarP(&subjectAddFlagIcon, "icon", "i", "book", "Icon identifier")

	studyAddCmd.Flags().StringVarP(&studyAddFlagNote, "note", "n", "", "Session description")
	studyAddCmd.Flags().StringVar(&studyAddFlagDate, "date", "", "Date (natural language)")

	subjectCmd.AddCommand(subjectListCmd, subjectAddCmd, subjectRmCmd)
	studyCmd.AddCommand(studyListCmd, studyAddCmd, studyRmCmd)
	rootCmd.AddCommand(subjectCmd, studyCmd)
}

func runSubjectList(cmd *cobra.Command, args []string) error {
	subjects := ctx.Data.SubjectsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(subjects)
	}
	ctx.CLIFormatter().PrintSubjects(subjects)
	return nil
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	created, err := ctx.Data.AddSubject(model.Subject{
		Name:  args[0],
		Color: subjectAddFlagColor,
		Icon:  subjectAddFlagIcon,
		User:  ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Added subject %s: %s\n", created.ID[:8], created.Name)
	return nil
}

func runSubjectRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteSubject(resolveSubjectID(args[0]))
	ctx.Formatter.Println("Deleted.")
	return nil
}

func runStudyList(cmd *cobra.Command, args []string) error {
	sessions := ctx.Data.StudySessionsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(sessions)
	}
	ctx.CLIFormatter().PrintStudySessions(sessions, func(id string) string {
		if sub, ok := ctx.Data.SubjectByID(id); ok {
			return sub.Name
		}
		// Dangling reference: render the raw id rather than hide the row.
		return id
	})
	return nil
}

func runStudyAdd(cmd *cobra.Command, args []string) error {
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewUserErrorWithField("minutes", args[1],
			"Invalid duration", "Provide the session length in whole minutes")
	}
	date, err := parser.ParseDate(studyAddFlagDate)
	if err != nil {
		return err
	}

	created, err := ctx.Data.AddStudySession(model.StudySession{
		SubjectID:   resolveSubjectID(args[0]),
		DurationMin: minutes,
		Date:        date,
		Description: studyAddFlagNote,
		User:        ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Logged session %s\n", created.ID[:8])
	return nil
}

func runStudyRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteStudySession(resolveID(args[0], func() []string {
		sessions := ctx.Data.StudySessionsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(sessions))
		for i, s := range sessions {
			ids[i] = s.ID
		}
		return ids
	}))
	ctx.Formatter.Println("Deleted.")
	return nil
}

// resolveSubjectID expands a subject id prefix for the active user.
func resolveSubjectID(prefix string) string {
	return resolveID(prefix, func() []string {
		subjects := ctx.Data.SubjectsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(subjects))
		for i, s := range subjects {
			ids[i] = s.ID
		}
		return ids
	})
}
