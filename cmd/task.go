package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/parser"
	"github.com/lifeos-app/lifeos/internal/store"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks"},
	Short:   "Manage tasks",
	Long: `List and manage tasks for the active user.

Examples:
  lifeos task list
  lifeos task add "Client meeting" --priority high --due tomorrow
  lifeos task done <id>
  lifeos task rm <id>`,
	RunE: runTaskList,
}

// Task subcommand flags.
var (
	taskAddFlagDescription string
	taskAddFlagPriority    string
	taskAddFlagStatus      string
	taskAddFlagDue         string
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks for the active user",
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskAddFlagPriority, "priority", "p", "medium", "Priority (high, medium, low)")
	taskAddCmd.Flags().StringVarP(&taskAddFlagStatus, "status", "s", "pending", "Status (pending, in_progress, done)")
	taskAddCmd.Flags().StringVar(&taskAddFlagDue, "due", "", "Due date (natural language)")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	tasks := ctx.Data.TasksByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(tasks)
	}
	ctx.CLIFormatter().PrintTasks(tasks)
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	due, err := parser.ParseDate(taskAddFlagDue)
	if err != nil {
		return err
	}

	created, err := ctx.Data.AddTask(model.Task{
		Title:       args[0],
		Description: taskAddFlagDescription,
		Status:      model.TaskStatus(taskAddFlagStatus),
		Priority:    model.TaskPriority(taskAddFlagPriority),
		DueDate:     due,
		User:        ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Added task %s: %s\n", created.ID[:8], created.Title)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	if err := ctx.Data.UpdateTask(resolveTaskID(args[0]), store.Partial{"status": string(model.TaskDone)}); err != nil {
		return err
	}
	ctx.Formatter.Println("Done.")
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteTask(resolveTaskID(args[0]))
	ctx.Formatter.Println("Deleted.")
	return nil
}

// resolveTaskID expands an id prefix typed on the command line to the
// full task id. Ambiguous or unknown prefixes pass through unchanged
// and the mutation becomes a no-op downstream.
func resolveTaskID(prefix string) string {
	return resolveID(prefix, func() []string {
		tasks := ctx.Data.TasksByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}
		return ids
	})
}
