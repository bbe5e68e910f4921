package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/parser"
)

// txCmd represents the transaction command.
var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction", "transactions"},
	Short:   "Manage transactions",
	Long: `List and manage transactions for the active user.

Examples:
  lifeos tx list
  lifeos tx add "Supermarket" 420.50 --type expense --category food --account <id>
  lifeos tx rm <id>`,
	RunE: runTxList,
}

var (
	txAddFlagType     string
	txAddFlagCategory string
	txAddFlagAccount  string
	txAddFlagDate     string
)

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions for the active user",
	RunE:  runTxList,
}

var txAddCmd = &cobra.Command{
	Use:   "add DESCRIPTION AMOUNT",
	Short: "Add a transaction",
	Args:  cobra.ExactArgs(2),
	RunE:  runTxAdd,
}

var txRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxRm,
}

// accountCmd represents the account command.
var accountCmd = &cobra.Command{
	Use:     "account",
	Aliases: []string{"accounts"},
	Short:   "Manage accounts",
	RunE:    runAccountList,
}

var (
	accountAddFlagBank    string
	accountAddFlagBalance float64
	accountAddFlagColor   string
)

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts for the active user",
	RunE:  runAccountList,
}

var accountAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountAdd,
}

// goalCmd represents the financial goal command.
var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"goals"},
	Short:   "Manage financial goals",
	RunE:    runGoalList,
}

var (
	goalAddFlagTarget   float64
	goalAddFlagCurrent  float64
	goalAddFlagDeadline string
	goalAddFlagColor    string
)

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List financial goals for the active user",
	RunE:  runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a financial goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalAdd,
}

func init() {
	txAddCmd.Flags().StringVarP(&txAddFlagType, "type", "t", "expense", "Type (income, expense)")
	txAddCmd.Flags().StringVarP(&txAddFlagCategory, "category", "c", "other", "Category")
	txAddCmd.Flags().StringVarP(&txAddFlagAccount, "account", "a", "", "Account id (required)")
	txAddCmd.Flags().StringVar(&txAddFlagDate, "date", "", "Date (natural language)")
	_ = txAddCmd.MarkFlagRequired("account")

	accountAddCmd.Flags().StringVarP(&accountAddFlagBank, "bank", "b", "", "Bank name")
	accountAddCmd.Flags().Float64Var(&accountAddFlagBalance, "balance", 0, "Starting balance")
	accountAddCmd.Flags().StringVarP(&accountAddFlagColor, "color", "c", "", "Hex color (#RRGGBB)")

	goalAddCmd.Flags().Float64Var(&goalAddFlagTarget, "target", 0, "Target amount")
	goalAddCmd.Flags().Float64Var(&goalAddFlagCurrent, "current", 0, "Current amount")
	goalAddCmd.Flags().StringVar(&goalAddFlagDeadline, "deadline", "", "Deadline (natural language)")
	goalAddCmd.Flags().StringVarP(&goalAddFlagColor, "color", "c", "", "Hex color (#RRGGBB)")

	txCmd.AddCommand(txListCmd, txAddCmd, txRmCmd)
	accountCmd.AddCommand(accountListCmd, accountAddCmd)
	goalCmd.AddCommand(goalListCmd, goalAddCmd)
	rootCmd.AddCommand(txCmd, accountCmd, goalCmd)
}

func runTxList(cmd *cobra.Command, args []string) error {
	txs := ctx.Data.TransactionsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(txs)
	}
	ctx.CLIFormatter().PrintTransactions(txs, func(id string) string {
		if a, ok := ctx.Data.AccountByID(id); ok {
			return a.Name
		}
		// Dangling reference: render the raw id rather than hide the row.
		return id
	})
	return nil
}

func runTxAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.NewUserErrorWithField("amount", args[1],
			"Invalid amount", "Provide a decimal number like 420.50")
	}
	date, err := parser.ParseDate(txAddFlagDate)
	if err != nil {
		return err
	}

	user := ctx.Prefs.CurrentUser()
	created, err := ctx.Data.AddTransaction(model.Transaction{
		Description: args[0],
		Amount:      amount,
		Type:        model.TransactionType(txAddFlagType),
		Category:    model.TransactionCategory(txAddFlagCategory),
		Date:        date,
		AccountID:   resolveAccountID(txAddFlagAccount),
		User:        user,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Added transaction %s\n", created.ID[:8])
	return nil
}

func runTxRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteTransaction(resolveID(args[0], func() []string {
		txs := ctx.Data.TransactionsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(txs))
		for i, tx := range txs {
			ids[i] = tx.ID
		}
		return ids
	}))
	ctx.Formatter.Println("Deleted.")
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	accounts := ctx.Data.AccountsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(accounts)
	}
	ctx.CLIFormatter().PrintAccounts(accounts)
	return nil
}

func runAccountAdd(cmd *cobra.Command, args []string) error {
	created, err := ctx.Data.AddAccount(model.Account{
		Name:    args[0],
		Bank:    accountAddFlagBank,
		Balance: accountAddFlagBalance,
		Color:   accountAddFlagColor,
		User:    ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Added account %s: %s\n", created.ID[:8], created.Name)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	goals := ctx.Data.FinancialGoalsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(goals)
	}
	f := ctx.Formatter
	for _, g := range goals {
		pct := 0.0
		if g.TargetAmount > 0 {
			pct = g.CurrentAmount / g.TargetAmount * 100
		}
		f.Printf("%-9s %-20s %.0f%% of %.2f by %s\n",
			g.ID[:8], g.Name, pct, g.TargetAmount, g.Deadline.Format("2006-01-02"))
	}
	return nil
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	deadline, err := parser.ParseDate(goalAddFlagDeadline)
	if err != nil {
		return err
	}
	created, err := ctx.Data.AddFinancialGoal(model.FinancialGoal{
		Name:          args[0],
		TargetAmount:  goalAddFlagTarget,
		CurrentAmount: goalAddFlagCurrent,
		Deadline:      deadline,
		Color:         goalAddFlagColor,
		User:          ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Added goal %s: %s\n", created.ID[:8], created.Name)
	return nil
}

// resolveAccountID expands an account id prefix for the active user.
func resolveAccountID(prefix string) string {
	return resolveID(prefix, func() []string {
		accounts := ctx.Data.AccountsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(accounts))
		for i, a := range accounts {
			ids[i] = a.ID
		}
		return ids
	})
}
