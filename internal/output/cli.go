package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos-app/lifeos/internal/model"
)

// CLIFormatter renders human-readable listings.
type CLIFormatter struct {
	f *Formatter

	styleHeader lipgloss.Style
	styleID     lipgloss.Style
	styleDone   lipgloss.Style
	styleHigh   lipgloss.Style
	styleIncome lipgloss.Style
	styleOut    lipgloss.Style
}

// NewCLIFormatter creates a CLI formatter bound to f.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	c := &CLIFormatter{f: f}
	if f.IsColorEnabled() {
		c.styleHeader = lipgloss.NewStyle().Bold(true)
		c.styleID = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		c.styleDone = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
		c.styleHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
		c.styleIncome = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
		c.styleOut = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	}
	return c
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintTasks renders a task listing.
func (c *CLIFormatter) PrintTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		c.f.Println("No tasks.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        STATUS       PRIORITY  DUE         TITLE"))
	for _, t := range tasks {
		status := string(t.Status)
		if t.Status == model.TaskDone {
			status = c.styleDone.Render(status)
		}
		priority := string(t.Priority)
		if t.Priority == model.PriorityHigh {
			priority = c.styleHigh.Render(priority)
		}
		c.f.Printf("%-9s %-12s %-9s %s  %s\n",
			c.styleID.Render(shortID(t.ID)), status, priority,
			FormatDate(t.DueDate), t.Title)
	}
}

// PrintTransactions renders a transaction listing with resolved account
// names; a dangling account id falls back to the raw id.
func (c *CLIFormatter) PrintTransactions(txs []model.Transaction, accountName func(id string) string) {
	if len(txs) == 0 {
		c.f.Println("No transactions.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        DATE        TYPE     CATEGORY    AMOUNT      ACCOUNT         DESCRIPTION"))
	for _, tx := range txs {
		amount := FormatMoney(tx.Amount)
		if tx.Type == model.TransactionIncome {
			amount = c.styleIncome.Render("+" + amount)
		} else {
			amount = c.styleOut.Render("-" + amount)
		}
		c.f.Printf("%-9s %s  %-8s %-11s %-11s %-15s %s\n",
			c.styleID.Render(shortID(tx.ID)), FormatDate(tx.Date),
			tx.Type, tx.Category, amount, accountName(tx.AccountID), tx.Description)
	}
}

// PrintAccounts renders an account listing.
func (c *CLIFormatter) PrintAccounts(accounts []model.Account) {
	if len(accounts) == 0 {
		c.f.Println("No accounts.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        NAME            BANK          BALANCE"))
	for _, a := range accounts {
		c.f.Printf("%-9s %-15s %-13s %s\n",
			c.styleID.Render(shortID(a.ID)), a.Name, a.Bank, FormatMoney(a.Balance))
	}
}

// PrintMeals renders a meal listing.
func (c *CLIFormatter) PrintMeals(meals []model.Meal) {
	if len(meals) == 0 {
		c.f.Println("No meals.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        DATE        TYPE       KCAL  PROT  CARB  FAT   NAME"))
	for _, m := range meals {
		c.f.Printf("%-9s %s  %-9s %-5d %-5d %-5d %-5d %s\n",
			c.styleID.Render(shortID(m.ID)), FormatDate(m.Date),
			m.MealType, m.Calories, m.Protein, m.Carbs, m.Fat, m.Name)
	}
}

// PrintWorkouts renders a workout listing.
func (c *CLIFormatter) PrintWorkouts(workouts []model.Workout) {
	if len(workouts) == 0 {
		c.f.Println("No workouts.")
		return
	}
	for _, w := range workouts {
		c.f.Printf("%s  %s  %s (%s, %d exercises)\n",
			c.styleID.Render(shortID(w.ID)), FormatDate(w.Date),
			c.styleHeader.Render(w.Name), FormatMinutes(w.DurationMin), len(w.Exercises))
		for _, ex := range w.Exercises {
			if ex.Weight > 0 {
				c.f.Printf("    %s %dx%d @ %.1fkg\n", ex.Name, ex.Sets, ex.Reps, ex.Weight)
			} else {
				c.f.Printf("    %s %dx%d\n", ex.Name, ex.Sets, ex.Reps)
			}
		}
	}
}

// PrintMeasurements renders a measurement listing.
func (c *CLIFormatter) PrintMeasurements(measurements []model.BodyMeasurement) {
	if len(measurements) == 0 {
		c.f.Println("No measurements.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        DATE        WEIGHT  FAT%   WAIST"))
	for _, m := range measurements {
		c.f.Printf("%-9s %s  %-7.1f %-6.1f %-6.1f\n",
			c.styleID.Render(shortID(m.ID)), FormatDate(m.Date), m.Weight, m.BodyFat, m.Waist)
	}
}

// PrintSubjects renders a subject listing.
func (c *CLIFormatter) PrintSubjects(subjects []model.Subject) {
	if len(subjects) == 0 {
		c.f.Println("No subjects.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        NAME            HOURS"))
	for _, s := range subjects {
		c.f.Printf("%-9s %-15s %.1f\n", c.styleID.Render(shortID(s.ID)), s.Name, s.TotalHours)
	}
}

// PrintStudySessions renders a session listing with resolved subject
// names; a dangling subject id falls back to the raw id.
func (c *CLIFormatter) PrintStudySessions(sessions []model.StudySession, subjectName func(id string) string) {
	if len(sessions) == 0 {
		c.f.Println("No study sessions.")
		return
	}
	c.f.Println(c.styleHeader.Render("ID        DATE        SUBJECT         DURATION  NOTE"))
	for _, s := range sessions {
		c.f.Printf("%-9s %s  %-15s %-9s %s\n",
			c.styleID.Render(shortID(s.ID)), FormatDate(s.Date),
			subjectName(s.SubjectID), FormatMinutes(s.DurationMin), s.Description)
	}
}
