package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos/internal/appdata"
	"github.com/lifeos-app/lifeos/internal/model"
)

func buildData(t *testing.T, now time.Time) *appdata.Store {
	t.Helper()
	s := appdata.New(appdata.State{})

	_, err := s.AddTask(model.Task{Title: "open high", Status: model.TaskPending, Priority: model.PriorityHigh, User: "João"})
	require.NoError(t, err)
	_, err = s.AddTask(model.Task{Title: "open low", Status: model.TaskInProgress, Priority: model.PriorityLow, User: "João"})
	require.NoError(t, err)
	_, err = s.AddTask(model.Task{Title: "closed", Status: model.TaskDone, Priority: model.PriorityHigh, User: "João"})
	require.NoError(t, err)
	_, err = s.AddTask(model.Task{Title: "hers", Status: model.TaskPending, Priority: model.PriorityHigh, User: "Myrrena"})
	require.NoError(t, err)

	account, err := s.AddAccount(model.Account{Name: "Checking", Balance: 4200, User: "João"})
	require.NoError(t, err)
	other, err := s.AddAccount(model.Account{Name: "Savings", Balance: 800, User: "João"})
	require.NoError(t, err)

	_, err = s.AddTransaction(model.Transaction{
		Description: "Salary", Amount: 5000, Type: model.TransactionIncome,
		Category: model.CategorySalary, Date: now.AddDate(0, 0, -5),
		AccountID: account.ID, User: "João",
	})
	require.NoError(t, err)
	_, err = s.AddTransaction(model.Transaction{
		Description: "Rent", Amount: 1800, Type: model.TransactionExpense,
		Category: model.CategoryHousing, Date: now.AddDate(0, 0, -3),
		AccountID: account.ID, User: "João",
	})
	require.NoError(t, err)
	_, err = s.AddTransaction(model.Transaction{
		Description: "Cinema", Amount: 80, Type: model.TransactionExpense,
		Category: model.CategoryLeisure, Date: now.AddDate(0, 0, -2),
		AccountID: other.ID, User: "João",
	})
	require.NoError(t, err)
	// Outside the 30-day window: kept in the category breakdown but
	// excluded from the monthly totals.
	_, err = s.AddTransaction(model.Transaction{
		Description: "Old rent", Amount: 1800, Type: model.TransactionExpense,
		Category: model.CategoryHousing, Date: now.AddDate(0, 0, -45),
		AccountID: account.ID, User: "João",
	})
	require.NoError(t, err)

	_, err = s.AddMeal(model.Meal{Name: "Oatmeal", Calories: 320, Protein: 12, Date: now, MealType: model.MealBreakfast, User: "João"})
	require.NoError(t, err)
	_, err = s.AddMeal(model.Meal{Name: "Chicken", Calories: 600, Protein: 45, Date: now, MealType: model.MealLunch, User: "João"})
	require.NoError(t, err)
	_, err = s.AddMeal(model.Meal{Name: "Yesterday", Calories: 900, Protein: 30, Date: now.AddDate(0, 0, -1), MealType: model.MealDinner, User: "João"})
	require.NoError(t, err)

	subject, err := s.AddSubject(model.Subject{Name: "Mathematics", User: "João"})
	require.NoError(t, err)
	_, err = s.AddStudySession(model.StudySession{SubjectID: subject.ID, DurationMin: 120, Date: now, User: "João"})
	require.NoError(t, err)
	_, err = s.AddStudySession(model.StudySession{SubjectID: subject.ID, DurationMin: 90, Date: now.AddDate(0, 0, -14), User: "João"})
	require.NoError(t, err)

	return s
}

func TestCompute(t *testing.T) {
	// A Wednesday: the week window opens the preceding Sunday.
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	sum := Compute(buildData(t, now), "João", now)

	assert.Equal(t, 2, sum.PendingTasks)
	assert.Equal(t, 1, sum.CompletedTasks)
	assert.Equal(t, 1, sum.HighPriorityOpen)

	assert.Equal(t, 5000.0, sum.TotalBalance)
	assert.Equal(t, 5000.0, sum.MonthlyIncome)
	assert.Equal(t, 1880.0, sum.MonthlyExpense)
	assert.Equal(t, 3600.0, sum.ExpenseByCategory[model.CategoryHousing])
	assert.Equal(t, 80.0, sum.ExpenseByCategory[model.CategoryLeisure])

	assert.Equal(t, 920, sum.TodayCalories)
	assert.Equal(t, 57, sum.TodayProtein)

	// Only the session inside this week counts.
	assert.InDelta(t, 2.0, sum.WeeklyStudyHours, 1e-9)
}

func TestComputeScopesToUser(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	sum := Compute(buildData(t, now), "Myrrena", now)

	assert.Equal(t, 1, sum.PendingTasks)
	assert.Zero(t, sum.TotalBalance)
	assert.Zero(t, sum.TodayCalories)
	assert.Zero(t, sum.WeeklyStudyHours)
}

func TestGenerate(t *testing.T) {
	insights := Generate(Summary{
		PendingTasks:     5,
		HighPriorityOpen: 2,
		MonthlyIncome:    5000,
		MonthlyExpense:   4500,
		TodayCalories:    1500,
		WeeklyStudyHours: 4,
	})

	require.Len(t, insights, 4)
	assert.Equal(t, "Tasks", insights[0].Category)
	assert.Contains(t, insights[0].Message, "5 pending tasks")

	// Expense over 80% of income trips the leisure warning.
	assert.Contains(t, insights[1].Suggestion, "cutting back on leisure")
	assert.Contains(t, insights[1].Message, "positive")

	assert.Contains(t, insights[2].Suggestion, "protein")
	assert.Contains(t, insights[3].Suggestion, "15 hours")
}

func TestGenerateHealthyThresholds(t *testing.T) {
	insights := Generate(Summary{
		MonthlyIncome:    5000,
		MonthlyExpense:   2000,
		TodayCalories:    2400,
		WeeklyStudyHours: 12,
	})

	require.Len(t, insights, 4)
	assert.Contains(t, insights[1].Suggestion, "saving well")
	assert.Contains(t, insights[2].Suggestion, "balance with exercise")
	assert.Contains(t, insights[3].Suggestion, "Excellent dedication")
}

func TestGenerateNegativeBalance(t *testing.T) {
	insights := Generate(Summary{MonthlyIncome: 1000, MonthlyExpense: 1200})
	assert.Contains(t, insights[1].Message, "negative")
}
