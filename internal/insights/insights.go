// Package insights computes the dashboard aggregates and renders the
// templated insight messages over them. The "analysis" is static text
// selected by thresholds; there is no model behind it.
package insights

import (
	"fmt"
	"time"

	"github.com/lifeos-app/lifeos/internal/appdata"
	"github.com/lifeos-app/lifeos/internal/model"
)

// Summary holds the aggregates the dashboard shows.
type Summary struct {
	PendingTasks      int
	CompletedTasks    int
	HighPriorityOpen  int
	TotalBalance      float64
	MonthlyIncome     float64
	MonthlyExpense    float64
	TodayCalories     int
	TodayProtein      int
	WeeklyStudyHours  float64
	ExpenseByCategory map[model.TransactionCategory]float64
}

// Insight is one templated observation with a follow-up suggestion.
type Insight struct {
	Category   string `json:"category"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// Compute builds the summary for one user as of now.
func Compute(data *appdata.Store, user string, now time.Time) Summary {
	sum := Summary{ExpenseByCategory: map[model.TransactionCategory]float64{}}

	for _, t := range data.TasksByUser(user) {
		if t.Status == model.TaskDone {
			sum.CompletedTasks++
			continue
		}
		sum.PendingTasks++
		if t.Priority == model.PriorityHigh {
			sum.HighPriorityOpen++
		}
	}

	for _, a := range data.AccountsByUser(user) {
		sum.TotalBalance += a.Balance
	}

	monthAgo := now.AddDate(0, 0, -30)
	for _, tx := range data.TransactionsByUser(user) {
		if tx.Type == model.TransactionExpense {
			sum.ExpenseByCategory[tx.Category] += tx.Amount
		}
		if tx.Date.Before(monthAgo) {
			continue
		}
		switch tx.Type {
		case model.TransactionIncome:
			sum.MonthlyIncome += tx.Amount
		case model.TransactionExpense:
			sum.MonthlyExpense += tx.Amount
		}
	}

	for _, m := range data.MealsByDate(user, now) {
		sum.TodayCalories += m.Calories
		sum.TodayProtein += m.Protein
	}

	weekStart := startOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	minutes := 0
	for _, session := range data.StudySessionsByUser(user) {
		if !session.Date.Before(weekStart) && session.Date.Before(weekEnd) {
			minutes += session.DurationMin
		}
	}
	sum.WeeklyStudyHours = float64(minutes) / 60

	return sum
}

// Generate renders the four insight entries from a summary.
func Generate(sum Summary) []Insight {
	out := make([]Insight, 0, 4)

	out = append(out, Insight{
		Category: "Tasks",
		Message: fmt.Sprintf("You have %d pending tasks. Prioritize the %d high-priority ones.",
			sum.PendingTasks, sum.HighPriorityOpen),
		Suggestion: "Try to finish 2 tasks today to shrink the backlog.",
	})

	balance := "positive"
	if sum.MonthlyIncome <= sum.MonthlyExpense {
		balance = "negative"
	}
	financeSuggestion := "Keep it up! You are saving well."
	if sum.MonthlyExpense > sum.MonthlyIncome*0.8 {
		financeSuggestion = "Consider cutting back on leisure spending."
	}
	out = append(out, Insight{
		Category:   "Finance",
		Message:    fmt.Sprintf("Your balance is %s this month.", balance),
		Suggestion: financeSuggestion,
	})

	fitnessSuggestion := "Keep the balance with exercise."
	if sum.TodayCalories < 2000 {
		fitnessSuggestion = "Increase protein intake to hit your target."
	}
	out = append(out, Insight{
		Category:   "Fitness",
		Message:    fmt.Sprintf("You consumed %d calories today.", sum.TodayCalories),
		Suggestion: fitnessSuggestion,
	})

	studySuggestion := "Excellent dedication!"
	if sum.WeeklyStudyHours < 10 {
		studySuggestion = "Try to push toward 15 hours a week."
	}
	out = append(out, Insight{
		Category:   "Study",
		Message:    fmt.Sprintf("You studied %.1f hours this week.", sum.WeeklyStudyHours),
		Suggestion: studySuggestion,
	})

	return out
}

func startOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -weekday)
}
