// Package seed generates the mock data every process starts from. The
// shapes mirror real usage for the two known profiles; numeric fields
// are jittered so each run looks freshly lived-in. Nothing here is
// persisted.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lifeos-app/lifeos/internal/appdata"
	"github.com/lifeos-app/lifeos/internal/model"
)

// UserJoao and UserMyrrena are the two hardcoded profile identities.
const (
	UserJoao    = "João"
	UserMyrrena = "Myrrena"
)

// Profiles returns the two known user profiles.
func Profiles() []model.UserProfile {
	return []model.UserProfile{
		{
			Name:   UserJoao,
			Email:  "joao@lifeos.com",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=João&backgroundColor=b6e3f4",
			Color:  "#3b82f6",
		},
		{
			Name:   UserMyrrena,
			Email:  "myrrena@lifeos.com",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Myrrena&backgroundColor=ffd5dc",
			Color:  "#ec4899",
		},
	}
}

// Data builds a full application data set for both profiles.
func Data() appdata.State {
	state := appdata.State{}
	for _, user := range []string{UserJoao, UserMyrrena} {
		seedUser(&state, user)
	}
	return state
}

func daysAgo(n int) time.Time  { return time.Now().AddDate(0, 0, -n) }
func daysAhead(n int) time.Time { return time.Now().AddDate(0, 0, n) }

// jitter returns base +/- up to spread.
func jitter(base, spread float64) float64 {
	return base + (rand.Float64()*2-1)*spread
}

func seedUser(state *appdata.State, user string) {
	statuses := []model.TaskStatus{model.TaskPending, model.TaskInProgress, model.TaskDone}
	priorities := []model.TaskPriority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}
	taskTitles := []string{
		"Client meeting", "Send monthly report", "Buy groceries",
		"Schedule doctor appointment", "Pay utility bills", "Read book chapter",
	}
	for i, title := range taskTitles {
		t := model.NewTask(title, statuses[i%len(statuses)], priorities[i%len(priorities)], daysAhead(1+i), user)
		t.CreatedAt = daysAgo(1 + i)
		state.Tasks = append(state.Tasks, t)
	}

	checking := model.NewAccount("Checking", "Nubank", jitter(4500, 1500), "#8b5cf6", user)
	savings := model.NewAccount("Savings", "Itaú", jitter(12000, 4000), "#f59e0b", user)
	state.Accounts = append(state.Accounts, checking, savings)

	incomes := []struct {
		desc     string
		amount   float64
		category model.TransactionCategory
	}{
		{"Monthly salary", jitter(5200, 400), model.CategorySalary},
		{"Freelance project", jitter(1200, 600), model.CategoryFreelance},
	}
	for i, in := range incomes {
		state.Transactions = append(state.Transactions,
			model.NewTransaction(in.desc, in.amount, model.TransactionIncome, in.category, daysAgo(3+7*i), checking.ID, user))
	}
	expenses := []struct {
		desc     string
		amount   float64
		category model.TransactionCategory
	}{
		{"Supermarket", jitter(420, 120), model.CategoryFood},
		{"Rent", jitter(1800, 100), model.CategoryHousing},
		{"Bus pass", jitter(180, 40), model.CategoryTransport},
		{"Cinema night", jitter(90, 40), model.CategoryLeisure},
		{"Pharmacy", jitter(130, 60), model.CategoryHealth},
		{"Online course", jitter(250, 100), model.CategoryEducation},
	}
	for i, ex := range expenses {
		state.Transactions = append(state.Transactions,
			model.NewTransaction(ex.desc, ex.amount, model.TransactionExpense, ex.category, daysAgo(1+4*i), checking.ID, user))
	}

	state.FinancialGoals = append(state.FinancialGoals,
		model.NewFinancialGoal("Emergency fund", 15000, jitter(7000, 2500), daysAhead(180), "#10b981", user),
		model.NewFinancialGoal("Vacation trip", 6000, jitter(2000, 1000), daysAhead(90), "#3b82f6", user),
	)

	mealPlans := []struct {
		name     string
		calories int
		mealType model.MealType
	}{
		{"Oatmeal with fruit", 320, model.MealBreakfast},
		{"Grilled chicken and rice", 620, model.MealLunch},
		{"Salmon with vegetables", 540, model.MealDinner},
		{"Protein shake", 180, model.MealSnack},
	}
	for day := 0; day < 3; day++ {
		for _, plan := range mealPlans {
			cal := plan.calories + rand.Intn(80)
			state.Meals = append(state.Meals,
				model.NewMeal(plan.name, cal, cal/5, cal/4, cal/12, daysAgo(day), plan.mealType, user))
		}
	}

	for i, name := range []string{"Push day", "Pull day", "Leg day"} {
		exercises := []model.Exercise{
			model.NewExercise("Bench press", 4, 8+rand.Intn(4), jitter(60, 10)),
			model.NewExercise("Squat", 4, 8+rand.Intn(4), jitter(80, 15)),
			model.NewExercise("Plank", 3, 1, 0),
		}
		state.Workouts = append(state.Workouts,
			model.NewWorkout(name, exercises, daysAgo(1+2*i), 45+rand.Intn(30), user))
	}

	for week := 0; week < 4; week++ {
		m := model.NewBodyMeasurement(daysAgo(7*week), jitter(74, 2), user)
		m.BodyFat = jitter(18, 2)
		m.Waist = jitter(82, 3)
		state.Measurements = append(state.Measurements, m)
	}

	state.FitnessGoals = append(state.FitnessGoals,
		model.NewFitnessGoal(model.FitnessGoalWeight, 70, jitter(74, 2), "kg", user),
		model.NewFitnessGoal(model.FitnessGoalCalories, 2200, jitter(1900, 300), "kcal", user),
		model.NewFitnessGoal(model.FitnessGoalWorkouts, 4, float64(rand.Intn(4)), "sessions/week", user),
	)

	subjects := []struct {
		name  string
		color string
		icon  string
	}{
		{"Mathematics", "#3b82f6", "calculator"},
		{"English", "#10b981", "languages"},
		{"Programming", "#8b5cf6", "code"},
	}
	for _, def := range subjects {
		sub := model.NewSubject(def.name, def.color, def.icon, user)
		sub.TotalHours = jitter(24, 10)
		state.Subjects = append(state.Subjects, sub)

		for i := 0; i < 3; i++ {
			state.StudySessions = append(state.StudySessions,
				model.NewStudySession(sub.ID, 30+rand.Intn(90), daysAgo(rand.Intn(7)),
					fmt.Sprintf("%s review", def.name), user))
		}
	}
}
