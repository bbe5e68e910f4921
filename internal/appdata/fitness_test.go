package appdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
)

func TestAddMeal(t *testing.T) {
	s := New(State{})

	created, err := s.AddMeal(model.Meal{
		Name:     "Oatmeal",
		Calories: 320,
		Protein:  12,
		Date:     time.Now(),
		MealType: model.MealBreakfast,
		User:     "João",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	meals := s.MealsByUser("João")
	require.Len(t, meals, 1)
	assert.Equal(t, "Oatmeal", meals[0].Name)
}

func TestAddMealValidation(t *testing.T) {
	s := New(State{})

	_, err := s.AddMeal(model.Meal{Name: "", MealType: model.MealLunch, User: "João"})
	assert.Error(t, err)

	_, err = s.AddMeal(model.Meal{Name: "x", MealType: "brunch", User: "João"})
	assert.ErrorIs(t, err, errors.ErrInvalidMealType)
}

func TestMealsByDate(t *testing.T) {
	s := New(State{})
	today := time.Date(2026, 8, 28, 9, 30, 0, 0, time.Local)
	lateToday := time.Date(2026, 8, 28, 23, 59, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	_, err := s.AddMeal(model.Meal{Name: "Breakfast", MealType: model.MealBreakfast, Date: today, User: "João"})
	require.NoError(t, err)
	_, err = s.AddMeal(model.Meal{Name: "Supper", MealType: model.MealDinner, Date: lateToday, User: "João"})
	require.NoError(t, err)
	_, err = s.AddMeal(model.Meal{Name: "Old", MealType: model.MealLunch, Date: yesterday, User: "João"})
	require.NoError(t, err)
	_, err = s.AddMeal(model.Meal{Name: "Hers", MealType: model.MealLunch, Date: today, User: "Myrrena"})
	require.NoError(t, err)

	meals := s.MealsByDate("João", time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local))
	require.Len(t, meals, 2)
	assert.Equal(t, "Breakfast", meals[0].Name)
	assert.Equal(t, "Supper", meals[1].Name)
}

func TestUpdateMeal(t *testing.T) {
	s := New(State{})
	created, err := s.AddMeal(model.Meal{Name: "Oatmeal", Calories: 320, MealType: model.MealBreakfast, User: "João"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateMeal(created.ID, store.Partial{"calories": 350, "meal_type": "snack"}))
	meals := s.MealsByUser("João")
	require.Len(t, meals, 1)
	assert.Equal(t, 350, meals[0].Calories)
	assert.Equal(t, model.MealSnack, meals[0].MealType)

	assert.ErrorIs(t, s.UpdateMeal(created.ID, store.Partial{"meal_type": "brunch"}), errors.ErrInvalidMealType)
	assert.Error(t, s.UpdateMeal(created.ID, store.Partial{"name": " "}))

	// Unknown id is a silent no-op.
	require.NoError(t, s.UpdateMeal("nope", store.Partial{"calories": 1}))
}

func TestAddWorkoutGeneratesExerciseIDs(t *testing.T) {
	s := New(State{})

	created, err := s.AddWorkout(model.Workout{
		Name: "Leg day",
		Exercises: []model.Exercise{
			{Name: "Squat", Sets: 4, Reps: 8, Weight: 80},
			{ID: "keep-me", Name: "Lunge", Sets: 3, Reps: 12},
		},
		Date:        time.Now(),
		DurationMin: 60,
		User:        "João",
	})
	require.NoError(t, err)

	require.Len(t, created.Exercises, 2)
	assert.NotEmpty(t, created.Exercises[0].ID)
	assert.Equal(t, "keep-me", created.Exercises[1].ID)

	workouts := s.WorkoutsByUser("João")
	require.Len(t, workouts, 1)
	assert.Equal(t, created.ID, workouts[0].ID)
}

func TestUpdateWorkout(t *testing.T) {
	s := New(State{})
	created, err := s.AddWorkout(model.Workout{Name: "Leg day", DurationMin: 60, User: "João"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateWorkout(created.ID, store.Partial{"duration_min": 75}))
	assert.Equal(t, 75, s.WorkoutsByUser("João")[0].DurationMin)

	assert.Error(t, s.UpdateWorkout(created.ID, store.Partial{"name": ""}))
}

func TestAddMeasurement(t *testing.T) {
	s := New(State{})

	created, err := s.AddMeasurement(model.BodyMeasurement{
		Date:    time.Now(),
		Weight:  82.5,
		BodyFat: 18.2,
		Waist:   84,
		User:    "João",
	})
	require.NoError(t, err)
	assert.Equal(t, 82.5, created.Weight)
	assert.Equal(t, 18.2, created.BodyFat)
	assert.Equal(t, 84.0, created.Waist)
	assert.Zero(t, created.Chest)

	_, err = s.AddMeasurement(model.BodyMeasurement{Weight: 0, User: "João"})
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
}

func TestUpdateMeasurement(t *testing.T) {
	s := New(State{})
	created, err := s.AddMeasurement(model.BodyMeasurement{Date: time.Now(), Weight: 82.5, User: "João"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateMeasurement(created.ID, store.Partial{"weight": 81.9}))
	assert.Equal(t, 81.9, s.MeasurementsByUser("João")[0].Weight)

	assert.ErrorIs(t, s.UpdateMeasurement(created.ID, store.Partial{"weight": 0.0}), errors.ErrInvalidAmount)
}

func TestFitnessGoals(t *testing.T) {
	s := New(State{})

	created, err := s.AddFitnessGoal(model.FitnessGoal{
		Type: model.FitnessGoalWeight, Target: 78, Current: 82.5, Unit: "kg", User: "João",
	})
	require.NoError(t, err)

	goals := s.FitnessGoalsByUser("João")
	require.Len(t, goals, 1)
	assert.Equal(t, model.FitnessGoalWeight, goals[0].Type)

	s.DeleteFitnessGoal(created.ID)
	assert.Empty(t, s.FitnessGoalsByUser("João"))
}
