package model

import (
	"time"

	"github.com/google/uuid"
)

// MealType is when a meal was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether m is a known meal type.
func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is one logged meal with its macros.
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fat      int       `json:"fat"`
	Date     time.Time `json:"date"`
	MealType MealType  `json:"meal_type"`
	User     string    `json:"user"`
}

// NewMeal creates a meal with a generated id.
func NewMeal(name string, calories, protein, carbs, fat int, date time.Time, mealType MealType, user string) Meal {
	return Meal{
		ID:       uuid.NewString(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Date:     date,
		MealType: mealType,
		User:     user,
	}
}

// Exercise is one entry in a workout's ordered exercise list.
type Exercise struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight,omitempty"`
}

// NewExercise creates an exercise with a generated id.
func NewExercise(name string, sets, reps int, weight float64) Exercise {
	return Exercise{
		ID:     uuid.NewString(),
		Name:   name,
		Sets:   sets,
		Reps:   reps,
		Weight: weight,
	}
}

// Workout is one training session.
type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Exercises   []Exercise `json:"exercises"`
	Date        time.Time  `json:"date"`
	DurationMin int        `json:"duration_min"`
	User        string     `json:"user"`
}

// NewWorkout creates a workout with a generated id.
func NewWorkout(name string, exercises []Exercise, date time.Time, durationMin int, user string) Workout {
	return Workout{
		ID:          uuid.NewString(),
		Name:        name,
		Exercises:   exercises,
		Date:        date,
		DurationMin: durationMin,
		User:        user,
	}
}

// BodyMeasurement is a dated set of body metrics. Weight is required,
// everything else optional.
type BodyMeasurement struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight"`
	BodyFat float64   `json:"body_fat,omitempty"`
	Chest   float64   `json:"chest,omitempty"`
	Waist   float64   `json:"waist,omitempty"`
	Arms    float64   `json:"arms,omitempty"`
	Legs    float64   `json:"legs,omitempty"`
	User    string    `json:"user"`
}

// NewBodyMeasurement creates a measurement with a generated id.
func NewBodyMeasurement(date time.Time, weight float64, user string) BodyMeasurement {
	return BodyMeasurement{
		ID:     uuid.NewString(),
		Date:   date,
		Weight: weight,
		User:   user,
	}
}

// FitnessGoalType is what a fitness goal measures.
type FitnessGoalType string

const (
	FitnessGoalWeight   FitnessGoalType = "weight"
	FitnessGoalCalories FitnessGoalType = "calories"
	FitnessGoalWorkouts FitnessGoalType = "workouts"
)

// FitnessGoal tracks progress toward a fitness target.
type FitnessGoal struct {
	ID      string          `json:"id"`
	Type    FitnessGoalType `json:"type"`
	Target  float64         `json:"target"`
	Current float64         `json:"current"`
	Unit    string          `json:"unit"`
	User    string          `json:"user"`
}

// NewFitnessGoal creates a fitness goal with a generated id.
func NewFitnessGoal(goalType FitnessGoalType, target, current float64, unit, user string) FitnessGoal {
	return FitnessGoal{
		ID:      uuid.NewString(),
		Type:    goalType,
		Target:  target,
		Current: current,
		Unit:    unit,
		User:    user,
	}
}
