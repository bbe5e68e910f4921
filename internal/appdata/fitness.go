package appdata

import (
	"time"

	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
	"github.com/lifeos-app/lifeos/internal/validate"
)

// AddMeal validates and appends a meal.
func (s *Store) AddMeal(m model.Meal) (model.Meal, error) {
	if err := validate.Name(m.Name); err != nil {
		return model.Meal{}, err
	}
	if err := validate.MealType(m.MealType); err != nil {
		return model.Meal{}, err
	}

	created := model.NewMeal(m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, m.Date, m.MealType, m.User)
	s.Update(func(cur State) State {
		cur.Meals = append(append([]model.Meal{}, cur.Meals...), created)
		return cur
	})
	return created, nil
}

// UpdateMeal merges partial fields into the matching meal. An unknown
// id is a silent no-op; invalid field values are rejected.
func (s *Store) UpdateMeal(id string, partial store.Partial) error {
	if v, ok := partial["name"]; ok {
		name, _ := v.(string)
		if err := validate.Name(name); err != nil {
			return err
		}
	}
	if v, ok := partial["meal_type"]; ok {
		mealType, _ := v.(string)
		if err := validate.MealType(model.MealType(mealType)); err != nil {
			return err
		}
	}

	s.Update(func(cur State) State {
		cur.Meals, _ = replaceByID(cur.Meals, id, mealID, func(m model.Meal) model.Meal {
			return applyPartial(m, partial)
		})
		return cur
	})
	return nil
}

// DeleteMeal removes the matching meal.
func (s *Store) DeleteMeal(id string) {
	s.Update(func(cur State) State {
		cur.Meals = removeByID(cur.Meals, id, mealID)
		return cur
	})
}

// MealsByUser returns the user's meals in insertion order.
func (s *Store) MealsByUser(user string) []model.Meal {
	return filterByUser(s.Get().Meals, user, func(m model.Meal) string { return m.User })
}

// MealsByDate returns the user's meals logged on the same calendar day
// as date.
func (s *Store) MealsByDate(user string, date time.Time) []model.Meal {
	out := make([]model.Meal, 0)
	for _, m := range s.Get().Meals {
		if m.User == user && sameDay(m.Date, date) {
			out = append(out, m)
		}
	}
	return out
}

// AddWorkout validates and appends a workout. Exercises without an id
// get one generated.
func (s *Store) AddWorkout(w model.Workout) (model.Workout, error) {
	if err := validate.Name(w.Name); err != nil {
		return model.Workout{}, err
	}

	exercises := make([]model.Exercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		if ex.ID == "" {
			exercises[i] = model.NewExercise(ex.Name, ex.Sets, ex.Reps, ex.Weight)
		} else {
			exercises[i] = ex
		}
	}

	created := model.NewWorkout(w.Name, exercises, w.Date, w.DurationMin, w.User)
	s.Update(func(cur State) State {
		cur.Workouts = append(append([]model.Workout{}, cur.Workouts...), created)
		return cur
	})
	return created, nil
}

// UpdateWorkout merges partial fields into the matching workout.
// Exercises replace wholesale when the partial carries them.
func (s *Store) UpdateWorkout(id string, partial store.Partial) error {
	if v, ok := partial["name"]; ok {
		name, _ := v.(string)
		if err := validate.Name(name); err != nil {
			return err
		}
	}

	s.Update(func(cur State) State {
		cur.Workouts, _ = replaceByID(cur.Workouts, id, workoutID, func(w model.Workout) model.Workout {
			return applyPartial(w, partial)
		})
		return cur
	})
	return nil
}

// DeleteWorkout removes the matching workout.
func (s *Store) DeleteWorkout(id string) {
	s.Update(func(cur State) State {
		cur.Workouts = removeByID(cur.Workouts, id, workoutID)
		return cur
	})
}

// WorkoutsByUser returns the user's workouts in insertion order.
func (s *Store) WorkoutsByUser(user string) []model.Workout {
	return filterByUser(s.Get().Workouts, user, func(w model.Workout) string { return w.User })
}

// AddMeasurement appends a body measurement. Weight is required.
func (s *Store) AddMeasurement(m model.BodyMeasurement) (model.BodyMeasurement, error) {
	if err := validate.Amount(m.Weight); err != nil {
		return model.BodyMeasurement{}, err
	}

	created := model.NewBodyMeasurement(m.Date, m.Weight, m.User)
	created.BodyFat = m.BodyFat
	created.Chest = m.Chest
	created.Waist = m.Waist
	created.Arms = m.Arms
	created.Legs = m.Legs

	s.Update(func(cur State) State {
		cur.Measurements = append(append([]model.BodyMeasurement{}, cur.Measurements...), created)
		return cur
	})
	return created, nil
}

// UpdateMeasurement merges partial fields into the matching
// measurement. Weight stays required.
func (s *Store) UpdateMeasurement(id string, partial store.Partial) error {
	if v, ok := partial["weight"]; ok {
		weight, _ := v.(float64)
		if err := validate.Amount(weight); err != nil {
			return err
		}
	}

	s.Update(func(cur State) State {
		cur.Measurements, _ = replaceByID(cur.Measurements, id, measurementID, func(m model.BodyMeasurement) model.BodyMeasurement {
			return applyPartial(m, partial)
		})
		return cur
	})
	return nil
}

// DeleteMeasurement removes the matching measurement.
func (s *Store) DeleteMeasurement(id string) {
	s.Update(func(cur State) State {
		cur.Measurements = removeByID(cur.Measurements, id, measurementID)
		return cur
	})
}

// MeasurementsByUser returns the user's measurements in insertion order.
func (s *Store) MeasurementsByUser(user string) []model.BodyMeasurement {
	return filterByUser(s.Get().Measurements, user, func(m model.BodyMeasurement) string { return m.User })
}

// AddFitnessGoal appends a fitness goal.
func (s *Store) AddFitnessGoal(g model.FitnessGoal) (model.FitnessGoal, error) {
	if err := validate.Amount(g.Target); err != nil {
		return model.FitnessGoal{}, err
	}

	created := model.NewFitnessGoal(g.Type, g.Target, g.Current, g.Unit, g.User)
	s.Update(func(cur State) State {
		cur.FitnessGoals = append(append([]model.FitnessGoal{}, cur.FitnessGoals...), created)
		return cur
	})
	return created, nil
}

// UpdateFitnessGoal merges partial fields into the matching goal.
func (s *Store) UpdateFitnessGoal(id string, partial store.Partial) error {
	s.Update(func(cur State) State {
		cur.FitnessGoals, _ = replaceByID(cur.FitnessGoals, id, fitnessGoalID, func(g model.FitnessGoal) model.FitnessGoal {
			return applyPartial(g, partial)
		})
		return cur
	})
	return nil
}

// DeleteFitnessGoal removes the matching goal.
func (s *Store) DeleteFitnessGoal(id string) {
	s.Update(func(cur State) State {
		cur.FitnessGoals = removeByID(cur.FitnessGoals, id, fitnessGoalID)
		return cur
	})
}

// FitnessGoalsByUser returns the user's fitness goals in insertion order.
func (s *Store) FitnessGoalsByUser(user string) []model.FitnessGoal {
	return filterByUser(s.Get().FitnessGoals, user, func(g model.FitnessGoal) string { return g.User })
}

func mealID(m model.Meal) string                 { return m.ID }
func workoutID(w model.Workout) string           { return w.ID }
func measurementID(m model.BodyMeasurement) string { return m.ID }
func fitnessGoalID(g model.FitnessGoal) string   { return g.ID }
