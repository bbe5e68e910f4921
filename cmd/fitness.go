package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/parser"
)

// mealCmd represents the meal command.
var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"meals"},
	Short:   "Log meals",
	RunE:    runMealList,
}

var (
	mealAddFlagType    string
	mealAddFlagProtein int
	mealAddFlagCarbs   int
	mealAddFlagFat     int
	mealAddFlagDate    string
	mealListFlagToday  bool
)

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for the active user",
	RunE:  runMealList,
}

var mealAddCmd = &cobra.Command{
	Use:   "add NAME CALORIES",
	Short: "Log a meal",
	Args:  cobra.ExactArgs(2),
	RunE:  runMealAdd,
}

var mealRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a meal",
	Args:  cobra.ExactArgs(1),
	RunE:  runMealRm,
}

// workoutCmd represents the workout command.
var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"workouts"},
	Short:   "Log workouts",
	RunE:    runWorkoutList,
}

var (
	workoutAddFlagDuration int
	workoutAddFlagDate     string
	workoutAddFlagExercise []string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for the active user",
	RunE:  runWorkoutList,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Log a workout",
	Long: `Log a workout. Exercises are given as repeated --exercise flags in
NAME:SETSxREPS[@WEIGHT] form, e.g. --exercise "Squat:4x8@80".`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkoutAdd,
}

var workoutRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkoutRm,
}

// measureCmd represents the body measurement command.
var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"measurements"},
	Short:   "Log body measurements",
	RunE:    runMeasureList,
}

var (
	measureAddFlagBodyFat float64
	measureAddFlagWaist   float64
	measureAddFlagChest   float64
	measureAddFlagArms    float64
	measureAddFlagLegs    float64
	measureAddFlagDate    string
)

var measureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List measurements for the active user",
	RunE:  runMeasureList,
}

var measureAddCmd = &cobra.Command{
	Use:   "add WEIGHT",
	Short: "Log a body measurement",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeasureAdd,
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealAddFlagType, "meal-type", "t", "snack", "Meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().IntVar(&mealAddFlagProtein, "protein", 0, "Protein grams")
	mealAddCmd.Flags().IntVar(&mealAddFlagCarbs, "carbs", 0, "Carb grams")
	mealAddCmd.Flags().IntVar(&mealAddFlagFat, "fat", 0, "Fat grams")
	mealAddCmd.Flags().StringVar(&mealAddFlagDate, "date", "", "Date (natural language)")
	mealListCmd.Flags().BoolVar(&mealListFlagToday, "today", false, "Only today's meals")

	workoutAddCmd.Flags().IntVarP(&workoutAddFlagDuration, "duration", "d", 60, "Duration in minutes")
	workoutAddCmd.Flags().StringVar(&workoutAddFlagDate, "date", "", "Date (natural language)")
	workoutAddCmd.Flags().StringArrayVarP(&workoutAddFlagExercise, "exercise", "e", nil, "Exercise as NAME:SETSxREPS[@WEIGHT]")

	measureAddCmd.Flags().Float64Var(&measureAddFlagBodyFat, "body-fat", 0, "Body fat percent")
	measureAddCmd.Flags().Float64Var(&measureAddFlagWaist, "waist", 0, "Waist (cm)")
	measureAddCmd.Flags().Float64Var(&measureAddFlagChest, "chest", 0, "Chest (cm)")
	measureAddCmd.Flags().Float64Var(&measureAddFlagArms, "arms", 0, "Arms (cm)")
	measureAddCmd.Flags().Float64Var(&measureAddFlagLegs, "legs", 0, "Legs (cm)")
	measureAddCmd.Flags().StringVar(&measureAddFlagDate, "date", "", "Date (natural language)")

	mealCmd.AddCommand(mealListCmd, mealAddCmd, mealRmCmd)
	workoutCmd.AddCommand(workoutListCmd, workoutAddCmd, workoutRmCmd)
	measureCmd.AddCommand(measureListCmd, measureAddCmd)
	rootCmd.AddCommand(mealCmd, workoutCmd, measureCmd)
}

func runMealList(cmd *cobra.Command, args []string) error {
	user := ctx.Prefs.CurrentUser()
	var meals []model.Meal
	if mealListFlagToday {
		meals = ctx.Data.MealsByDate(user, timeNow())
	} else {
		meals = ctx.Data.MealsByUser(user)
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(meals)
	}
	ctx.CLIFormatter().PrintMeals(meals)
	return nil
}

func runMealAdd(cmd *cobra.Command, args []string) error {
	calories, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewUserErrorWithField("calories", args[1],
			"Invalid calorie count", "Provide a whole number")
	}
	date, err := parser.ParseDate(mealAddFlagDate)
	if err != nil {
		return err
	}

	created, err := ctx.Data.AddMeal(model.Meal{
		Name:     args[0],
		Calories: calories,
		Protein:  mealAddFlagProtein,
		Carbs:    mealAddFlagCarbs,
		Fat:      mealAddFlagFat,
		Date:     date,
		MealType: model.MealType(mealAddFlagType),
		User:     ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Logged meal %s: %s (%d kcal)\n", created.ID[:8], created.Name, created.Calories)
	return nil
}

func runMealRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteMeal(resolveID(args[0], func() []string {
		meals := ctx.Data.MealsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(meals))
		for i, m := range meals {
			ids[i] = m.ID
		}
		return ids
	}))
	ctx.Formatter.Println("Deleted.")
	return nil
}

func runWorkoutList(cmd *cobra.Command, args []string) error {
	workouts := ctx.Data.WorkoutsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(workouts)
	}
	ctx.CLIFormatter().PrintWorkouts(workouts)
	return nil
}

func runWorkoutAdd(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseDate(workoutAddFlagDate)
	if err != nil {
		return err
	}
	exercises := make([]model.Exercise, 0, len(workoutAddFlagExercise))
	for _, spec := range workoutAddFlagExercise {
		ex, err := parseExercise(spec)
		if err != nil {
			return err
		}
		exercises = append(exercises, ex)
	}

	created, err := ctx.Data.AddWorkout(model.Workout{
		Name:        args[0],
		Exercises:   exercises,
		Date:        date,
		DurationMin: workoutAddFlagDuration,
		User:        ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Logged workout %s: %s\n", created.ID[:8], created.Name)
	return nil
}

func runWorkoutRm(cmd *cobra.Command, args []string) error {
	ctx.Data.DeleteWorkout(resolveID(args[0], func() []string {
		workouts := ctx.Data.WorkoutsByUser(ctx.Prefs.CurrentUser())
		ids := make([]string, len(workouts))
		for i, w := range workouts {
			ids[i] = w.ID
		}
		return ids
	}))
	ctx.Formatter.Println("Deleted.")
	return nil
}

func runMeasureList(cmd *cobra.Command, args []string) error {
	measurements := ctx.Data.MeasurementsByUser(ctx.Prefs.CurrentUser())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(measurements)
	}
	ctx.CLIFormatter().PrintMeasurements(measurements)
	return nil
}

func runMeasureAdd(cmd *cobra.Command, args []string) error {
	weight, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewUserErrorWithField("weight", args[0],
			"Invalid weight", "Provide a decimal number of kilograms")
	}
	date, err := parser.ParseDate(measureAddFlagDate)
	if err != nil {
		return err
	}

	created, err := ctx.Data.AddMeasurement(model.BodyMeasurement{
		Date:    date,
		Weight:  weight,
		BodyFat: measureAddFlagBodyFat,
		Chest:   measureAddFlagChest,
		Waist:   measureAddFlagWaist,
		Arms:    measureAddFlagArms,
		Legs:    measureAddFlagLegs,
		User:    ctx.Prefs.CurrentUser(),
	})
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	ctx.Formatter.Printf("Logged measurement %s: %.1fkg\n", created.ID[:8], created.Weight)
	return nil
}
