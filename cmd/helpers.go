package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
)

// timeNow is a seam for tests.
var timeNow = time.Now

// parseExercise parses a NAME:SETSxREPS[@WEIGHT] spec like
// "Squat:4x8@80" into an Exercise.
func parseExercise(spec string) (model.Exercise, error) {
	fail := func() (model.Exercise, error) {
		return model.Exercise{}, errors.NewUserErrorWithField("exercise", spec,
			"Invalid exercise spec", "Use NAME:SETSxREPS[@WEIGHT], e.g. 'Squat:4x8@80'")
	}

	name, rest, ok := strings.Cut(spec, ":")
	if !ok || name == "" {
		return fail()
	}

	weight := 0.0
	if reps, w, hasWeight := strings.Cut(rest, "@"); hasWeight {
		parsed, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return fail()
		}
		weight = parsed
		rest = reps
	}

	setsStr, repsStr, ok := strings.Cut(rest, "x")
	if !ok {
		return fail()
	}
	sets, err := strconv.Atoi(setsStr)
	if err != nil {
		return fail()
	}
	reps, err := strconv.Atoi(repsStr)
	if err != nil {
		return fail()
	}

	return model.Exercise{Name: name, Sets: sets, Reps: reps, Weight: weight}, nil
}

// resolveID expands a unique id prefix to the full id from the listing
// returned by ids. When the prefix is ambiguous or matches nothing, it
// is returned as-is.
func resolveID(prefix string, ids func() []string) string {
	match := ""
	for _, id := range ids() {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return prefix
			}
			match = id
		}
	}
	if match == "" {
		return prefix
	}
	return match
}
