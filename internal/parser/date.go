// Package parser turns natural language date expressions from CLI
// flags into timestamps.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/lifeos-app/lifeos/internal/errors"
)

// ParseDate parses a natural language date expression like "tomorrow",
// "next friday" or "2026-03-01". Empty input and "today"/"now" resolve
// to the current time.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "now", "today":
		return time.Now(), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not understand date",
			"Use expressions like 'tomorrow', 'next friday' or '2026-03-01'")
	}
	return result.Time, nil
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
