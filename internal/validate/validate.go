// Package validate provides form-level input validation for LifeOS.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
)

const (
	// MaxTitleLength is the maximum length for a task title.
	MaxTitleLength = 128
	// MaxDescriptionLength is the maximum length for a description.
	MaxDescriptionLength = 4096
	// MaxNameLength is the maximum length for entity names.
	MaxNameLength = 128
)

// Title validates a task title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a task title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// Name validates an entity display name (account, subject, meal...).
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Name cannot be empty", "Provide a name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// Description validates an optional description.
func Description(desc string) error {
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return errors.NewUserError(
			"Description too long",
			"Descriptions must be 4096 characters or fewer")
	}
	return nil
}

// Amount validates that a money amount is positive.
func Amount(amount float64) error {
	if amount <= 0 {
		return errors.ErrInvalidAmount
	}
	return nil
}

// TaskStatus validates a task status value.
func TaskStatus(s model.TaskStatus) error {
	if !model.ValidTaskStatus(s) {
		return errors.ErrInvalidStatus
	}
	return nil
}

// TaskPriority validates a task priority value.
func TaskPriority(p model.TaskPriority) error {
	if !model.ValidTaskPriority(p) {
		return errors.ErrInvalidPriority
	}
	return nil
}

// TransactionType validates a transaction type value.
func TransactionType(t model.TransactionType) error {
	if !model.ValidTransactionType(t) {
		return errors.NewUserErrorWithField("type", string(t),
			"Invalid transaction type",
			"Use 'income' or 'expense'")
	}
	return nil
}

// TransactionCategory validates a category value.
func TransactionCategory(c model.TransactionCategory) error {
	if !model.ValidTransactionCategory(c) {
		return errors.ErrInvalidCategory
	}
	return nil
}

// MealType validates a meal type value.
func MealType(m model.MealType) error {
	if !model.ValidMealType(m) {
		return errors.ErrInvalidMealType
	}
	return nil
}

// HexColor validates a hex color code. Empty is allowed (no color).
func HexColor(color string) error {
	if color == "" {
		return nil
	}
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex format like '#FF5733'")
	}
	for _, c := range strings.TrimPrefix(color, "#") {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return errors.NewUserErrorWithField("color", color,
				"Invalid color format",
				"Use hex format like '#FF5733'")
		}
	}
	return nil
}
