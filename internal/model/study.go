package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a study topic. TotalHours accumulates as sessions are
// logged against it.
type Subject struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	TotalHours float64 `json:"total_hours"`
	User       string  `json:"user"`
}

// NewSubject creates a subject with a generated id.
func NewSubject(name, color, icon string, user string) Subject {
	return Subject{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
		Icon:  icon,
		User:  user,
	}
}

// StudySession is one sitting against a subject.
// SubjectID references a Subject owned by the same user.
type StudySession struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	DurationMin int       `json:"duration_min"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	User        string    `json:"user"`
}

// NewStudySession creates a session with a generated id.
func NewStudySession(subjectID string, durationMin int, date time.Time, description, user string) StudySession {
	return StudySession{
		ID:          uuid.NewString(),
		SubjectID:   subjectID,
		DurationMin: durationMin,
		Date:        date,
		Description: description,
		User:        user,
	}
}
