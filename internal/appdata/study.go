package appdata

import (
	"github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
	"github.com/lifeos-app/lifeos/internal/validate"
)

// AddSubject validates and appends a subject.
func (s *Store) AddSubject(sub model.Subject) (model.Subject, error) {
	if err := validate.Name(sub.Name); err != nil {
		return model.Subject{}, err
	}
	if err := validate.HexColor(sub.Color); err != nil {
		return model.Subject{}, err
	}

	created := model.NewSubject(sub.Name, sub.Color, sub.Icon, sub.User)
	created.TotalHours = sub.TotalHours

	s.Update(func(cur State) State {
		cur.Subjects = append(append([]model.Subject{}, cur.Subjects...), created)
		return cur
	})
	return created, nil
}

// UpdateSubject merges partial fields into the matching subject.
func (s *Store) UpdateSubject(id string, partial store.Partial) error {
	if v, ok := partial["color"]; ok {
		color, _ := v.(string)
		if err := validate.HexColor(color); err != nil {
			return err
		}
	}
	s.Update(func(cur State) State {
		cur.Subjects, _ = replaceByID(cur.Subjects, id, subjectID, func(sub model.Subject) model.Subject {
			return applyPartial(sub, partial)
		})
		return cur
	})
	return nil
}

// DeleteSubject removes the matching subject. Sessions referencing it
// keep their dangling subject id; reads must tolerate the missing
// lookup.
func (s *Store) DeleteSubject(id string) {
	s.Update(func(cur State) State {
		cur.Subjects = removeByID(cur.Subjects, id, subjectID)
		return cur
	})
}

// SubjectsByUser returns the user's subjects in insertion order.
func (s *Store) SubjectsByUser(user string) []model.Subject {
	return filterByUser(s.Get().Subjects, user, func(sub model.Subject) string { return sub.User })
}

// SubjectByID looks up a subject. The second result is false when the
// id does not resolve.
func (s *Store) SubjectByID(id string) (model.Subject, bool) {
	for _, sub := range s.Get().Subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return model.Subject{}, false
}

// AddStudySession validates and appends a session. The subject id must
// resolve to a subject owned by the same user; the session duration is
// rolled into that subject's accumulated hours.
func (s *Store) AddStudySession(session model.StudySession) (model.StudySession, error) {
	if session.DurationMin <= 0 {
		return model.StudySession{}, errors.NewUserError(
			"Duration must be positive",
			"Provide the session length in minutes")
	}
	if !s.subjectExists(session.SubjectID, session.User) {
		return model.StudySession{}, errors.ErrSubjectNotFound
	}

	created := model.NewStudySession(session.SubjectID, session.DurationMin, session.Date, session.Description, session.User)
	s.Update(func(cur State) State {
		cur.StudySessions = append(append([]model.StudySession{}, cur.StudySessions...), created)
		cur.Subjects, _ = replaceByID(cur.Subjects, created.SubjectID, subjectID, func(sub model.Subject) model.Subject {
			sub.TotalHours += float64(created.DurationMin) / 60
			return sub
		})
		return cur
	})
	return created, nil
}

// UpdateStudySession merges partial fields into the matching session.
// Accumulated subject hours are not adjusted for duration edits, same
// as on delete.
func (s *Store) UpdateStudySession(id string, partial store.Partial) error {
	if v, ok := partial["duration_min"]; ok {
		duration := 0.0
		switch n := v.(type) {
		case int:
			duration = float64(n)
		case float64:
			duration = n
		}
		if duration <= 0 {
			return errors.NewUserError(
				"Duration must be positive",
				"Provide the session length in minutes")
		}
	}

	s.Update(func(cur State) State {
		cur.StudySessions, _ = replaceByID(cur.StudySessions, id, studySessionID, func(session model.StudySession) model.StudySession {
			return applyPartial(session, partial)
		})
		return cur
	})
	return nil
}

// DeleteStudySession removes the matching session. Accumulated subject
// hours are not rewound; the original hour totals are seed data, not a
// derived sum.
func (s *Store) DeleteStudySession(id string) {
	s.Update(func(cur State) State {
		cur.StudySessions = removeByID(cur.StudySessions, id, studySessionID)
		return cur
	})
}

// StudySessionsByUser returns the user's sessions in insertion order.
func (s *Store) StudySessionsByUser(user string) []model.StudySession {
	return filterByUser(s.Get().StudySessions, user, func(session model.StudySession) string { return session.User })
}

func (s *Store) subjectExists(id, user string) bool {
	for _, sub := range s.Get().Subjects {
		if sub.ID == id && sub.User == user {
			return true
		}
	}
	return false
}

func subjectID(sub model.Subject) string              { return sub.ID }
func studySessionID(session model.StudySession) string { return session.ID }
