package appdata

import (
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
	"github.com/lifeos-app/lifeos/internal/validate"
)

// AddTask validates and appends a task. The incoming id and creation
// timestamp are ignored; a fresh id and timestamp are generated.
func (s *Store) AddTask(t model.Task) (model.Task, error) {
	if err := validate.Title(t.Title); err != nil {
		return model.Task{}, err
	}
	if err := validate.Description(t.Description); err != nil {
		return model.Task{}, err
	}
	if err := validate.TaskStatus(t.Status); err != nil {
		return model.Task{}, err
	}
	if err := validate.TaskPriority(t.Priority); err != nil {
		return model.Task{}, err
	}

	created := model.NewTask(t.Title, t.Status, t.Priority, t.DueDate, t.User)
	created.Description = t.Description

	s.Update(func(cur State) State {
		cur.Tasks = append(append([]model.Task{}, cur.Tasks...), created)
		return cur
	})
	return created, nil
}

// UpdateTask merges partial fields into the matching task. An unknown
// id is a silent no-op; invalid field values are rejected.
func (s *Store) UpdateTask(id string, partial store.Partial) error {
	if v, ok := partial["status"]; ok {
		status, _ := v.(string)
		if err := validate.TaskStatus(model.TaskStatus(status)); err != nil {
			return err
		}
	}
	if v, ok := partial["priority"]; ok {
		priority, _ := v.(string)
		if err := validate.TaskPriority(model.TaskPriority(priority)); err != nil {
			return err
		}
	}

	s.Update(func(cur State) State {
		cur.Tasks, _ = replaceByID(cur.Tasks, id, taskID, func(t model.Task) model.Task {
			return applyPartial(t, partial)
		})
		return cur
	})
	return nil
}

// DeleteTask removes the matching task; unknown ids are a no-op.
func (s *Store) DeleteTask(id string) {
	s.Update(func(cur State) State {
		cur.Tasks = removeByID(cur.Tasks, id, taskID)
		return cur
	})
}

// TasksByUser returns the user's tasks in insertion order.
func (s *Store) TasksByUser(user string) []model.Task {
	return filterByUser(s.Get().Tasks, user, func(t model.Task) string { return t.User })
}

func taskID(t model.Task) string { return t.ID }
