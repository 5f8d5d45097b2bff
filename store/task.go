package store

import (
	"strings"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
)

// CreateTask adds a task owned by the active session with status Baru and
// puts it in front of the task list. An empty level means Sedang.
func (s *Store) CreateTask(title, description string, level models.Level, date string) (models.PersonalTask, error) {
	if level == "" {
		level = models.LevelMedium
	}
	if !level.Valid() {
		return models.PersonalTask{}, ErrInvalidLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.requireSession()
	if err != nil {
		return models.PersonalTask{}, err
	}

	task := models.PersonalTask{
		ID:          s.nextID(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Level:       level,
		Date:        date,
		Status:      models.StatusNew,
		Owner:       owner.Email,
		CreatedAt:   s.now(),
	}
	s.tasks = append([]models.PersonalTask{task}, s.tasks...)

	s.log.WithFields(logrus.Fields{
		"task_id": task.ID,
		"owner":   task.Owner,
	}).Info("task created")
	return task, nil
}

// ListTasks returns the tasks owned by owner, newest first
func (s *Store) ListTasks(owner string) []models.PersonalTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listTasks(normalizeEmail(owner))
}

func (s *Store) listTasks(owner string) []models.PersonalTask {
	tasks := make([]models.PersonalTask, 0)
	for _, t := range s.tasks {
		if t.Owner == owner {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// GetTask looks up a personal task of the active session by id. Tasks of
// other accounts are reported as not found.
func (s *Store) GetTask(id int64) (models.PersonalTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.ownedTaskIndex(id)
	if idx < 0 {
		return models.PersonalTask{}, false
	}
	return s.tasks[idx], true
}

// SetTaskStatus overwrites the status of the active session's task with
// the given id. Any status may follow any other. An unknown id, or a task
// owned by another account, is ignored and reported as not found without
// an error.
//
// It returns ErrInvalidStatus for values outside the four known statuses.
func (s *Store) SetTaskStatus(id int64, status models.Status) (bool, error) {
	if !status.Valid() {
		return false, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.ownedTaskIndex(id)
	if idx < 0 {
		return false, nil
	}

	prev := s.tasks[idx].Status
	s.tasks[idx].Status = status
	s.log.WithFields(logrus.Fields{
		"task_id": id,
		"from":    prev,
		"to":      status,
	}).Info("task status changed")
	return true, nil
}

// ownedTaskIndex finds a task by id among those owned by the session; -1
// without a session or a match.
func (s *Store) ownedTaskIndex(id int64) int {
	owner, err := s.requireSession()
	if err != nil {
		return -1
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].Owner == owner.Email {
			return i
		}
	}
	return -1
}
