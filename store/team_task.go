package store

import (
	"strings"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
)

// AssignTeamTask records a task for one member of a team, newest first.
// The member label is the assignee's username at assignment time, or the
// email when the account is not in the directory.
//
// Only the team owner may assign, and only to current members: it returns
// ErrNoSession, ErrTeamNotFound, ErrNotTeamOwner or ErrNotTeamMember.
func (s *Store) AssignTeamTask(teamID, memberEmail, title, description, date string) (models.TeamTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireSession()
	if err != nil {
		return models.TeamTask{}, err
	}

	idx := s.teamIndex(teamID)
	if idx < 0 {
		return models.TeamTask{}, ErrTeamNotFound
	}
	team := s.teams[idx]
	if team.Owner != user.Email {
		return models.TeamTask{}, ErrNotTeamOwner
	}

	member := normalizeEmail(memberEmail)
	if !team.HasMember(member) {
		return models.TeamTask{}, ErrNotTeamMember
	}

	label := member
	if acc, ok := s.findAccount(member); ok {
		label = acc.Username
	}

	task := models.TeamTask{
		ID:          s.nextID(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Member:      member,
		MemberLabel: label,
		Date:        date,
	}
	s.teamTasks[team.ID] = append([]models.TeamTask{task}, s.teamTasks[team.ID]...)

	s.log.WithFields(logrus.Fields{
		"team_id": team.ID,
		"task_id": task.ID,
		"member":  member,
	}).Info("team task assigned")
	return task, nil
}

// ListTeamTasks returns the tasks of a team, newest first
func (s *Store) ListTeamTasks(teamID string) ([]models.TeamTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.teamIndex(teamID) < 0 {
		return nil, ErrTeamNotFound
	}
	return append([]models.TeamTask{}, s.teamTasks[teamID]...), nil
}
