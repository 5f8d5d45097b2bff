package store

import (
	"cleanhnote/models"
	"cleanhnote/utils"
)

const (
	taglinePremium = "Akses Fitur Lengkap"
	taglineFree    = "Upgrade ke premium untuk fitur tim."
)

// Dashboard summarizes the active session: plan, latest task and first team.
func (s *Store) Dashboard() (models.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.requireSession()
	if err != nil {
		return models.Dashboard{}, err
	}

	tasks := s.listTasks(acc.Email)
	teams := s.listTeams(acc.Email)

	premium := acc.IsPremium()
	d := models.Dashboard{
		Username:      acc.Username,
		Plan:          s.session.Plan,
		CanCreateTeam: premium,
		Greeting:      "Selamat datang, " + acc.Username + "!",
		Tagline:       taglineFree,
		TaskCount:     len(tasks),
		TeamCount:     len(teams),
	}
	if premium {
		d.Tagline = taglinePremium
	}
	if len(tasks) > 0 {
		d.LatestTask = utils.Pointer(tasks[0])
	}
	if len(teams) > 0 {
		d.FirstTeam = utils.Pointer(teams[0])
	}
	return d, nil
}
