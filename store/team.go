package store

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/utils"
)

// CreateTeam creates a team owned by the active session, which becomes its
// only member. The team gets a fresh invite code that no other team uses.
//
// It returns ErrNoSession without a session, ErrNotPremium unless the
// session plan is Premium, and ErrInviteCodeExhausted if no unused code
// was found.
func (s *Store) CreateTeam(name, description string) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.requireSession()
	if err != nil {
		return models.Team{}, err
	}
	if !owner.IsPremium() {
		s.log.WithField("email", owner.Email).Debug("team creation rejected, not premium")
		return models.Team{}, ErrNotPremium
	}

	code, err := s.uniqueInviteCode()
	if err != nil {
		return models.Team{}, err
	}

	now := s.now()
	team := models.Team{
		ID:          fmt.Sprintf("team-%d", s.nextID()),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		InviteCode:  code,
		Owner:       owner.Email,
		Members:     []string{owner.Email},
		CreatedAt:   now,
	}
	s.teams = append([]models.Team{team}, s.teams...)
	s.teamTasks[team.ID] = []models.TeamTask{}

	s.log.WithFields(logrus.Fields{
		"team_id": team.ID,
		"owner":   team.Owner,
	}).Info("team created")
	return cloneTeam(team), nil
}

func (s *Store) uniqueInviteCode() (string, error) {
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code, err := s.newInviteCode()
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}
		if s.teamIndexByCode(code) < 0 {
			return code, nil
		}
		s.log.WithField("attempt", attempt+1).Debug("invite code collision")
	}
	return "", ErrInviteCodeExhausted
}

// JoinTeam adds the active session to the team whose invite code matches
// code after trimming and upper-casing.
//
// It returns ErrNoSession without a session, ErrInvalidCode when no team
// matches and ErrAlreadyMember when the session is already a member.
func (s *Store) JoinTeam(code string) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireSession()
	if err != nil {
		return models.Team{}, err
	}

	idx := s.teamIndexByCode(utils.NormalizeInviteCode(code))
	if idx < 0 {
		return models.Team{}, ErrInvalidCode
	}
	team := &s.teams[idx]
	if team.HasMember(user.Email) {
		return models.Team{}, ErrAlreadyMember
	}

	team.Members = append(team.Members, user.Email)
	s.log.WithFields(logrus.Fields{
		"team_id": team.ID,
		"email":   user.Email,
		"members": len(team.Members),
	}).Info("joined team")
	return cloneTeam(*team), nil
}

// ListTeams returns the teams user belongs to, newest first
func (s *Store) ListTeams(user string) []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listTeams(normalizeEmail(user))
}

func (s *Store) listTeams(user string) []models.Team {
	teams := make([]models.Team, 0)
	for _, t := range s.teams {
		if t.HasMember(user) {
			teams = append(teams, cloneTeam(t))
		}
	}
	return teams
}

// GetTeam returns the team with the given id or ErrTeamNotFound
func (s *Store) GetTeam(id string) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.teamIndex(id)
	if idx < 0 {
		return models.Team{}, ErrTeamNotFound
	}
	return cloneTeam(s.teams[idx]), nil
}

// TeamMembers returns display views of the team's members in join order.
// Members without a directory entry are labelled by their email local part.
func (s *Store) TeamMembers(id string) ([]models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.teamIndex(id)
	if idx < 0 {
		return nil, ErrTeamNotFound
	}
	team := s.teams[idx]

	members := make([]models.TeamMember, 0, len(team.Members))
	for _, email := range team.Members {
		username := strings.SplitN(email, "@", 2)[0]
		if acc, ok := s.findAccount(email); ok {
			username = acc.Username
		}
		members = append(members, models.TeamMember{
			Email:    email,
			Username: username,
			IsOwner:  email == team.Owner,
		})
	}
	return members, nil
}

func (s *Store) teamIndex(id string) int {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) teamIndexByCode(code string) int {
	for i := range s.teams {
		if s.teams[i].InviteCode == code {
			return i
		}
	}
	return -1
}
