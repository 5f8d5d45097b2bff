// Package store holds the in-memory state of one CleanHNote session: the
// account directory, the active session, personal tasks, teams and the
// tasks assigned inside each team.
//
// A Store is created once at startup and handed to every handler. All
// operations validate their input before mutating, so a returned error
// always means the store is unchanged.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/utils"
)

// maxInviteCodeAttempts bounds regeneration when a new code collides
const maxInviteCodeAttempts = 16

type Store struct {
	mu sync.Mutex

	accounts  []models.Account // registration order
	session   models.Session
	tasks     []models.PersonalTask // newest first
	teams     []models.Team         // newest first
	teamTasks map[string][]models.TeamTask

	lastID        int64
	now           func() time.Time
	newInviteCode func() (string, error)
	log           logrus.FieldLogger
}

type Option func(*Store)

// WithClock replaces time.Now as the source of ids and creation times
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithInviteCodeGenerator replaces the random invite code source
func WithInviteCodeGenerator(gen func() (string, error)) Option {
	return func(s *Store) {
		s.newInviteCode = gen
	}
}

// WithLogger sets the logger used for store events
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithAccounts seeds the directory. Accounts with an empty or already
// present email are skipped; an empty plan means Free.
func WithAccounts(accounts ...models.Account) Option {
	return func(s *Store) {
		for _, acc := range accounts {
			acc.Email = normalizeEmail(acc.Email)
			if acc.Email == "" {
				continue
			}
			if _, ok := s.findAccount(acc.Email); ok {
				continue
			}
			if acc.Plan == "" {
				acc.Plan = models.PlanFree
			}
			s.accounts = append(s.accounts, acc)
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		session:       models.Session{Plan: models.PlanFree},
		teamTasks:     make(map[string][]models.TeamTask),
		now:           time.Now,
		newInviteCode: utils.GenerateInviteCode,
		log:           logrus.StandardLogger().WithField("component", "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nextID returns a millisecond timestamp, bumped past the previous id when
// two ids are requested within the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneTeam(t models.Team) models.Team {
	t.Members = append([]string(nil), t.Members...)
	return t
}
