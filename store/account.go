package store

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
	"cleanhnote/utils"
)

type registerInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Register adds a Free account to the directory and makes it the active
// session. Username and email are trimmed and the email is lower-cased.
//
// It returns ErrMissingField if any field is empty and ErrDuplicateEmail if
// the email is already registered in any letter case.
func (s *Store) Register(username, email, password string) (models.Account, error) {
	in := registerInput{
		Username: strings.TrimSpace(username),
		Email:    normalizeEmail(email),
		Password: password,
	}
	if err := utils.ValidateStruct(in); err != nil {
		return models.Account{}, fmt.Errorf("%w: %v", ErrMissingField, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findAccount(in.Email); ok {
		s.log.WithField("email", in.Email).Debug("registration rejected, email taken")
		return models.Account{}, ErrDuplicateEmail
	}

	acc := models.Account{
		Email:    in.Email,
		Password: in.Password,
		Username: in.Username,
		Plan:     models.PlanFree,
	}
	s.accounts = append(s.accounts, acc)
	s.startSession(acc)

	s.log.WithFields(logrus.Fields{
		"email":    acc.Email,
		"username": acc.Username,
	}).Info("account registered")
	return acc, nil
}

// Login makes the account matching email (any letter case) and password
// (exact) the active session.
//
// It returns ErrInvalidCredentials when no account matches.
func (s *Store) Login(email, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.findAccount(normalizeEmail(email))
	if !ok || acc.Password != password {
		s.log.WithField("email", normalizeEmail(email)).Debug("login rejected")
		return models.Account{}, ErrInvalidCredentials
	}

	s.startSession(acc)
	s.log.WithFields(logrus.Fields{
		"email": acc.Email,
		"plan":  acc.Plan,
	}).Info("logged in")
	return acc, nil
}

// Logout clears the active session and resets the cached plan to Free.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Account != nil {
		s.log.WithField("email", s.session.Account.Email).Info("logged out")
	}
	s.session = models.Session{Plan: models.PlanFree}
}

// Session returns a copy of the active session
func (s *Store) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess.Account != nil {
		acc := *sess.Account
		sess.Account = &acc
	}
	return sess
}

// CurrentAccount returns the account of the active session
func (s *Store) CurrentAccount() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Account == nil {
		return models.Account{}, false
	}
	return *s.session.Account, true
}

// FindAccount looks up an account by email in any letter case
func (s *Store) FindAccount(email string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findAccount(normalizeEmail(email))
}

// Accounts returns the directory in registration order
func (s *Store) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Account(nil), s.accounts...)
}

func (s *Store) findAccount(email string) (models.Account, bool) {
	for _, acc := range s.accounts {
		if acc.Email == email {
			return acc, true
		}
	}
	return models.Account{}, false
}

func (s *Store) startSession(acc models.Account) {
	plan := acc.Plan
	if plan == "" {
		plan = models.PlanFree
	}
	s.session = models.Session{
		LoggedIn: true,
		Account:  &acc,
		Plan:     plan,
	}
}

// requireSession returns the active account or ErrNoSession. Callers hold mu.
func (s *Store) requireSession() (models.Account, error) {
	if s.session.Account == nil {
		return models.Account{}, ErrNoSession
	}
	return *s.session.Account, nil
}
