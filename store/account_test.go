package store

import (
	"errors"
	"testing"

	"cleanhnote/models"
)

func TestRegister_CreatesFreeAccountAndSession(t *testing.T) {
	s := newTestStore(t)

	acc, err := s.Register("Alice", "alice@x.com", "pw12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Plan != models.PlanFree {
		t.Fatalf("expected Free plan, got %s", acc.Plan)
	}
	if n := len(s.Accounts()); n != 1 {
		t.Fatalf("expected directory size 1, got %d", n)
	}

	sess := s.Session()
	if !sess.LoggedIn || sess.Account == nil || sess.Account.Email != "alice@x.com" {
		t.Fatalf("expected active session for alice, got %+v", sess)
	}
	if sess.Plan != models.PlanFree {
		t.Fatalf("expected cached plan Free, got %s", sess.Plan)
	}
}

func TestRegister_MissingField(t *testing.T) {
	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"no username", "", "a@x.com", "pw"},
		{"blank username", "   ", "a@x.com", "pw"},
		{"no email", "A", "", "pw"},
		{"no password", "A", "a@x.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.Register(tc.username, tc.email, tc.password)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if KindOf(err) != "MissingField" {
				t.Fatalf("expected MissingField kind, got %q", KindOf(err))
			}
			if n := len(s.Accounts()); n != 0 {
				t.Fatalf("expected empty directory, got %d", n)
			}
			if s.Session().LoggedIn {
				t.Fatalf("expected no session")
			}
		})
	}
}

func TestRegister_DuplicateEmailAnyCase(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Register("Alice", "alice@x.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Logout()

	_, err := s.Register("Other", "  ALICE@X.COM ", "pw2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if n := len(s.Accounts()); n != 1 {
		t.Fatalf("expected directory unchanged, got %d accounts", n)
	}
	if s.Session().LoggedIn {
		t.Fatalf("failed registration must not start a session")
	}
}

func TestLogin(t *testing.T) {
	s := newTestStore(t, premiumSeed())

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"exact", "user1@gmail.com", "user12345", nil},
		{"case-insensitive email", "USER1@Gmail.com", "user12345", nil},
		{"padded email", "  user1@gmail.com ", "user12345", nil},
		{"wrong password", "user1@gmail.com", "user1234", ErrInvalidCredentials},
		{"password is case-sensitive", "user1@gmail.com", "USER12345", ErrInvalidCredentials},
		{"unknown email", "nobody@gmail.com", "user12345", ErrInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s.Logout()
			acc, err := s.Login(tc.email, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			sess := s.Session()
			if tc.wantErr != nil {
				if sess.LoggedIn {
					t.Fatalf("expected no session after failed login")
				}
				return
			}
			if acc.Username != "PremiumUser" {
				t.Fatalf("unexpected account: %+v", acc)
			}
			if !sess.LoggedIn || sess.Plan != models.PlanPremium {
				t.Fatalf("expected premium session, got %+v", sess)
			}
		})
	}
}

func TestLogout_ResetsSession(t *testing.T) {
	s := newTestStore(t, premiumSeed())

	if _, err := s.Login("user1@gmail.com", "user12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Logout()

	sess := s.Session()
	if sess.LoggedIn || sess.Account != nil {
		t.Fatalf("expected cleared session, got %+v", sess)
	}
	if sess.Plan != models.PlanFree {
		t.Fatalf("expected plan reset to Free, got %s", sess.Plan)
	}
	if _, ok := s.CurrentAccount(); ok {
		t.Fatalf("expected no current account")
	}

	// Logging out twice is harmless.
	s.Logout()
}

func TestSession_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Register("Alice", "alice@x.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess := s.Session()
	sess.Account.Username = "mallory"

	acc, _ := s.CurrentAccount()
	if acc.Username != "Alice" {
		t.Fatalf("session copy leaked into store: %q", acc.Username)
	}
}

func TestFindAccount(t *testing.T) {
	s := newTestStore(t, premiumSeed())

	if _, ok := s.FindAccount("USER1@GMAIL.COM"); !ok {
		t.Fatalf("expected account to be found")
	}
	if _, ok := s.FindAccount("missing@gmail.com"); ok {
		t.Fatalf("expected missing account")
	}
}
