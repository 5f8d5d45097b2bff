package store

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"cleanhnote/models"
)

var fixedNow = time.Date(2025, time.August, 17, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	base := []Option{
		WithLogger(log),
		WithClock(func() time.Time { return fixedNow }),
	}
	return New(append(base, opts...)...)
}

func premiumSeed() Option {
	return WithAccounts(models.Account{
		Email:    "User1@gmail.com",
		Password: "user12345",
		Username: "PremiumUser",
		Plan:     models.PlanPremium,
	})
}

func TestNextID_StrictlyIncreasingWithinOneMillisecond(t *testing.T) {
	s := newTestStore(t)

	prev := s.nextID()
	if prev != fixedNow.UnixMilli() {
		t.Fatalf("expected first id %d, got %d", fixedNow.UnixMilli(), prev)
	}
	for i := 0; i < 5; i++ {
		id := s.nextID()
		if id <= prev {
			t.Fatalf("expected id > %d, got %d", prev, id)
		}
		prev = id
	}
}

func TestWithAccounts_NormalizesAndSkipsDuplicates(t *testing.T) {
	s := newTestStore(t, WithAccounts(
		models.Account{Email: " Bob@X.com ", Password: "pw", Username: "bob"},
		models.Account{Email: "bob@x.com", Password: "other", Username: "bob2"},
		models.Account{Email: "", Password: "pw", Username: "nobody"},
	))

	accs := s.Accounts()
	if len(accs) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accs))
	}
	if accs[0].Email != "bob@x.com" || accs[0].Plan != models.PlanFree {
		t.Fatalf("unexpected seeded account: %+v", accs[0])
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(ErrNotPremium); got != "NotPremium" {
		t.Fatalf("expected NotPremium, got %q", got)
	}
	if got := KindOf(errors.New("boom")); got != "" {
		t.Fatalf("expected empty kind, got %q", got)
	}
}
