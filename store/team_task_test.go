package store

import (
	"errors"
	"testing"

	"cleanhnote/models"
)

// teamWithBob creates a team owned by the premium user with bob as a
// member, and leaves the premium user logged in.
func teamWithBob(t *testing.T, s *Store) models.Team {
	t.Helper()

	loginPremium(t, s)
	team, err := s.CreateTeam("Squad", "")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := s.Register("Bob", "bob@x.com", "pw"); err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if _, err := s.JoinTeam(team.InviteCode); err != nil {
		t.Fatalf("join team: %v", err)
	}
	loginPremium(t, s)
	return team
}

func TestAssignTeamTask(t *testing.T) {
	s := newTestStore(t, premiumSeed())
	team := teamWithBob(t, s)

	first, err := s.AssignTeamTask(team.ID, "BOB@x.com", " Laporan ", "", "2025-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Member != "bob@x.com" || first.MemberLabel != "Bob" || first.Title != "Laporan" {
		t.Fatalf("unexpected task: %+v", first)
	}

	second, err := s.AssignTeamTask(team.ID, "user1@gmail.com", "Review", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, err := s.ListTeamTasks(team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", tasks)
	}
}

func TestAssignTeamTask_Errors(t *testing.T) {
	s := newTestStore(t, premiumSeed())
	team := teamWithBob(t, s)

	if _, err := s.AssignTeamTask("team-missing", "bob@x.com", "x", "", ""); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if _, err := s.AssignTeamTask(team.ID, "carol@x.com", "x", "", ""); !errors.Is(err, ErrNotTeamMember) {
		t.Fatalf("expected ErrNotTeamMember, got %v", err)
	}

	if _, err := s.Login("bob@x.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AssignTeamTask(team.ID, "bob@x.com", "x", "", ""); !errors.Is(err, ErrNotTeamOwner) {
		t.Fatalf("expected ErrNotTeamOwner, got %v", err)
	}

	s.Logout()
	if _, err := s.AssignTeamTask(team.ID, "bob@x.com", "x", "", ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	tasks, _ := s.ListTeamTasks(team.ID)
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks after failed assignments, got %d", len(tasks))
	}
}

func TestAssignTeamTask_LabelIsSnapshot(t *testing.T) {
	s := newTestStore(t, premiumSeed())
	team := teamWithBob(t, s)

	task, err := s.AssignTeamTask(team.ID, "bob@x.com", "x", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The label stays what it was even if the stored task list is copied out.
	tasks, _ := s.ListTeamTasks(team.ID)
	tasks[0].MemberLabel = "changed"
	again, _ := s.ListTeamTasks(team.ID)
	if again[0].MemberLabel != task.MemberLabel {
		t.Fatalf("expected label %q, got %q", task.MemberLabel, again[0].MemberLabel)
	}
}

func TestListTeamTasks_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ListTeamTasks("team-1"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
