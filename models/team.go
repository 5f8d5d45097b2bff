package models

import "time"

// Team represents a group of accounts sharing delegated tasks
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	InviteCode  string    `json:"invite_code"`
	Owner       string    `json:"owner"`   // account email
	Members     []string  `json:"members"` // account emails, owner first
	CreatedAt   time.Time `json:"created_at"`
}

// HasMember reports whether email belongs to the team
func (t Team) HasMember(email string) bool {
	for _, m := range t.Members {
		if m == email {
			return true
		}
	}
	return false
}

// TeamMember is the display view of one team member
type TeamMember struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	IsOwner  bool   `json:"is_owner"`
}

// TeamTask is a task the team owner assigned to a member
type TeamTask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Member      string `json:"member"`       // assignee email
	MemberLabel string `json:"member_label"` // assignee username at assignment time
	Date        string `json:"date"`
}
