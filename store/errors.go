package store

import "errors"

// Error is a classified, recoverable store failure. The operation that
// returned it left the store unchanged.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingField        = &Error{Kind: "MissingField", Message: "all fields are required"}
	ErrDuplicateEmail      = &Error{Kind: "DuplicateEmail", Message: "email already registered"}
	ErrInvalidCredentials  = &Error{Kind: "InvalidCredentials", Message: "invalid email or password"}
	ErrNotPremium          = &Error{Kind: "NotPremium", Message: "this feature is only available on the Premium plan"}
	ErrInvalidCode         = &Error{Kind: "InvalidCode", Message: "invalid invite code"}
	ErrAlreadyMember       = &Error{Kind: "AlreadyMember", Message: "already a member of this team"}
	ErrTeamNotFound        = &Error{Kind: "TeamNotFound", Message: "team not found"}
	ErrNoSession           = &Error{Kind: "NoSession", Message: "login required"}
	ErrInvalidLevel        = &Error{Kind: "InvalidLevel", Message: "unknown task level"}
	ErrInvalidStatus       = &Error{Kind: "InvalidStatus", Message: "unknown task status"}
	ErrNotTeamOwner        = &Error{Kind: "NotTeamOwner", Message: "only the team owner can do this"}
	ErrNotTeamMember       = &Error{Kind: "NotTeamMember", Message: "assignee is not a member of this team"}
	ErrInviteCodeExhausted = &Error{Kind: "InviteCodeExhausted", Message: "could not generate a unique invite code"}
	ErrTaskNotFound        = &Error{Kind: "TaskNotFound", Message: "task not found"}
)

// KindOf returns the classification of err, or "" for unclassified errors
func KindOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
