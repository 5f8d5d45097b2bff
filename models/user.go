package models

// Plan is the subscription tier of an account
type Plan string

const (
	PlanFree    Plan = "Free"
	PlanPremium Plan = "Premium"
)

// Account represents a registered user in the directory
type Account struct {
	// Authentication fields
	Email    string `json:"email"`
	Password string `json:"-"` // plaintext, compared exactly on login

	// Profile information
	Username string `json:"username"`

	// Subscription
	Plan Plan `json:"plan"`
}

// IsPremium reports whether the account may create teams
func (a Account) IsPremium() bool {
	return a.Plan == PlanPremium
}
