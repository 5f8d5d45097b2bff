package models

// Session is the single authenticated account of the running process.
// Plan is cached at login time and reset to Free on logout.
type Session struct {
	LoggedIn bool     `json:"logged_in"`
	Account  *Account `json:"account,omitempty"`
	Plan     Plan     `json:"plan"`
}
