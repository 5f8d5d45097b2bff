package models

// Dashboard summarizes the active session for the landing view
type Dashboard struct {
	Username      string        `json:"username"`
	Plan          Plan          `json:"plan"`
	CanCreateTeam bool          `json:"can_create_team"`
	Greeting      string        `json:"greeting"`
	Tagline       string        `json:"tagline"`
	LatestTask    *PersonalTask `json:"latest_task,omitempty"`
	FirstTeam     *Team         `json:"first_team,omitempty"`
	TaskCount     int           `json:"task_count"`
	TeamCount     int           `json:"team_count"`
}
