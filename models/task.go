package models

import "time"

// Level is the priority of a personal task
type Level string

const (
	LevelLow    Level = "Rendah"
	LevelMedium Level = "Sedang"
	LevelHigh   Level = "Tinggi"
)

// Valid reports whether l is one of the known priority levels
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Status is the progress state of a personal task
type Status string

const (
	StatusNew        Status = "Baru"
	StatusInProgress Status = "Dalam Proses"
	StatusDone       Status = "Selesai"
	StatusCancelled  Status = "Dibatalkan"
)

// Valid reports whether s is one of the known task statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// PersonalTask is a task owned by a single account
type PersonalTask struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Level       Level     `json:"level"`
	Date        string    `json:"date"` // due date as submitted
	Status      Status    `json:"status"`
	Owner       string    `json:"owner"` // account email
	CreatedAt   time.Time `json:"created_at"`
}
