package domain

import "strings"

// Task is a stored todo item. Its JSON form is the wire shape of the todo
// API.
type Task struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	IsFinished bool   `json:"isFinished"`
}

// Validate returns the list of problems with t, or nil. An empty ID is
// allowed; the store assigns one.
func (t *Task) Validate() []string {
	var errors []string

	if strings.TrimSpace(t.Title) == "" {
		errors = append(errors, "title is required")
	}

	return errors
}
