package todoapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Task is one item of the remote todo list.
//
// Two tasks are equal when all their fields are equal, so Task values can be
// compared with ==.
type Task struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	IsFinished bool   `json:"isFinished"`
}

// taskPayload is the raw JSON structure of a task. Pointer fields let
// UnmarshalJSON tell a missing field apart from a zero value.
type taskPayload struct {
	ID         *string `json:"id"`
	UserID     *string `json:"userId"`
	Title      *string `json:"title"`
	IsFinished *bool   `json:"isFinished"`
}

var errEmptyTitle = errors.New("task title is empty")

// UnmarshalJSON decodes a task and rejects payloads with missing fields,
// fields of the wrong JSON type or an empty title.
func (t *Task) UnmarshalJSON(data []byte) error {
	var p taskPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	switch {
	case p.ID == nil:
		return missingFieldError("id")
	case p.UserID == nil:
		return missingFieldError("userId")
	case p.Title == nil:
		return missingFieldError("title")
	case p.IsFinished == nil:
		return missingFieldError("isFinished")
	case *p.Title == "":
		return errEmptyTitle
	}

	*t = Task{
		ID:         *p.ID,
		UserID:     *p.UserID,
		Title:      *p.Title,
		IsFinished: *p.IsFinished,
	}
	return nil
}

func missingFieldError(name string) error {
	return fmt.Errorf("task field %q is missing", name)
}

// decodeTask parses a single task object. Trailing data after the object is
// an error.
func decodeTask(body []byte) (Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return Task{}, fmt.Errorf("failed to decode task response: %w", err)
	}
	return task, nil
}

// decodeTaskList parses a JSON array of tasks. A JSON null is rejected; an
// empty array yields an empty, non-nil slice.
func decodeTaskList(body []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks response: %w", err)
	}
	if tasks == nil {
		return nil, errors.New("failed to decode tasks response: expected array, got null")
	}
	return tasks, nil
}
