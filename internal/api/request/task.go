package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// TaskRequest is the body of POST /todos and PUT /todos/{id}.
type TaskRequest struct {
	ID         *string `json:"id"`
	UserID     *string `json:"userId"`
	Title      *string `json:"title"`
	IsFinished *bool   `json:"isFinished"`
}

// ValidateCreate validates a create request. The id may be omitted.
func (r *TaskRequest) ValidateCreate() []string {
	return r.validate()
}

// ValidateUpdate validates an update request addressed to pathID. A body id,
// when present, must match pathID.
func (r *TaskRequest) ValidateUpdate(pathID string) []string {
	problems := r.validate()
	if r.ID != nil && *r.ID != pathID {
		problems = append(problems, "id in body does not match id in path")
	}
	return problems
}

func (r *TaskRequest) validate() []string {
	var problems []string

	if r.UserID == nil {
		problems = append(problems, "userId is required")
	}
	if r.Title == nil || strings.TrimSpace(*r.Title) == "" {
		problems = append(problems, "title is required")
	}
	if r.IsFinished == nil {
		problems = append(problems, "isFinished is required")
	}

	return problems
}

// DecodeJSON decodes a single JSON value from the request body into v.
// Trailing data after the value is an error.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
