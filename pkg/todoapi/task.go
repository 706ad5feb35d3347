package todoapi

import (
	"context"
	"net/http"

	"github.com/todoapi/todoapi/pkg/either"
)

// ListAllTasks retrieves every task.
//
// A 200 response with a JSON array yields Right, including the empty array.
// Any other status yields Left(UnknownAPIError). A failed request or an
// undecodable body yields Left(NetworkError).
func (c *Client) ListAllTasks(ctx context.Context) either.Either[Error, []Task] {
	req, err := c.newRequest(ctx, http.MethodGet, tasksPath, nil)
	if err != nil {
		c.logger.Debug().Err(err).Msg("list tasks: request not built")
		return either.Left[Error, []Task](NetworkError{})
	}

	status, body, err := c.send(req, isOK)
	if err != nil {
		return either.Left[Error, []Task](NetworkError{})
	}

	if !isOK(status) {
		return either.Left[Error, []Task](mapStatus(status))
	}

	tasks, err := decodeTaskList(body)
	if err != nil {
		c.logDecodeFailure(req, err)
		return either.Left[Error, []Task](NetworkError{})
	}

	return either.Right[Error](tasks)
}

// GetTaskByID retrieves a task by ID.
//
// A 404 response yields Left(ItemNotFoundError); any other status except 200
// yields Left(UnknownAPIError). A failed request or an undecodable body yields
// Left(NetworkError).
func (c *Client) GetTaskByID(ctx context.Context, id string) either.Either[Error, Task] {
	req, err := c.newRequest(ctx, http.MethodGet, taskPath(id), nil)
	if err != nil {
		c.logger.Debug().Err(err).Str("id", id).Msg("get task: request not built")
		return either.Left[Error, Task](NetworkError{})
	}

	status, body, err := c.send(req, isOK)
	if err != nil {
		return either.Left[Error, Task](NetworkError{})
	}

	if !isOK(status) {
		return either.Left[Error, Task](mapGetStatus(status))
	}

	task, err := decodeTask(body)
	if err != nil {
		c.logDecodeFailure(req, err)
		return either.Left[Error, Task](NetworkError{})
	}

	return either.Right[Error](task)
}

// UpdateTaskByID replaces the task identified by task.ID with task and
// returns the task echoed by the server.
//
// Any 2xx response is a success. Every other status, 404 included, yields
// Left(UnknownAPIError). A failed request or an undecodable body yields
// Left(NetworkError).
func (c *Client) UpdateTaskByID(ctx context.Context, task Task) either.Either[Error, Task] {
	req, err := c.newJSONRequest(ctx, http.MethodPut, taskPath(task.ID), task)
	if err != nil {
		c.logger.Debug().Err(err).Str("id", task.ID).Msg("update task: request not built")
		return either.Left[Error, Task](NetworkError{})
	}

	status, body, err := c.send(req, is2xx)
	if err != nil {
		return either.Left[Error, Task](NetworkError{})
	}

	if !is2xx(status) {
		return either.Left[Error, Task](mapStatus(status))
	}

	updated, err := decodeTask(body)
	if err != nil {
		c.logDecodeFailure(req, err)
		return either.Left[Error, Task](NetworkError{})
	}

	return either.Right[Error](updated)
}
