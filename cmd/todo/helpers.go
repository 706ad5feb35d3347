package main

import (
	"errors"

	"github.com/todoapi/todoapi/internal/config"
	"github.com/todoapi/todoapi/internal/logging"
	"github.com/todoapi/todoapi/pkg/either"
	"github.com/todoapi/todoapi/pkg/todoapi"
)

// configError marks failures to resolve configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return "config: " + e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// getClient creates a client from the resolved config.
func getClient(opts *globalOptions) (*todoapi.Client, error) {
	cfg, err := config.ResolveConfig(opts.endpoint)
	if err != nil {
		return nil, &configError{err: err}
	}

	clientOpts := []todoapi.ClientOption{
		todoapi.WithLogger(logging.Component(opts.logger, "client")),
	}
	if cfg.Timeout > 0 {
		clientOpts = append(clientOpts, todoapi.WithTimeout(cfg.Timeout))
	}

	client, err := todoapi.NewClient(cfg.Endpoint, clientOpts...)
	if err != nil {
		return nil, &configError{err: err}
	}
	return client, nil
}

// result converts a client result into the usual value and error pair.
func result[T any](e either.Either[todoapi.Error, T]) (T, error) {
	if value, ok := e.Right(); ok {
		return value, nil
	}
	apiErr, _ := e.Left()
	var zero T
	return zero, apiErr
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *configError
	switch {
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case todoapi.IsNetworkError(err):
		return ExitNetworkError
	case todoapi.IsItemNotFound(err):
		return ExitNotFound
	}
	if _, ok := todoapi.StatusCode(err); ok {
		return ExitAPIError
	}

	return ExitGeneralError
}
