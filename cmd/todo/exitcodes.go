package main

// Exit codes for the CLI
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitNetworkError = 2
	ExitConfigError  = 3
	ExitNotFound     = 4
	ExitAPIError     = 5
)
