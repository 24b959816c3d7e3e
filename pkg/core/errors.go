package core

import "errors"

var (
	// ErrUpstreamUnavailable is returned when the model provider could not be
	// reached or returned an error; fatal to the current exchange
	ErrUpstreamUnavailable = errors.New("model provider unavailable")

	// ErrLoopBudgetExceeded is returned when an exchange runs more
	// model/tool cycles than the configured maximum
	ErrLoopBudgetExceeded = errors.New("exchange loop budget exceeded")

	// ErrNotInitialized is returned when the assistant's dependencies were
	// never constructed
	ErrNotInitialized = errors.New("assistant not initialized")

	// ErrToolNotFound is returned when a tool name is not in the registry
	ErrToolNotFound = errors.New("tool not found")

	// ErrDuplicateTool is returned when registering a tool name twice
	ErrDuplicateTool = errors.New("tool already registered")
)
