package agent

import "errors"

var (
	// ErrToolNotFound indicates the oracle asked for an unregistered tool
	ErrToolNotFound = errors.New("tool not found")
)
