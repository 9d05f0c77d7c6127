package assistant

import "errors"

var (
	ErrEmptyInput    = errors.New("assistant: empty input text")
	ErrToolExecution = errors.New("assistant: tool execution failed")
	ErrRunFailed     = errors.New("assistant: agent run failed")
)
