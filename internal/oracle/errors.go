package oracle

import "errors"

var (
	// ErrDecode indicates the model answered but its output could not be
	// mapped to an action. This is terminal for the run; providers that
	// fail at the transport level fall through the chain instead.
	ErrDecode = errors.New("oracle: undecodable response")
)
