package classifier

import "errors"

// ErrCompletion wraps transport failures of the completion collaborator.
var ErrCompletion = errors.New("classifier: completion failed")

var (
	errEmptyOutput = errors.New("empty model output")
	errNoObject    = errors.New("no JSON object in model output")
)
