package errors

import "errors"

// Inconceivable is raised (via panic) when code reaches a state that its
// callers have promised can never happen.
var Inconceivable = errors.New("inconceivable")
