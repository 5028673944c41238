package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalTransition = errors.New("illegal checkout step transition")
	ErrSessionNotFound   = errors.New("checkout session not found")
)

// ValidationError names the first unmet condition that blocked a step
// transition. The presentation layer chooses its own feedback channel;
// the workflow state is left unchanged.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
