package wizard

import (
	"errors"
	"strings"

	"handyhub/models"
)

var (
	ErrFinished     = errors.New("wizard already finished")
	ErrUnknownField = errors.New("unknown wizard field")
	// ErrBusy is returned while the completion of the last step is running.
	ErrBusy = errors.New("wizard is completing")
)

// ValidationError carries every problem found on a step.
type ValidationError struct {
	Step   int
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
