package task

import (
	"errors"
	"fmt"
)

var (
	ErrNoTasks           = errors.New("no tasks available")
	ErrEmptyList         = errors.New("task list is empty")
	ErrNotAnInteger      = errors.New("task number must be an integer")
	ErrInvalidStatusCode = errors.New("invalid status value, use 1=ToDo, 2=InProgress, 3=Done")
)

// OutOfRangeError reports a task number outside [1, len(tasks)].
type OutOfRangeError struct {
	Number int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("task number %d does not exist", e.Number)
}

// FormatError reports a combined argument without a comma.
type FormatError struct {
	Format string // e.g. "ID,TASK"
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format should be '%s'", e.Format)
}
