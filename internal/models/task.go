package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// TaskStatus represents the current status of a task
type TaskStatus int

const (
	ToDo TaskStatus = iota + 1
	InProgress
	Done
)

// String returns the string representation of TaskStatus
func (s TaskStatus) String() string {
	switch s {
	case ToDo:
		return "ToDo"
	case InProgress:
		return "InProgress"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Code returns the numeric shorthand accepted by --status.
func (s TaskStatus) Code() string {
	return strconv.Itoa(int(s))
}

// ParseStatusCode maps a status code ("1", "2" or "3") to a TaskStatus.
func ParseStatusCode(code string) (TaskStatus, bool) {
	switch code {
	case "1":
		return ToDo, true
	case "2":
		return InProgress, true
	case "3":
		return Done, true
	default:
		return 0, false
	}
}

// ParseStatus maps a status name as stored on disk to a TaskStatus.
func ParseStatus(name string) (TaskStatus, error) {
	for _, s := range []TaskStatus{ToDo, InProgress, Done} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown task status %q", name)
}

// MarshalJSON encodes the status by name.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status name.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task represents a tracked todo item.
//
// ID is assigned once from the task count at creation time. Commands address
// tasks by their position in the list, not by ID, and IDs are never
// renumbered after a delete.
type Task struct {
	ID           int        `json:"id"`
	Description  string     `json:"description"`
	Status       TaskStatus `json:"status"`
	LastModified Timestamp  `json:"lastModified"`
}

// NewTask creates a new ToDo task.
func NewTask(id int, description string, now time.Time) Task {
	return Task{
		ID:           id,
		Description:  description,
		Status:       ToDo,
		LastModified: Timestamp{now},
	}
}

// SetDescription replaces the description and touches LastModified.
func (t *Task) SetDescription(description string, now time.Time) {
	t.Description = description
	t.LastModified = Timestamp{now}
}

// SetStatus changes the status, touches LastModified and returns the
// previous status.
func (t *Task) SetStatus(status TaskStatus, now time.Time) TaskStatus {
	old := t.Status
	t.Status = status
	t.LastModified = Timestamp{now}
	return old
}
