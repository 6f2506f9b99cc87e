package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
)

// Change is the task an operation touched and the position it was
// addressed by.
type Change struct {
	Number int
	Task   models.Task
}

// Transition describes a status change made by SetStatus.
type Transition struct {
	Change
	From models.TaskStatus
	To   models.TaskStatus
}

// Service runs each task operation as a full load, mutate, save cycle.
type Service struct {
	store storage.Storage
	now   func() time.Time
}

// NewService creates a Service backed by store. A nil clock means time.Now.
func NewService(store storage.Storage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Add appends a ToDo task, creating the store if it does not exist yet.
func (s *Service) Add(ctx context.Context, description string) (models.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return models.Task{}, err
		}
		tasks = []models.Task{}
	}

	t := models.NewTask(len(tasks)+1, description, s.now())
	tasks = append(tasks, t)

	if err := s.store.Save(ctx, tasks); err != nil {
		return models.Task{}, fmt.Errorf("failed to add task: %w", err)
	}
	return t, nil
}

// List returns the tasks matching filter in stored order. A nil filter
// matches every task.
func (s *Service) List(ctx context.Context, filter *models.TaskStatus) ([]models.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrEmptyList
	}
	if filter == nil {
		return tasks, nil
	}

	matched := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == *filter {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Delete removes the task at position number and returns it. Stored IDs of
// the remaining tasks are left as they were.
func (s *Service) Delete(ctx context.Context, number string) (Change, error) {
	tasks, idx, err := s.locate(ctx, number)
	if err != nil {
		return Change{}, err
	}

	removed := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := s.store.Save(ctx, tasks); err != nil {
		return Change{}, fmt.Errorf("failed to delete task: %w", err)
	}
	return Change{Number: idx + 1, Task: removed}, nil
}

// Update replaces the description of the task at position number.
func (s *Service) Update(ctx context.Context, number, description string) (Change, error) {
	tasks, idx, err := s.locate(ctx, number)
	if err != nil {
		return Change{}, err
	}

	tasks[idx].SetDescription(description, s.now())

	if err := s.store.Save(ctx, tasks); err != nil {
		return Change{}, fmt.Errorf("failed to update task: %w", err)
	}
	return Change{Number: idx + 1, Task: tasks[idx]}, nil
}

// SetStatus sets the status of the task at position number from a status
// code ("1" ToDo, "2" InProgress, "3" Done).
func (s *Service) SetStatus(ctx context.Context, number, code string) (Transition, error) {
	tasks, idx, err := s.locate(ctx, number)
	if err != nil {
		return Transition{}, err
	}

	status, ok := models.ParseStatusCode(code)
	if !ok {
		return Transition{}, ErrInvalidStatusCode
	}

	old := tasks[idx].SetStatus(status, s.now())

	if err := s.store.Save(ctx, tasks); err != nil {
		return Transition{}, fmt.Errorf("failed to update task status: %w", err)
	}
	return Transition{
		Change: Change{Number: idx + 1, Task: tasks[idx]},
		From:   old,
		To:     status,
	}, nil
}

// Progress marks the task at position number as InProgress.
func (s *Service) Progress(ctx context.Context, number string) (Transition, error) {
	return s.SetStatus(ctx, number, models.InProgress.Code())
}

// Complete marks the task at position number as Done.
func (s *Service) Complete(ctx context.Context, number string) (Transition, error) {
	return s.SetStatus(ctx, number, models.Done.Code())
}

func (s *Service) load(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoTasks
	}
	return tasks, err
}

// locate loads the store and resolves number to a slice index.
func (s *Service) locate(ctx context.Context, number string) ([]models.Task, int, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	n, err := ParseNumber(number)
	if err != nil {
		return nil, 0, err
	}
	if err := checkRange(n, len(tasks)); err != nil {
		return nil, 0, err
	}
	return tasks, n - 1, nil
}
