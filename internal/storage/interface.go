package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrNotFound = errors.New("task store not found")
)

// Storage reads and writes the whole task collection at once.
//
// Load returns ErrNotFound when nothing has been saved yet; an existing but
// empty store loads as an empty slice. Save replaces everything previously
// stored. Implementations do not lock or write atomically.
type Storage interface {
	Load(ctx context.Context) ([]models.Task, error)
	Save(ctx context.Context, tasks []models.Task) error
}
