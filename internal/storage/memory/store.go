package memory

import (
	"context"
	"sync"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
)

// MemoryStore implements the storage.Storage interface in memory. Like a
// missing file, a new MemoryStore reports storage.ErrNotFound until the
// first Save.
type MemoryStore struct {
	tasks   []models.Task
	created bool
	saves   int
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty, not yet created store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates a store that already holds tasks.
func NewMemoryStoreWith(tasks ...models.Task) *MemoryStore {
	m := &MemoryStore{created: true}
	m.tasks = clone(tasks)
	return m
}

// Load returns a copy of the stored tasks.
func (m *MemoryStore) Load(ctx context.Context) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.created {
		return nil, storage.ErrNotFound
	}
	return clone(m.tasks), nil
}

// Save replaces the stored tasks.
func (m *MemoryStore) Save(ctx context.Context, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = clone(tasks)
	m.created = true
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func clone(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
