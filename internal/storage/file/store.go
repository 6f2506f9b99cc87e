package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
)

// DefaultFileName is the data file used when no path is configured.
const DefaultFileName = "tasks.json"

// FileStore implements the storage.Storage interface on a single JSON file
type FileStore struct {
	filePath string
	logger   *log.Logger
}

// NewFileStore creates a new instance of FileStore. The file itself is only
// created by the first Save.
func NewFileStore(filePath string, logger *log.Logger) *FileStore {
	if filePath == "" {
		filePath = DefaultFileName
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{
		filePath: filePath,
		logger:   logger,
	}
}

// Path returns the data file location.
func (f *FileStore) Path() string {
	return f.filePath
}

// Load reads every task from the file.
func (f *FileStore) Load(ctx context.Context) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("task file missing", "path", f.filePath)
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	tasks := []models.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", f.filePath, err)
	}
	if tasks == nil {
		// a file containing "null"
		tasks = []models.Task{}
	}

	f.logger.Debug("loaded tasks", "path", f.filePath, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the file with tasks.
func (f *FileStore) Save(ctx context.Context, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	f.logger.Debug("saved tasks", "path", f.filePath, "count", len(tasks))
	return nil
}

// Encode renders tasks as a 4-space indented JSON array without a trailing
// newline.
func Encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(tasks); err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
