// Package app wires the production task store into the dispatcher.
package app

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-todo-cli/internal/cli"
	"github.com/tiwariParth/go-todo-cli/internal/config"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/storage/file"
)

// TodoApp runs the CLI against the JSON file store.
type TodoApp struct {
	dispatcher *cli.Dispatcher
}

// NewTodoApp creates a TodoApp.
func NewTodoApp() *TodoApp {
	return &TodoApp{dispatcher: cli.NewDispatcher(FileStore, nil)}
}

// FileStore opens the configured data file.
func FileStore(cfg *config.Config, logger *log.Logger) storage.Storage {
	return file.NewFileStore(cfg.DataFile, logger)
}

// Run executes one invocation and returns the exit code.
func (app *TodoApp) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	return app.dispatcher.Run(ctx, args, out, errOut)
}
