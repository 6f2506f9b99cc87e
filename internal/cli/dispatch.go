package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-todo-cli/internal/config"
	"github.com/tiwariParth/go-todo-cli/internal/exitcode"
	"github.com/tiwariParth/go-todo-cli/internal/logging"
	"github.com/tiwariParth/go-todo-cli/internal/output"
	"github.com/tiwariParth/go-todo-cli/internal/storage"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// StoreFactory creates the task store for a run.
// Used to inject the backend during dispatch.
type StoreFactory func(cfg *config.Config, logger *log.Logger) storage.Storage

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	factory StoreFactory
	now     func() time.Time
}

// NewDispatcher creates a new dispatcher. A nil clock means time.Now.
func NewDispatcher(factory StoreFactory, now func() time.Time) *Dispatcher {
	return &Dispatcher{factory: factory, now: now}
}

// Run parses arguments, runs at most one operation and returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	flags, err := ParseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintHelp(out)
			return exitcode.Success
		}
		PrintUsage(errOut)
		fmt.Fprintf(errOut, "%s: error: %s\n", programName, err)
		return exitcode.Usage
	}

	op, arg := flags.Operation()
	if op == OpHelp {
		PrintHelp(out)
		return exitcode.Success
	}

	cfg, err := config.New(flags.File)
	if err != nil {
		fmt.Fprintf(errOut, "%s: error: %s\n", programName, err)
		return exitcode.Usage
	}
	cfg.Debug = flags.Debug
	cfg.NoColor = flags.NoColor

	logger := logging.New(errOut, cfg.Debug)
	store := d.factory(cfg, logger)
	c := NewCLI(
		task.NewService(store, d.now),
		output.NewConsole(out, output.Options{NoColor: cfg.NoColor}),
		logger,
	)

	if err := c.Execute(ctx, op, arg); err != nil {
		logger.Error("operation failed", "op", op, "file", cfg.DataFile, "err", err)
		return exitcode.Failure
	}
	return exitcode.Success
}
