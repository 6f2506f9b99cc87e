package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/output"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// CLI runs one selected operation against the task service.
type CLI struct {
	Service *task.Service
	Out     *output.Console
	Logger  *log.Logger
}

// NewCLI initializes a new CLI.
func NewCLI(svc *task.Service, out *output.Console, logger *log.Logger) *CLI {
	return &CLI{Service: svc, Out: out, Logger: logger}
}

// Execute runs op with its argument. Validation outcomes such as an unknown
// task number are printed and yield nil; only unexpected failures return
// an error.
func (c *CLI) Execute(ctx context.Context, op Operation, arg string) error {
	c.Logger.Debug("running operation", "op", op, "arg", arg)

	err := c.execute(ctx, op, arg)
	if err != nil && c.Out.Report(err) {
		c.Logger.Debug("operation rejected", "op", op, "reason", err)
		return nil
	}
	return err
}

func (c *CLI) execute(ctx context.Context, op Operation, arg string) error {
	switch op {
	case OpAdd:
		t, err := c.Service.Add(ctx, arg)
		if err != nil {
			return err
		}
		c.Out.Added(t)

	case OpListTodo:
		return c.list(ctx, models.ToDo)
	case OpListProgress:
		return c.list(ctx, models.InProgress)
	case OpListDone:
		return c.list(ctx, models.Done)
	case OpList:
		return c.list(ctx, 0)

	case OpDelete:
		ch, err := c.Service.Delete(ctx, arg)
		if err != nil {
			return err
		}
		c.Out.Deleted(ch)

	case OpUpdate:
		number, desc, err := task.SplitPair(arg, task.UpdateFormat)
		if err != nil {
			return err
		}
		ch, err := c.Service.Update(ctx, number, desc)
		if err != nil {
			return err
		}
		c.Out.Updated(ch)

	case OpProgress:
		return c.transition(c.Service.Progress(ctx, arg))
	case OpComplete:
		return c.transition(c.Service.Complete(ctx, arg))
	case OpStatus:
		number, code, err := task.SplitPair(arg, task.StatusFormat)
		if err != nil {
			return err
		}
		return c.transition(c.Service.SetStatus(ctx, number, code))

	default:
		return fmt.Errorf("unknown operation: %s", op)
	}
	return nil
}

// list renders the tasks with status, or every task when status is zero.
func (c *CLI) list(ctx context.Context, status models.TaskStatus) error {
	var filter *models.TaskStatus
	title := output.AllTitle
	if status != 0 {
		filter = &status
		title = status.String()
	}

	tasks, err := c.Service.List(ctx, filter)
	if err != nil {
		return err
	}
	c.Out.TaskTable(title, tasks)
	return nil
}

func (c *CLI) transition(tr task.Transition, err error) error {
	if err != nil {
		return err
	}
	c.Out.StatusChanged(tr)
	return nil
}
