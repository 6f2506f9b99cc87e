// Package output renders task tables and status messages for the CLI.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/tiwariParth/go-todo-cli/internal/models"
	"github.com/tiwariParth/go-todo-cli/internal/task"
)

// Options controls how a Console writes.
type Options struct {
	NoColor bool
}

// Console writes one-line messages and task tables to w. Colour is used only
// when w is a terminal and NoColor is not set.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	green   *color.Color
	red     *color.Color
	blue    *color.Color
	yellow  *color.Color
	cyan    *color.Color
	magenta *color.Color
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts Options) *Console {
	c := &Console{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		green:    color.New(color.FgGreen),
		red:      color.New(color.FgRed),
		blue:     color.New(color.FgBlue),
		yellow:   color.New(color.FgYellow),
		cyan:     color.New(color.FgCyan),
		magenta:  color.New(color.FgMagenta),
	}

	enabled := !opts.NoColor && isTerminal(w)
	for _, col := range []*color.Color{c.green, c.red, c.blue, c.yellow, c.cyan, c.magenta} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	if !enabled {
		c.renderer.SetColorProfile(termenv.Ascii)
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Added confirms a new task.
func (c *Console) Added(t models.Task) {
	fmt.Fprintf(c.w, "%s %s\n", c.green.Sprint("Task added:"), t.Description)
}

// Deleted confirms the removal of a task.
func (c *Console) Deleted(ch task.Change) {
	fmt.Fprintf(c.w, "%s %s\n", c.red.Sprintf("Deleted task %d:", ch.Number), ch.Task.Description)
}

// Updated confirms a description change.
func (c *Console) Updated(ch task.Change) {
	fmt.Fprintf(c.w, "%s %s\n", c.blue.Sprintf("Updated task %d:", ch.Number), ch.Task.Description)
}

// StatusChanged reports a status transition.
func (c *Console) StatusChanged(tr task.Transition) {
	fmt.Fprintf(c.w, "%s %s → %s\n", c.blue.Sprintf("Updated task %d status:", tr.Number), tr.From, tr.To)
}

// Report prints the message for a validation outcome of a task operation.
// It returns false, printing nothing, when err is not one of those outcomes.
func (c *Console) Report(err error) bool {
	var (
		rangeErr  *task.OutOfRangeError
		formatErr *task.FormatError
	)

	switch {
	case errors.Is(err, task.ErrNoTasks):
		c.red.Fprintln(c.w, "No tasks available")
	case errors.Is(err, task.ErrEmptyList):
		c.yellow.Fprintln(c.w, "Task list is empty")
	case errors.Is(err, task.ErrNotAnInteger):
		c.red.Fprintln(c.w, "Error: Task number must be an integer")
	case errors.Is(err, task.ErrInvalidStatusCode):
		c.red.Fprintln(c.w, "Error: Invalid status value. Use 1=ToDo, 2=InProgress, 3=Done")
	case errors.As(err, &rangeErr):
		c.red.Fprintf(c.w, "Error: Task number %d does not exist\n", rangeErr.Number)
	case errors.As(err, &formatErr):
		c.red.Fprintf(c.w, "Error: %s format should be '%s'\n", formatSubject(formatErr.Format), formatErr.Format)
	default:
		return false
	}
	return true
}

func formatSubject(format string) string {
	if format == task.StatusFormat {
		return "Status"
	}
	return "Update"
}

// idCell renders a stored task ID.
func idCell(t models.Task) string {
	return strconv.Itoa(t.ID)
}
