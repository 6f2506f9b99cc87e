package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Operation is the single command selected from the flags.
type Operation int

const (
	OpHelp Operation = iota
	OpAdd
	OpListTodo
	OpListProgress
	OpListDone
	OpList
	OpDelete
	OpUpdate
	OpProgress
	OpComplete
	OpStatus
)

func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpListTodo:
		return "list-todo"
	case OpListProgress:
		return "list-progress"
	case OpListDone:
		return "list-done"
	case OpList:
		return "list"
	case OpDelete:
		return "delete"
	case OpUpdate:
		return "update"
	case OpProgress:
		return "progress"
	case OpComplete:
		return "complete"
	case OpStatus:
		return "status"
	default:
		return "help"
	}
}

// argValue is a string flag that remembers whether it was given, so that an
// explicit empty value still selects its operation.
type argValue struct {
	value string
	set   bool
}

func (a *argValue) String() string { return a.value }

func (a *argValue) Set(s string) error {
	a.value = s
	a.set = true
	return nil
}

// Flags holds the parsed command line.
type Flags struct {
	Add      argValue
	Delete   argValue
	Update   argValue
	Progress argValue
	Complete argValue
	Status   argValue

	List         bool
	ListTodo     bool
	ListProgress bool
	ListDone     bool

	File    string
	Debug   bool
	NoColor bool
}

const (
	groupTask   = "Task Management"
	groupList   = "List Options"
	groupStatus = "Status Management"
	groupOther  = "Other Options"
)

var groupOrder = []string{groupTask, groupList, groupStatus, groupOther}

type flagSpec struct {
	group   string
	short   string
	long    string
	metavar string
	help    string

	str     *argValue
	boolean *bool
	path    *string
}

func (f *Flags) specs() []flagSpec {
	return []flagSpec{
		{group: groupTask, short: "a", long: "add", metavar: "TASK", help: "Add a new task", str: &f.Add},
		{group: groupTask, short: "d", long: "delete", metavar: "ID", help: "Delete a task", str: &f.Delete},
		{group: groupTask, short: "u", long: "update", metavar: "ID,TASK", help: "Update a task description", str: &f.Update},

		{group: groupList, short: "l", long: "list", help: "List all tasks", boolean: &f.List},
		{group: groupList, short: "lt", long: "list-todo", help: "List todo tasks only", boolean: &f.ListTodo},
		{group: groupList, short: "lp", long: "list-progress", help: "List in-progress tasks only", boolean: &f.ListProgress},
		{group: groupList, short: "ld", long: "list-done", help: "List completed tasks only", boolean: &f.ListDone},

		{group: groupStatus, short: "p", long: "progress", metavar: "ID", help: "Mark task as in progress", str: &f.Progress},
		{group: groupStatus, short: "c", long: "complete", metavar: "ID", help: "Mark task as completed", str: &f.Complete},
		{group: groupStatus, short: "s", long: "status", metavar: "ID,CODE", help: "Update task status (codes: 1=ToDo, 2=InProgress, 3=Done)", str: &f.Status},

		{group: groupOther, long: "file", metavar: "PATH", help: "Task file to use (default: tasks.json)", path: &f.File},
		{group: groupOther, long: "debug", help: "Log diagnostics to stderr", boolean: &f.Debug},
		{group: groupOther, long: "no-color", help: "Disable coloured output", boolean: &f.NoColor},
	}
}

// ParseFlags parses args. It returns flag.ErrHelp for -h and --help.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	for _, spec := range f.specs() {
		for _, name := range []string{spec.short, spec.long} {
			if name == "" {
				continue
			}
			switch {
			case spec.str != nil:
				fs.Var(spec.str, name, spec.help)
			case spec.path != nil:
				fs.StringVar(spec.path, name, "", spec.help)
			default:
				fs.BoolVar(spec.boolean, name, false, spec.help)
			}
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unrecognized arguments: %s", strings.Join(fs.Args(), " "))
	}
	return f, nil
}

// Operation picks the first selected operation in precedence order: add,
// list-todo, list-progress, list-done, list, delete, update, progress,
// complete, status. The second result is the operation's argument.
func (f *Flags) Operation() (Operation, string) {
	switch {
	case f.Add.set:
		return OpAdd, f.Add.value
	case f.ListTodo:
		return OpListTodo, ""
	case f.ListProgress:
		return OpListProgress, ""
	case f.ListDone:
		return OpListDone, ""
	case f.List:
		return OpList, ""
	case f.Delete.set:
		return OpDelete, f.Delete.value
	case f.Update.set:
		return OpUpdate, f.Update.value
	case f.Progress.set:
		return OpProgress, f.Progress.value
	case f.Complete.set:
		return OpComplete, f.Complete.value
	case f.Status.set:
		return OpStatus, f.Status.value
	default:
		return OpHelp, ""
	}
}
