package cli

import (
	"fmt"
	"io"
	"strings"
)

const (
	programName = "todo"
	description = "Command-line Todo List App"
	helpColumn  = 24
)

// PrintUsage writes the one-line synopsis.
func PrintUsage(w io.Writer) {
	var parts []string
	parts = append(parts, "[-h]")
	for _, spec := range (&Flags{}).specs() {
		parts = append(parts, "["+spec.invocation(false)+"]")
	}
	fmt.Fprintf(w, "usage: %s %s\n", programName, strings.Join(parts, " "))
}

// PrintHelp writes the full grouped help text.
func PrintHelp(w io.Writer) {
	PrintUsage(w)
	fmt.Fprintf(w, "\n%s\n\n", description)
	fmt.Fprintln(w, "options:")
	writeHelpLine(w, "-h, --help", "show this help message and exit")

	specs := (&Flags{}).specs()
	for _, group := range groupOrder {
		fmt.Fprintf(w, "\n%s:\n", group)
		for _, spec := range specs {
			if spec.group == group {
				writeHelpLine(w, spec.invocation(true), spec.help)
			}
		}
	}
}

func writeHelpLine(w io.Writer, names, help string) {
	left := "  " + names
	if len(left) >= helpColumn {
		fmt.Fprintln(w, left)
		left = ""
	}
	fmt.Fprintf(w, "%-*s%s\n", helpColumn, left, help)
}

// invocation renders the flag as shown in help: "-a, --add TASK" in full
// form, "-a TASK" in the synopsis.
func (s flagSpec) invocation(full bool) string {
	var names []string
	if s.short != "" {
		names = append(names, "-"+s.short)
	}
	if s.long != "" && (full || s.short == "") {
		names = append(names, "--"+s.long)
	}
	out := strings.Join(names, ", ")
	if s.metavar != "" {
		out += " " + s.metavar
	}
	return out
}
