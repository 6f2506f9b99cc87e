// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success covers every completed command, including ones that only
	// printed a validation message such as an unknown task number.
	Success = 0

	// Failure indicates an unexpected error reading or writing the task file.
	Failure = 1

	// Usage indicates the command line could not be parsed.
	Usage = 2
)
