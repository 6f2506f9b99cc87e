// Package config holds the runtime settings gathered from the command line.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/tiwariParth/go-todo-cli/internal/storage/file"
)

// Config holds runtime settings. There is no config file and no environment
// lookup; every field comes from a flag.
type Config struct {
	// DataFile is the JSON task file, relative to the working directory
	// unless absolute.
	DataFile string

	Debug   bool
	NoColor bool
}

// New creates a Config for dataFile, falling back to tasks.json in the
// working directory.
func New(dataFile string) (*Config, error) {
	if dataFile == "" {
		dataFile = file.DefaultFileName
	}
	if filepath.Base(dataFile) == "." || filepath.Base(dataFile) == string(filepath.Separator) {
		return nil, fmt.Errorf("invalid data file path: %q", dataFile)
	}
	return &Config{DataFile: filepath.Clean(dataFile)}, nil
}
