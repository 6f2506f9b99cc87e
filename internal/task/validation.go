package task

import (
	"strconv"
	"strings"
)

// Argument formats for the combined flags.
const (
	UpdateFormat = "ID,TASK"
	StatusFormat = "ID,STATUS"
)

// ParseNumber parses a 1-based task number. Surrounding whitespace and a
// leading sign are allowed.
func ParseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotAnInteger
	}
	return n, nil
}

// SplitPair splits s at the first comma, so the second half may itself
// contain commas.
func SplitPair(s, format string) (string, string, error) {
	number, rest, ok := strings.Cut(s, ",")
	if !ok {
		return "", "", &FormatError{Format: format}
	}
	return number, rest, nil
}

func checkRange(n, count int) error {
	if n < 1 || n > count {
		return &OutOfRangeError{Number: n}
	}
	return nil
}
