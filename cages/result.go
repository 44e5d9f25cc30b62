package cages

import "fmt"

// Result is what one group produced while it ran.
type Result struct {
	Stdout  string
	Stderr  string
	Figures [][]byte // PNG
	// Error is set only when errors are recorded instead of raised.
	Error       error
	Interrupted bool
}

type GroupError struct {
	Index  int
	Source string
	Err    error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf(
		"on group %d, with source:\n'''\n%s'''\nthe following error was raised: %v",
		e.Index, e.Source, e.Err,
	)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}
