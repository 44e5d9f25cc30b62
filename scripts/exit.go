package scripts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

// ExitError is raised by sys.exit and exit. It stops the script.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("exit %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("exit %d", e.Code)
}

// IsTermination reports whether err ends a script cooperatively: an exit
// call, or the cancellation of ctx.
func IsTermination(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return true
	}
	return ctx.Err() != nil
}

func exitBuiltin(stderr io.Writer) *starlark.Builtin {
	return starlark.NewBuiltin("exit", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var status starlark.Value = starlark.None
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &status); err != nil {
			return nil, err
		}
		switch status := status.(type) {
		case starlark.NoneType:
			return nil, &ExitError{}
		case starlark.Int:
			code, ok := status.Int64()
			if !ok {
				return nil, fmt.Errorf("%s: status out of range", b.Name())
			}
			return nil, &ExitError{
				Code: int(code),
			}
		case starlark.String:
			// the message is printed before exiting
			if _, err := fmt.Fprintln(stderr, string(status)); err != nil {
				return nil, err
			}
			return nil, &ExitError{
				Code:    1,
				Message: string(status),
			}
		}
		return nil, fmt.Errorf("%s: got %s, want int, string or None", b.Name(), status.Type())
	})
}
