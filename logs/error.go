package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapRun(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	run := RunOf(ctx)
	if run == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("run: %s", run))
}
