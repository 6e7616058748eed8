package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSource annotates err with the source name in ctx, if any.
func WrapSource(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	name, ok := SourceOf(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("source: %s", name))
}
