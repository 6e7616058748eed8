package main

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/reusee/mangrove/lexconfigs"
	"github.com/reusee/mangrove/lexers"
	"github.com/reusee/mangrove/syncs"
)

// Run processes sources concurrently and writes their outputs to w in order.
type Run func(ctx context.Context, w io.Writer, sources []*lexers.Source) error

func (Module) Run(
	process Process,
	jobs Jobs,
	configErr lexconfigs.ConfigError,
) Run {
	return func(ctx context.Context, w io.Writer, sources []*lexers.Source) error {
		if configErr.Err != nil {
			return configErr.Err
		}

		if jobs <= 1 {
			var errs []error
			for _, source := range sources {
				if err := process(ctx, w, source); err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		}

		outputs := make([]bytes.Buffer, len(sources))
		done := make([]chan struct{}, len(sources))
		for i := range done {
			done[i] = make(chan struct{})
		}

		// write in source order as soon as each output is ready
		writeErr := make(chan error, 1)
		go func() {
			for i := range sources {
				<-done[i]
				if _, err := outputs[i].WriteTo(w); err != nil {
					writeErr <- wrap(err)
					return
				}
			}
			writeErr <- nil
		}()

		err := syncs.NewSemaphore(int(jobs)).ForEach(ctx, len(sources), func(i int) error {
			defer close(done[i])
			return process(ctx, &outputs[i], sources[i])
		})
		if err != nil {
			// unblock the writer for sources never started
			for i := range done {
				select {
				case <-done[i]:
				default:
					close(done[i])
				}
			}
		}
		if e := <-writeErr; e != nil {
			return e
		}
		return err
	}
}
