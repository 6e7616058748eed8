package syncs

import (
	"context"
	"errors"
	"sync"
)

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	if n < 1 {
		n = 1
	}
	return make(Semaphore, n)
}

func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}

// ForEach calls fn for 0 to n-1, holding the semaphore during each call.
// All calls are waited for, errors are joined.
func (s Semaphore) ForEach(ctx context.Context, n int, fn func(i int) error) error {
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		if err := s.Acquire(ctx); err != nil {
			errs[i] = err
			break
		}
		wg.Go(func() {
			defer s.Release()
			errs[i] = fn(i)
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}
