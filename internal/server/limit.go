package server

import "context"

// limiter bounds the number of generations running at once. A nil limiter
// admits everything.
type limiter struct {
	sem chan struct{}
}

func newLimiter(n int) *limiter {
	if n <= 0 {
		return nil
	}
	return &limiter{sem: make(chan struct{}, n)}
}

// acquire blocks until a slot is free or ctx is done.
func (l *limiter) acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case l.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *limiter) release() {
	if l == nil {
		return
	}
	<-l.sem
}

// inFlight returns the number of held slots.
func (l *limiter) inFlight() int {
	if l == nil {
		return 0
	}
	return len(l.sem)
}
