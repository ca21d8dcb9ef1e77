package tools

import (
	"context"

	"go.uber.org/atomic"
)

// Counter tracks invocations of a tool shared between runs
type Counter struct {
	invocations *atomic.Int64
	failures    *atomic.Int64
}

// Counted wraps spec so every invocation is counted
func Counted(spec ToolSpec) (ToolSpec, *Counter) {
	counter := &Counter{
		invocations: atomic.NewInt64(0),
		failures:    atomic.NewInt64(0),
	}
	invoke := spec.Invoke
	spec.Invoke = func(ctx context.Context, input string) (string, error) {
		counter.invocations.Inc()
		output, err := invoke(ctx, input)
		if err != nil {
			counter.failures.Inc()
		}
		return output, err
	}
	return spec, counter
}

// Invocations returns the number of calls
func (c *Counter) Invocations() int64 {
	return c.invocations.Load()
}

// Failures returns the number of calls that returned an error
func (c *Counter) Failures() int64 {
	return c.failures.Load()
}
