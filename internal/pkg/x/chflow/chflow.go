// Package chflow holds small channel helpers that stop waiting as soon as
// their context is done.
package chflow

import "context"

// Receive waits for a value from ch. The boolean is false when ch is closed
// or ctx is done first.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch and reports false if ctx was done before the
// value was taken.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Emit streams items on a new channel that is closed once every item was
// delivered or ctx is done.
func Emit[T any](ctx context.Context, items []T) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for _, item := range items {
			if !Send(ctx, ch, item) {
				return
			}
		}
	}()
	return ch
}

// Collect drains ch until it is closed or ctx is done.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	var out []T
	for {
		item, ok := Receive(ctx, ch)
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
