package translate

import "context"

type retryHookKey struct{}

// WithRetryHook returns a context that makes Client.Translate call fn before
// each retry, in addition to any Options.OnRetry.
func WithRetryHook(ctx context.Context, fn func(attempt int, err error)) context.Context {
	return context.WithValue(ctx, retryHookKey{}, fn)
}

// RetryHook returns the hook installed by WithRetryHook, or nil.
func RetryHook(ctx context.Context) func(attempt int, err error) {
	fn, _ := ctx.Value(retryHookKey{}).(func(int, error))
	return fn
}
