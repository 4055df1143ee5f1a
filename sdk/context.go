package sdk

import "context"

// Context carries per-invocation routing metadata alongside the standard
// request context. Generated handler methods receive it as their first
// argument.
type Context struct {
	context.Context

	// Source identifies the component that originated the invocation.
	Source string

	// Tracing carries opaque trace propagation headers.
	Tracing map[string]string
}

// NewContext wraps a standard context with invocation metadata.
func NewContext(ctx context.Context, source string, tracing map[string]string) Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return Context{
		Context: ctx,
		Source:  source,
		Tracing: tracing,
	}
}
