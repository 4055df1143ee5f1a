package sdk

import "context"

// Client is the transport call primitive used by generated import stubs.
// Implementations address a single target component and must support
// concurrent multiplexed use; generated code performs no pooling or
// locking around it.
type Client interface {
	// Invoke sends one encoded call addressed by its canonical operation
	// name and waits for the encoded response.
	Invoke(ctx context.Context, operation string, payload []byte) ([]byte, error)
}

// Dispatcher is implemented by generated bindings: it routes one inbound
// call to the typed handler method matching the operation name and returns
// the encoded result.
type Dispatcher interface {
	Dispatch(ctx Context, operation string, params []Value) ([]byte, error)
}
