package ports

import "context"

// Bus is the session message bus capability used by the controller.
type Bus interface {
	// Handle returns an invoker bound to one (service, object path,
	// interface) triple. Creation can fail without touching the bus,
	// e.g. on a malformed address.
	Handle(service, path, iface string) (Handle, error)
	Close() error
}

// Handle synchronously invokes methods on one remote object interface.
type Handle interface {
	// Call invokes method with the given arguments and returns the reply
	// values with bus variant wrappers already unwrapped.
	Call(ctx context.Context, method string, args ...any) ([]any, error)
}
