// Package dbus adapts a godbus session bus connection to the controller's
// bus capability.
package dbus

import (
	"context"
	"fmt"

	godbus "github.com/godbus/dbus/v5"

	"github.com/mpristools/mediaplayerctl/internal/ports"
)

// Conn wraps one session bus connection.
type Conn struct {
	conn *godbus.Conn
}

// Connect opens the user's session bus.
func Connect() (*Conn, error) {
	conn, err := godbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &Conn{conn: conn}, nil
}

// Close releases the bus connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Handle binds an invoker to one remote object interface. The address is
// validated here; no bus traffic happens until Call.
func (c *Conn) Handle(service, path, iface string) (ports.Handle, error) {
	if service == "" {
		return nil, fmt.Errorf("empty service name")
	}
	objPath := godbus.ObjectPath(path)
	if !objPath.IsValid() {
		return nil, fmt.Errorf("invalid object path %q", path)
	}
	if iface == "" {
		return nil, fmt.Errorf("empty interface name")
	}
	return handle{obj: c.conn.Object(service, objPath), iface: iface}, nil
}

type handle struct {
	obj   godbus.BusObject
	iface string
}

// Call invokes iface.method synchronously and flattens the reply body,
// unwrapping variants so callers see plain Go values.
func (h handle) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	call := h.obj.CallWithContext(ctx, h.iface+"."+method, 0, args...)
	if call.Err != nil {
		return nil, call.Err
	}
	values := make([]any, len(call.Body))
	for i, body := range call.Body {
		if variant, ok := body.(godbus.Variant); ok {
			values[i] = variant.Value()
		} else {
			values[i] = body
		}
	}
	return values, nil
}
