package pollecho

import (
	"errors"
	"net"
)

var ErrConnectionClosed = errors.New("connection closed")

// Conn is an exclusively-owned byte-stream endpoint. A Read count of 0 with
// a nil error means the peer closed its write side.
type Conn interface {
	Fd() int

	RemoteAddr() net.Addr

	Read(p []byte) (int, error)

	Write(p []byte) (int, error)

	Close() error
}

// Listener accepts new connections. Its descriptor is watched in slot 0 of
// the slot table; Accept is only called after readiness was reported.
type Listener interface {
	Fd() int

	Addr() net.Addr

	Accept() (Conn, error)

	Close() error
}
