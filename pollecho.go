package pollecho

import (
	"errors"
)

var (
	ErrServerClosed  = errors.New("pollecho: server closed")
	ErrSlotTableFull = errors.New("pollecho: connection slot table full")
)

const (
	DefaultAddr       = "127.0.0.1:8080"
	DefaultMaxConns   = 1000
	DefaultBufferSize = 0xFFFF
)

type Options struct {
	// Addr is the TCP address the listener binds to.
	Addr string

	// MaxConns is the slot table capacity, listener slot included. At most
	// MaxConns-1 clients can be connected at once.
	MaxConns int

	// BufferSize is the size of the shared read buffer.
	BufferSize int

	// PollTimeoutMs is passed to the poller each tick; 0 means block
	// indefinitely.
	PollTimeoutMs int

	// Handler receives connection events; nil means echo.
	Handler Handler
}

func NewOptions() *Options {
	return &Options{}
}

func (opts *Options) SetAddr(addr string) *Options {
	opts.Addr = addr
	return opts
}

func (opts *Options) SetMaxConns(n int) *Options {
	opts.MaxConns = n
	return opts
}

func (opts *Options) SetBufferSize(n int) *Options {
	opts.BufferSize = n
	return opts
}

func (opts *Options) SetPollTimeout(ms int) *Options {
	opts.PollTimeoutMs = ms
	return opts
}

func (opts *Options) SetHandler(handler Handler) *Options {
	opts.Handler = handler
	return opts
}

// Handler observes connection lifecycle events. OnData returns the bytes to
// write back to the peer; returning an empty slice writes nothing.
type Handler interface {
	OnOpen(c Conn)
	OnData(c Conn, data []byte) []byte
	OnClose(c Conn)
}

type echoHandler struct{}

func (*echoHandler) OnOpen(c Conn)  {}
func (*echoHandler) OnClose(c Conn) {}

func (*echoHandler) OnData(c Conn, data []byte) []byte {
	return data
}
