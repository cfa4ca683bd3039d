//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package pollecho

import (
	"net"

	"golang.org/x/sys/unix"

	"github.com/evkit/pollecho/util"
)

type sockConn struct {
	fd         int
	remoteAddr net.Addr
	closed     util.AtomicBool
}

func newSockConn(fd int, remoteAddr net.Addr) *sockConn {
	return &sockConn{
		fd:         fd,
		remoteAddr: remoteAddr,
	}
}

func (c *sockConn) Fd() int {
	return c.fd
}

func (c *sockConn) RemoteAddr() net.Addr {
	return c.remoteAddr
}

func (c *sockConn) Read(p []byte) (int, error) {
	return unix.Read(c.fd, p)
}

func (c *sockConn) Write(p []byte) (int, error) {
	return unix.Write(c.fd, p)
}

func (c *sockConn) Close() error {
	if c.closed.IsSet() {
		return ErrConnectionClosed
	}
	c.closed.Set()
	return unix.Close(c.fd)
}
