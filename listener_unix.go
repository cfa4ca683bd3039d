//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package pollecho

import (
	"net"

	"golang.org/x/sys/unix"

	"github.com/evkit/pollecho/util"
)

const listenBacklog = 128

type tcpListener struct {
	fd     int
	addr   *net.TCPAddr
	closed util.AtomicBool
}

func listenTCP(addr string) (Listener, error) {
	taddr, err := net.ResolveTCPAddr("tcp4", addr)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, err
	}
	if err := listenerSockopts(fd); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	sa := &unix.SockaddrInet4{Port: taddr.Port}
	if ip := taddr.IP.To4(); ip != nil {
		copy(sa.Addr[:], ip)
	}
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	if err := unix.Listen(fd, listenBacklog); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	bound, err := unix.Getsockname(fd)
	if err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	return &tcpListener{
		fd:   fd,
		addr: util.SockaddrToAddr(bound).(*net.TCPAddr),
	}, nil
}

func listenerSockopts(fd int) error {
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return err
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1); err != nil {
		return err
	}
	return unix.SetNonblock(fd, true)
}

func (l *tcpListener) Fd() int {
	return l.fd
}

func (l *tcpListener) Addr() net.Addr {
	return l.addr
}

func (l *tcpListener) Accept() (Conn, error) {
	nfd, sa, err := unix.Accept(l.fd)
	if err != nil {
		return nil, err
	}
	if err := unix.SetNonblock(nfd, true); err != nil {
		_ = unix.Close(nfd)
		return nil, err
	}
	return newSockConn(nfd, util.SockaddrToAddr(sa)), nil
}

func (l *tcpListener) Close() error {
	if l.closed.IsSet() {
		return ErrConnectionClosed
	}
	l.closed.Set()
	return unix.Close(l.fd)
}
