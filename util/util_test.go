//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package util

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestSockaddrToAddrInet4(t *testing.T) {
	sa := &unix.SockaddrInet4{Port: 8080}
	copy(sa.Addr[:], net.IPv4(127, 0, 0, 1).To4())

	addr := SockaddrToAddr(sa)
	taddr, ok := addr.(*net.TCPAddr)
	assert.True(t, ok)
	assert.Equal(t, "127.0.0.1", taddr.IP.String())
	assert.Equal(t, 8080, taddr.Port)
}

func TestSockaddrToAddrInet6(t *testing.T) {
	sa := &unix.SockaddrInet6{Port: 9090}
	copy(sa.Addr[:], net.ParseIP("::1").To16())

	addr := SockaddrToAddr(sa)
	taddr, ok := addr.(*net.TCPAddr)
	assert.True(t, ok)
	assert.Equal(t, "::1", taddr.IP.String())
	assert.Equal(t, 9090, taddr.Port)
}

func TestSockaddrToAddrUnknown(t *testing.T) {
	assert.Nil(t, SockaddrToAddr(nil))
}

func TestAtomicBool(t *testing.T) {
	var b AtomicBool
	assert.False(t, b.IsSet())
	b.Set()
	assert.True(t, b.IsSet())
	b.Set()
	assert.True(t, b.IsSet())
}
