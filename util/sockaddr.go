//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package util

import (
	"net"

	"golang.org/x/sys/unix"
)

// SockaddrToAddr converts an accept/getsockname result into a net.Addr for
// diagnostics. Unknown sockaddr kinds map to nil.
func SockaddrToAddr(sa unix.Sockaddr) net.Addr {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return &net.TCPAddr{
			IP:   append([]byte{}, sa.Addr[:]...),
			Port: sa.Port,
		}
	case *unix.SockaddrInet6:
		var zone string
		if sa.ZoneId != 0 {
			if ifi, err := net.InterfaceByIndex(int(sa.ZoneId)); err == nil {
				zone = ifi.Name
			}
		}
		return &net.TCPAddr{
			IP:   append([]byte{}, sa.Addr[:]...),
			Port: sa.Port,
			Zone: zone,
		}
	}
	return nil
}
