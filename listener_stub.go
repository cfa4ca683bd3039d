//go:build !linux && !darwin && !netbsd && !freebsd && !openbsd && !dragonfly

package pollecho

import "errors"

func listenTCP(addr string) (Listener, error) {
	return nil, errors.New("pollecho: not supported on this platform")
}
