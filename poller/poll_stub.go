//go:build !linux && !darwin && !netbsd && !freebsd && !openbsd && !dragonfly

package poller

import "errors"

// PollFd mirrors the unix layout so the package type-checks on platforms
// without a poll primitive.
type PollFd struct {
	Fd      int32
	Events  int16
	Revents int16
}

const (
	EventRead    = 0x1
	EventErr     = 0x2
	EventHup     = 0x4
	EventInvalid = 0x8
)

const InvalidFd = -1

func poll(fds []PollFd, timeoutMs int) (int, error) {
	return 0, errors.New("poller: not supported on this platform")
}
