//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package poller

import "golang.org/x/sys/unix"

// PollFd is one watch entry: the descriptor, the events watched for, and
// the events reported by the last Wait.
type PollFd = unix.PollFd

const (
	EventRead    = unix.POLLIN | unix.POLLPRI
	EventErr     = unix.POLLERR
	EventHup     = unix.POLLHUP
	EventInvalid = unix.POLLNVAL
)

// InvalidFd marks a watch entry that holds no descriptor; poll skips
// negative descriptors and reports no events for them.
const InvalidFd = -1

func poll(fds []PollFd, timeoutMs int) (int, error) {
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}
