package poller

// Poller blocks until at least one watched descriptor in fds is ready,
// stores per-descriptor readiness in the Revents field, and returns the
// number of ready descriptors. A timeout of -1 blocks indefinitely; a
// return of 0 means the timeout expired with nothing ready.
type Poller interface {
	Wait(fds []PollFd, timeoutMs int) (int, error)
}

type syscallPoller struct{}

// New returns the Poller backed by the host's poll primitive.
func New() Poller {
	return syscallPoller{}
}

func (syscallPoller) Wait(fds []PollFd, timeoutMs int) (int, error) {
	return poll(fds, timeoutMs)
}
