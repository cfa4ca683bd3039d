package pollecho

import (
	"github.com/evkit/pollecho/poller"
)

// SlotTable is the fixed-capacity connection table: one poll watch entry and
// one optional connection per slot. Slot 0 belongs to the listener and never
// holds a connection. For every slot i >= 1, the watch descriptor is
// poller.InvalidFd exactly when the slot holds no connection.
type SlotTable struct {
	fds   []poller.PollFd
	conns []Conn
}

func NewSlotTable(capacity int) *SlotTable {
	t := &SlotTable{
		fds:   make([]poller.PollFd, capacity),
		conns: make([]Conn, capacity),
	}
	t.ResetAll()
	return t
}

func (t *SlotTable) ResetAll() {
	for i := range t.fds {
		t.fds[i] = poller.PollFd{Fd: poller.InvalidFd, Events: poller.EventRead}
		t.conns[i] = nil
	}
}

// Bind points slot 0 at the listening socket.
func (t *SlotTable) Bind(listenerFd int) {
	t.fds[0].Fd = int32(listenerFd)
}

func (t *SlotTable) Cap() int {
	return len(t.fds)
}

// Fds exposes the watch entries for the poll call; Revents is written in
// place by the poller.
func (t *SlotTable) Fds() []poller.PollFd {
	return t.fds
}

func (t *SlotTable) Conn(i int) Conn {
	return t.conns[i]
}

// FindFree scans slots [1, cap) for the first free slot.
func (t *SlotTable) FindFree() (int, bool) {
	for i := 1; i < len(t.fds); i++ {
		if t.fds[i].Fd == poller.InvalidFd {
			return i, true
		}
	}
	return 0, false
}

// Place hands ownership of c to slot i and watches its descriptor for reads.
func (t *SlotTable) Place(i int, c Conn) {
	t.fds[i] = poller.PollFd{Fd: int32(c.Fd()), Events: poller.EventRead}
	t.conns[i] = c
}

// Release closes the slot's connection and marks the slot free. The dispatch
// loop releases each slot at most once per terminal condition.
func (t *SlotTable) Release(i int) {
	if c := t.conns[i]; c != nil {
		_ = c.Close()
	}
	t.fds[i] = poller.PollFd{Fd: poller.InvalidFd, Events: poller.EventRead}
	t.conns[i] = nil
}

// Occupied reports the number of live connections.
func (t *SlotTable) Occupied() int {
	n := 0
	for i := 1; i < len(t.conns); i++ {
		if t.conns[i] != nil {
			n++
		}
	}
	return n
}
