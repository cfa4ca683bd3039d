package pollecho

import (
	"fmt"
	"net"
	"syscall"

	"github.com/evkit/pollecho/evlog"
	"github.com/evkit/pollecho/poller"
	"github.com/evkit/pollecho/util"
)

// Server owns the listener, the slot table, and the shared read buffer, and
// drives them from a single goroutine. The buffer is reused across every
// read because one connection's read-then-write completes before the next
// slot is serviced.
type Server struct {
	ln         Listener
	poll       poller.Poller
	table      *SlotTable
	buf        []byte
	handler    Handler
	timeout    int
	inShutdown util.AtomicBool
}

func NewServer(opts *Options) (*Server, error) {
	addr := opts.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := listenTCP(addr)
	if err != nil {
		return nil, err
	}
	return newServer(ln, poller.New(), opts), nil
}

func newServer(ln Listener, poll poller.Poller, opts *Options) *Server {
	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	timeout := opts.PollTimeoutMs
	if timeout <= 0 {
		timeout = -1
	}
	handler := opts.Handler
	if handler == nil {
		handler = &echoHandler{}
	}

	srv := &Server{
		ln:      ln,
		poll:    poll,
		table:   NewSlotTable(maxConns),
		buf:     make([]byte, bufSize),
		handler: handler,
		timeout: timeout,
	}
	srv.table.Bind(ln.Fd())
	return srv
}

func (srv *Server) Addr() net.Addr {
	return srv.ln.Addr()
}

// Run ticks until a fatal condition: a poll error, a full slot table, or
// Shutdown. Connection-level faults never reach the caller.
func (srv *Server) Run() error {
	evlog.Infof("[pollecho]: serving on %s, capacity %d", srv.ln.Addr(), srv.table.Cap())
	for {
		if err := srv.RunTick(); err != nil {
			return err
		}
	}
}

// RunTick performs one dispatch cycle: poll, service existing connections in
// slot order, then service the listener. A connection accepted this tick is
// first polled on the next one.
func (srv *Server) RunTick() error {
	if srv.inShutdown.IsSet() {
		srv.releaseAll()
		return ErrServerClosed
	}

	fds := srv.table.Fds()
	ready, err := srv.poll.Wait(fds, srv.timeout)
	if err != nil {
		return fmt.Errorf("pollecho: poll: %w", err)
	}
	if ready == 0 {
		return nil
	}

	remain := ready
	for i := 1; i < srv.table.Cap() && remain > 0; i++ {
		rev := fds[i].Revents
		if rev == 0 {
			continue
		}
		fds[i].Revents = 0
		remain--
		srv.serviceSlot(i, rev)
	}

	if fds[0].Revents != 0 {
		fds[0].Revents = 0
		return srv.serviceAccept()
	}
	return nil
}

// Shutdown stops the loop; Run returns ErrServerClosed on its next tick
// after releasing every live slot. Safe to call from another goroutine: the
// table is only ever touched by the loop itself.
func (srv *Server) Shutdown() error {
	if srv.inShutdown.IsSet() {
		return ErrServerClosed
	}
	srv.inShutdown.Set()

	// The dead descriptor reports EventInvalid on the next poll call. A
	// poll already blocked with an infinite timeout only notices once some
	// other readiness arrives, so stoppable embedders run with a finite
	// PollTimeoutMs.
	return srv.ln.Close()
}

func (srv *Server) serviceSlot(i int, rev int16) {
	c := srv.table.Conn(i)
	if c == nil {
		return
	}

	if rev&(poller.EventErr|poller.EventHup|poller.EventInvalid) != 0 {
		evlog.Debugf("[slot %d]: terminal event %#x, remote %s", i, rev, c.RemoteAddr())
		srv.closeSlot(i, c)
		return
	}
	if rev&poller.EventRead == 0 {
		return
	}

	n, err := c.Read(srv.buf)
	if n == 0 || err != nil {
		if err == syscall.EAGAIN {
			return
		}
		if err != nil {
			evlog.Errorf("[conn.Read]: %s", err)
		}
		srv.closeSlot(i, c)
		return
	}
	evlog.Debugf("[slot %d]: read %d bytes from %s", i, n, c.RemoteAddr())

	out := srv.handler.OnData(c, srv.buf[:n])
	if len(out) == 0 {
		return
	}
	// One write call; a short write is not detected or retried.
	if _, err := c.Write(out); err != nil {
		if err == syscall.EAGAIN {
			return
		}
		evlog.Errorf("[conn.Write]: %s", err)
		srv.closeSlot(i, c)
	}
}

func (srv *Server) serviceAccept() error {
	c, err := srv.ln.Accept()
	if err != nil {
		if err != syscall.EAGAIN {
			evlog.Errorf("[listener.Accept]: %s", err)
		}
		return nil
	}

	i, ok := srv.table.FindFree()
	if !ok {
		_ = c.Close()
		return ErrSlotTableFull
	}
	srv.table.Place(i, c)
	srv.handler.OnOpen(c)

	evlog.Debugf("[accept]: remote %s -> slot %d", c.RemoteAddr(), i)
	return nil
}

func (srv *Server) closeSlot(i int, c Conn) {
	srv.handler.OnClose(c)
	srv.table.Release(i)
}

func (srv *Server) releaseAll() {
	for i := 1; i < srv.table.Cap(); i++ {
		if c := srv.table.Conn(i); c != nil {
			srv.closeSlot(i, c)
		}
	}
}
