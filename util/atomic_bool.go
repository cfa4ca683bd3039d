package util

import "sync/atomic"

// AtomicBool is a one-way latch shared between the dispatch goroutine and
// callers of Shutdown/Close.
type AtomicBool struct {
	v atomic.Bool
}

func (b *AtomicBool) IsSet() bool { return b.v.Load() }
func (b *AtomicBool) Set()        { b.v.Store(true) }
