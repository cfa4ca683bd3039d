//go:build linux || darwin || netbsd || freebsd || openbsd || dragonfly

package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestWaitTimeoutReportsNothing(t *testing.T) {
	var p [2]int
	assert.NoError(t, unix.Pipe(p[:]))
	defer unix.Close(p[0])
	defer unix.Close(p[1])

	fds := []PollFd{{Fd: int32(p[0]), Events: EventRead}}

	n, err := New().Wait(fds, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Zero(t, fds[0].Revents)
}

func TestWaitReportsReadable(t *testing.T) {
	var p [2]int
	assert.NoError(t, unix.Pipe(p[:]))
	defer unix.Close(p[0])
	defer unix.Close(p[1])

	_, err := unix.Write(p[1], []byte("x"))
	assert.NoError(t, err)

	fds := []PollFd{{Fd: int32(p[0]), Events: EventRead}}

	n, err := New().Wait(fds, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, fds[0].Revents&EventRead)
}

func TestWaitSkipsInvalidDescriptor(t *testing.T) {
	var p [2]int
	assert.NoError(t, unix.Pipe(p[:]))
	defer unix.Close(p[0])
	defer unix.Close(p[1])

	_, err := unix.Write(p[1], []byte("x"))
	assert.NoError(t, err)

	fds := []PollFd{
		{Fd: InvalidFd, Events: EventRead},
		{Fd: int32(p[0]), Events: EventRead},
	}

	n, err := New().Wait(fds, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, fds[0].Revents)
	assert.NotZero(t, fds[1].Revents&EventRead)
}

func TestWaitReportsPeerClose(t *testing.T) {
	var p [2]int
	assert.NoError(t, unix.Pipe(p[:]))
	defer unix.Close(p[0])

	assert.NoError(t, unix.Close(p[1]))

	fds := []PollFd{{Fd: int32(p[0]), Events: EventRead}}

	n, err := New().Wait(fds, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotZero(t, fds[0].Revents&(EventRead|EventHup))
}
