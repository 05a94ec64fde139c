// SPDX-License-Identifier: EPL-2.0

// Package qlock provides a FIFO mutual-exclusion queue.
//
// Unlike sync.Mutex, acquisition order is the order in which Lock was
// called, and the holder receives an explicit release function, so a
// critical section can span blocking work (decoding, DSP) while later
// requests queue up behind it.
package qlock

import (
	"context"
	"sync"
)

// Mutex is a FIFO mutual-exclusion queue. The zero value is ready to
// use. At most one holder is active at a time and waiters are granted
// the lock in arrival order. A Mutex must not be copied after first use.
type Mutex struct {
	mu   sync.Mutex
	tail chan struct{} // closed by the most recently queued holder on release
}

// Lock queues for the mutex and blocks until it is granted or ctx is
// done. On success it returns a release function that must be called on
// every exit path of the critical section (typically via defer); calling
// it more than once is harmless.
func (m *Mutex) Lock(ctx context.Context) (release func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	turn := make(chan struct{})

	m.mu.Lock()
	prev := m.tail
	m.tail = turn
	m.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			// Hand the baton on once our turn arrives so waiters
			// queued behind the abandoned request are not stranded.
			go func() {
				<-prev
				close(turn)
			}()
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { close(turn) })
	}, nil
}
