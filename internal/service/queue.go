package service

import (
	"sync"

	"dbgvis/internal/vis"
)

// Command is a deferred mutation of the visualizer tree. Commands are built
// by producers with copied arguments and executed one by one on the consumer
// goroutine.
type Command func(root *vis.Visualizer)

// CommandQueue is the mutex-guarded FIFO bridging producer goroutines to the
// single consumer goroutine. The mutex is held only for an O(1) append or an
// O(1) swap-drain, never across command execution, so producers never block
// on render work.
type CommandQueue struct {
	mu      sync.Mutex
	pending []Command
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Enqueue appends a command. Callable from any goroutine; never blocks on
// consumer work.
func (q *CommandQueue) Enqueue(cmd Command) {
	if cmd == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain swaps out the entire pending slice and returns it. Commands are
// returned in submission order; the caller executes them outside the lock.
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	return pending
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Discard drops all pending commands and returns how many were dropped.
// Used during shutdown; there is no post-shutdown delivery guarantee.
func (q *CommandQueue) Discard() int {
	q.mu.Lock()
	n := len(q.pending)
	q.pending = nil
	q.mu.Unlock()
	return n
}
