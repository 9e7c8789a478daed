// Package pool runs the worker goroutines that drain a task queue.
//
// Each worker loops: block in queue.Pop, run the returned task under panic
// recovery, repeat. A pool is either fixed (worker count pinned to its
// minimum) or dynamic, in which case a controller goroutine samples queue
// depth and idleness on an interval and adds or retires one worker per tick
// within the configured [min, max] bounds.
//
// Retirement uses a sentinel task: a controller cannot kill a worker blocked
// in Pop, so it enqueues a task whose only effect is to make whichever worker
// runs it exit its loop. Shutdown closes the queue, which wakes every blocked
// worker with the closed sentinel; Stop then joins all workers. Tasks still
// buffered at shutdown are discarded, tasks already running complete.
package pool
