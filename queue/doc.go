// Package queue provides the bounded task queues that feed the worker pool.
//
// Two disciplines are available:
//
//   - FIFO: tasks are handed out in insertion order.
//   - Priority: three discrete levels (High > Middle > Low); within a level,
//     insertion order.
//
// Both variants share the same contract. Push never blocks: it either accepts
// the task or rejects it with ErrQueueFull. Pop blocks while the queue is
// empty and returns (nil, false) once the queue has been closed, which is how
// workers learn to exit their loops. Closing the queue discards any tasks
// still buffered.
//
// A queue is safe for any number of concurrent producers and consumers. No
// lock is held while a task executes; the queue only covers storage and
// hand-off.
package queue
