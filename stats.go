package eventbus

import "sync/atomic"

// counters holds the bus-side atomic counters. Pool counters live in the
// pool and are merged into the Stats snapshot.
type counters struct {
	published     atomic.Uint64
	delivered     atomic.Uint64
	dropped       atomic.Uint64
	mismatched    atomic.Uint64
	handlerErrors atomic.Uint64
}

// Stats is a read-only snapshot of bus and pool counters, the surface driver
// code polls for status reporting.
type Stats struct {
	// Published is the number of publish calls that reached a registered
	// event, including ones whose tasks the queue then rejected.
	Published uint64

	// Delivered is the number of handler invocations that completed
	// without error.
	Delivered uint64

	// Dropped is the number of tasks never enqueued because the queue
	// rejected a push: the rejected task plus the rest of that publish's
	// fanout.
	Dropped uint64

	// SignatureMismatches is the number of deliveries dropped because the
	// payload types did not match the subscriber's signature.
	SignatureMismatches uint64

	// HandlerErrors is the number of handler invocations that returned an
	// error.
	HandlerErrors uint64

	// HandlerPanics is the number of handler invocations that panicked.
	HandlerPanics uint64

	// TasksProcessed is the total number of tasks run by the pool.
	TasksProcessed uint64

	// QueueDepth is the current number of buffered tasks.
	QueueDepth int

	// QueueCapacity is the immutable queue capacity.
	QueueCapacity int

	// Workers is the current number of live workers.
	Workers int

	// IdleWorkers is the number of workers blocked waiting for a task.
	IdleWorkers int

	// PoolGrown and PoolShrunk count the dynamic controller's decisions.
	PoolGrown  uint64
	PoolShrunk uint64
}
