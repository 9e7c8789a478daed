// Package eventbus is an in-process, topic-addressed event dispatcher backed
// by a configurable worker pool.
//
// Producers publish named events with arbitrary typed payloads; consumers
// subscribe plain Go functions against those names. Every delivery runs
// asynchronously on a worker drawn from the pool.
//
// # Architecture
//
// Three layered components, leaves first:
//
//	┌────────────────────────────────────────────┐
//	│                   Bus                      │
//	│  - event table: name → subscription list   │
//	│  - typed handler binding and dispatch      │
//	│  - publish → task fanout                   │
//	└────────────────────────────────────────────┘
//	                 │ submits tasks
//	┌────────────────▼───────────────────────────┐
//	│               pool.Pool                    │
//	│  - worker loop: pop, run, repeat           │
//	│  - dynamic grow/shrink controller          │
//	└────────────────┬───────────────────────────┘
//	                 │ drains
//	┌────────────────▼───────────────────────────┐
//	│              queue.Queue                   │
//	│  - bounded FIFO or three-level priority    │
//	└────────────────────────────────────────────┘
//
// # Configuration
//
// A bus is configured once, at Init:
//
//	bus := eventbus.New()
//	err := bus.Init(eventbus.Config{
//	    ThreadModel: eventbus.ThreadDynamic,
//	    TaskModel:   eventbus.TaskFIFO,
//	    ThreadMin:   2,
//	    ThreadMax:   8,
//	    TaskMax:     1024,
//	})
//
// ThreadDynamic pools grow toward ThreadMax while work is queued and nobody
// is idle, and retire workers back toward ThreadMin when the queue drains.
// ThreadFixed pins the pool to ThreadMin. TaskFIFO queues hand tasks out in
// insertion order; TaskPriority queues order them High > Middle > Low.
// ConfigFromEnv loads the same fields from EVENTBUS_* variables.
//
// # Publishing and subscribing
//
//	bus.RegisterEvent("Add")
//	id, _ := bus.Subscribe("Add", func(a, b int) {
//	    fmt.Println(a + b)
//	})
//	bus.Publish("Add", 77, 88)
//	...
//	bus.Unsubscribe("Add", id)
//
// A handler is any non-variadic function returning nothing or error. Its
// signature is fixed at subscribe time; on every delivery the publish
// arguments are checked against it, and a mismatched delivery is dropped
// with a diagnostic instead of faulting the worker. A zero-parameter
// function is the fallback form: it matches any publish on its event.
//
// On a TaskPriority bus, publish with an explicit level:
//
//	bus.PublishWithPriority(eventbus.PriorityHigh, "Alert", msg)
//
// The plain Publish variant errors on a priority bus (and vice versa) with
// ErrTaskModelMismatch.
//
// # Ordering and delivery
//
// Within one publish on a FIFO bus, tasks are enqueued in subscription
// order; parallel workers may still complete them out of order. Across
// names there is no ordering. On a priority bus, higher-priority tasks run
// first regardless of name. Delivery is at-most-once per accepted task: a
// full queue rejects the publish with queue.ErrQueueFull, and tasks still
// buffered at shutdown are discarded.
//
// # Thread safety
//
// All Bus methods are safe to call from any goroutine. Handlers may run
// concurrently on several workers and are responsible for their own internal
// synchronization.
package eventbus
