package eventbus

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/xqqyt/eventbus/pool"
	"github.com/xqqyt/eventbus/queue"
)

// Priority orders tasks on a priority-configured bus.
type Priority = queue.Priority

// The three priority levels. Plain Publish submits at PriorityMiddle; it is
// accepted only on a FIFO bus, whose queue ignores the level.
const (
	PriorityHigh   = queue.PriorityHigh
	PriorityMiddle = queue.PriorityMiddle
	PriorityLow    = queue.PriorityLow
)

// Bus is a topic-addressed event dispatcher backed by a worker pool.
//
// A Bus begins uninitialized: until Init succeeds, every operation that
// returns an error fails with ErrNotInitialized, IsEventRegistered reports
// false and Stats holds only the bus counters. Init builds the task queue and
// worker pool described by the Config; Shutdown tears them down, waiting for
// in-flight tasks and discarding buffered ones.
type Bus struct {
	table  *table
	nextID atomic.Uint64

	queue     queue.Queue
	pool      *pool.Pool
	taskModel TaskModel

	initialized atomic.Bool

	log            Logger
	panicHandler   PanicHandler
	sampleInterval time.Duration

	counters counters
}

// New constructs an uninitialized Bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		table:          newTable(),
		log:            defaultLogger(),
		sampleInterval: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init validates cfg and brings up the queue and pool. A bus initializes
// exactly once; a second call returns ErrAlreadyInitialized.
func (b *Bus) Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !b.initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	switch cfg.TaskModel {
	case TaskFIFO:
		b.queue = queue.NewFIFO(cfg.TaskMax)
	case TaskPriority:
		b.queue = queue.NewPriority(cfg.TaskMax)
	}
	b.taskModel = cfg.TaskModel

	poolOpts := []pool.Option{
		pool.WithLogger(b.log),
		pool.WithSampleInterval(b.sampleInterval),
	}
	if b.panicHandler != nil {
		poolOpts = append(poolOpts, pool.WithPanicHandler(pool.PanicHandler(b.panicHandler)))
	}
	switch cfg.ThreadModel {
	case ThreadFixed:
		poolOpts = append(poolOpts, pool.WithBounds(cfg.ThreadMin, cfg.ThreadMin))
	case ThreadDynamic:
		poolOpts = append(poolOpts, pool.WithBounds(cfg.ThreadMin, cfg.ThreadMax), pool.WithDynamic())
	}
	b.pool = pool.New(b.queue, poolOpts...)

	if err := b.pool.Start(); err != nil {
		b.initialized.Store(false)
		return err
	}

	b.log.Debugf("initialized: thread=%s task=%s workers=[%d,%d] queue=%d",
		cfg.ThreadModel, cfg.TaskModel, cfg.ThreadMin, cfg.ThreadMax, b.queue.Cap())
	return nil
}

// ensureInitialized gates every operation other than construction and Init.
func (b *Bus) ensureInitialized() error {
	if !b.initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

// RegisterEvent ensures name exists in the event table. Registering an
// existing name is a no-op.
func (b *Bus) RegisterEvent(name string) error {
	if err := b.ensureInitialized(); err != nil {
		return err
	}
	if name == "" {
		return ErrInvalidName
	}
	b.table.register(name)
	return nil
}

// TryRegisterEvent is an alias for RegisterEvent kept for callers of the
// older name; both are idempotent.
func (b *Bus) TryRegisterEvent(name string) error {
	return b.RegisterEvent(name)
}

// IsEventRegistered reports whether name exists in the event table.
func (b *Bus) IsEventRegistered(name string) bool {
	return b.table.registered(name)
}

// Subscribe appends fn to name's delivery list and returns the new
// subscription's id. fn may be any non-variadic function returning nothing
// or error; its signature is fixed now and type-checked on every delivery.
// The name must have been registered.
func (b *Bus) Subscribe(name string, fn any) (SubscriptionID, error) {
	if err := b.ensureInitialized(); err != nil {
		return 0, err
	}

	h, err := bindHandler(fn)
	if err != nil {
		return 0, err
	}

	sub := &subscription{id: SubscriptionID(b.nextID.Add(1)), handler: h}
	if !b.table.add(name, sub) {
		return 0, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return sub.id, nil
}

// SubscribeSafe behaves as Subscribe but registers name first when absent.
func (b *Bus) SubscribeSafe(name string, fn any) (SubscriptionID, error) {
	if err := b.ensureInitialized(); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, ErrInvalidName
	}
	b.table.register(name)
	return b.Subscribe(name, fn)
}

// Unsubscribe removes the first record in name's list whose id matches.
// It reports whether a record was removed; an unknown name or an id that was
// never issued (or already removed) yields false without error.
func (b *Bus) Unsubscribe(name string, id SubscriptionID) (bool, error) {
	if err := b.ensureInitialized(); err != nil {
		return false, err
	}
	return b.table.remove(name, id), nil
}

// Publish delivers args to every subscriber of name by submitting one task
// per subscriber to the queue. It is the plain variant: on a
// priority-configured bus it fails with ErrTaskModelMismatch; use
// PublishWithPriority there.
func (b *Bus) Publish(name string, args ...any) error {
	if err := b.ensureInitialized(); err != nil {
		return err
	}
	if b.taskModel == TaskPriority {
		return fmt.Errorf("%w: plain publish on a priority bus", ErrTaskModelMismatch)
	}
	return b.publish(name, PriorityMiddle, args)
}

// PublishWithPriority delivers args to every subscriber of name, submitting
// each task at the given priority. On a FIFO-configured bus it fails with
// ErrTaskModelMismatch.
func (b *Bus) PublishWithPriority(p Priority, name string, args ...any) error {
	if err := b.ensureInitialized(); err != nil {
		return err
	}
	if b.taskModel == TaskFIFO {
		return fmt.Errorf("%w: priority publish on a fifo bus", ErrTaskModelMismatch)
	}
	return b.publish(name, p, args)
}

// publish resolves the subscriber list under the table's read guard, then
// releases it before touching the queue. The args slice is captured once and
// shared by every task of this publish.
//
// A queue rejection mid-fanout does not roll back tasks already accepted;
// the returned error says how far the fanout got.
func (b *Bus) publish(name string, p Priority, args []any) error {
	subs, ok := b.table.snapshot(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	b.counters.published.Add(1)
	if len(subs) == 0 {
		return nil
	}

	for i, sub := range subs {
		if err := b.queue.Push(b.newTask(name, sub, args), p); err != nil {
			b.counters.dropped.Add(uint64(len(subs) - i))
			b.log.Warnf("publish %q: %d of %d tasks accepted: %v", name, i, len(subs), err)
			return fmt.Errorf("publish %q: %d of %d tasks accepted: %w", name, i, len(subs), err)
		}
	}
	return nil
}

// newTask binds one subscriber to this publish's shared argument slice. The
// worker pool handles panic isolation; signature mismatches and handler
// errors are settled here so they never propagate past the task.
func (b *Bus) newTask(name string, sub *subscription, args []any) queue.Task {
	return func() {
		err := sub.handler.invoke(args)
		switch {
		case err == nil:
			b.counters.delivered.Add(1)
		case isSignatureMismatch(err):
			b.counters.mismatched.Add(1)
			b.log.Warnf("dropped delivery for %q subscription %d: %v", name, sub.id, err)
		default:
			b.counters.handlerErrors.Add(1)
			b.log.Errorf("handler for %q subscription %d failed: %v", name, sub.id, err)
		}
	}
}

// Stats returns a snapshot of bus and pool counters. Values are eventually
// consistent with respect to concurrent activity.
func (b *Bus) Stats() Stats {
	s := Stats{
		Published:           b.counters.published.Load(),
		Delivered:           b.counters.delivered.Load(),
		Dropped:             b.counters.dropped.Load(),
		SignatureMismatches: b.counters.mismatched.Load(),
		HandlerErrors:       b.counters.handlerErrors.Load(),
	}
	if !b.initialized.Load() {
		return s
	}

	ps := b.pool.Stats()
	s.HandlerPanics = ps.Panicked
	s.TasksProcessed = ps.Processed
	s.Workers = ps.Workers
	s.IdleWorkers = ps.Idle
	s.PoolGrown = ps.Grown
	s.PoolShrunk = ps.Shrunk
	s.QueueDepth = b.queue.Len()
	s.QueueCapacity = b.queue.Cap()
	return s
}

// Shutdown halts the pool: no new tasks are accepted, in-flight tasks run to
// completion, buffered tasks are discarded, and every worker is joined
// before Shutdown returns.
func (b *Bus) Shutdown() {
	_ = b.ShutdownContext(context.Background())
}

// ShutdownContext is Shutdown bounded by ctx; it returns ctx.Err if the
// workers do not join in time.
func (b *Bus) ShutdownContext(ctx context.Context) error {
	if err := b.ensureInitialized(); err != nil {
		return err
	}
	return b.pool.Stop(ctx)
}
