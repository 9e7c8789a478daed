package pool

import (
	"time"

	"github.com/xqqyt/eventbus/queue"
)

// controller is the supervisor loop of a dynamic pool. Once per sample
// interval it looks at queue depth and idleness and takes at most one step:
// spawn a worker or retire one.
func (p *Pool) controller() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.adjust()
		}
	}
}

// adjust applies one grow or shrink step.
//
// Grow: work is queued, nobody is idle, and there is headroom.
// Shrink: the queue is drained, more than ceil(workers/2) workers sit idle, and the
// pool is above its minimum. Workers already marked for retirement count as
// gone so consecutive ticks cannot shrink below the minimum.
func (p *Pool) adjust() {
	qlen := p.queue.Len()
	idle := int(p.idle.Load())
	workers := int(p.count.Load())
	effective := workers - int(p.pendingRetire.Load())

	switch {
	case qlen > 0 && idle == 0 && workers < p.max:
		p.spawn()
		p.grown.Add(1)
		p.log.Debugf("pool: grew to %d workers (queue depth %d)", workers+1, qlen)

	case qlen == 0 && idle > (workers+1)/2 && effective > p.min:
		if err := p.queue.Push(p.retireSentinel(), queue.PriorityHigh); err != nil {
			p.log.Warnf("pool: retire sentinel rejected: %v", err)
			return
		}
		p.pendingRetire.Add(1)
	}
}

// retireSentinel builds the task that retires whichever worker claims it.
// The send never blocks: the channel is sized to the pool maximum and the
// controller enqueues at most one sentinel per pending claim.
func (p *Pool) retireSentinel() queue.Task {
	return func() {
		p.retire <- struct{}{}
	}
}
