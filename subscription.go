package eventbus

import "sync"

// SubscriptionID identifies one subscriber within a bus instance. IDs are
// allocated from a single atomic counter: unique, strictly increasing, never
// reused.
type SubscriptionID uint64

// subscription is one entry in an event's delivery list.
type subscription struct {
	id      SubscriptionID
	handler *handler
}

// table maps event names to their ordered subscription lists. Insertion
// order is delivery (enqueue) order within one publish. Names are created by
// registration and live until the bus is torn down; they are never deleted
// at runtime.
type table struct {
	mu   sync.RWMutex
	subs map[string][]*subscription
}

func newTable() *table {
	return &table{subs: make(map[string][]*subscription)}
}

// register ensures name exists. Idempotent.
func (t *table) register(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.subs[name]; !ok {
		t.subs[name] = nil
	}
}

// registered reports whether name exists.
func (t *table) registered(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.subs[name]
	return ok
}

// add appends sub to name's list. Returns false when name is unknown.
func (t *table) add(name string, sub *subscription) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.subs[name]; !ok {
		return false
	}
	t.subs[name] = append(t.subs[name], sub)
	return true
}

// remove deletes the first record in name's list whose id matches. It
// returns false both for an unknown name and for a known name without the
// id.
func (t *table) remove(name string, id SubscriptionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	subs, ok := t.subs[name]
	if !ok {
		return false
	}
	for i, sub := range subs {
		if sub.id == id {
			t.subs[name] = append(subs[:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy of name's list so publish can release the table
// guard before touching the queue. ok is false when name is unknown.
func (t *table) snapshot(name string) (subs []*subscription, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	list, ok := t.subs[name]
	if !ok {
		return nil, false
	}
	if len(list) == 0 {
		return nil, true
	}
	subs = make([]*subscription, len(list))
	copy(subs, list)
	return subs, true
}
