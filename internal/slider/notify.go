package slider

import "sync"

// Listener receives the full state after every committed mutation.
type Listener func(State)

// ChangeListener receives one Change per interval touched by a mutation.
type ChangeListener func(Change)

// Subscription represents an active listener registration.
type Subscription struct {
	id       uint64
	notifier *notifier
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.remove(s.id)
	}
}

type entry struct {
	id       uint64
	onState  Listener
	onChange ChangeListener
}

// notifier keeps listeners in registration order.
type notifier struct {
	mu      sync.RWMutex
	entries []entry
	nextID  uint64
}

func (n *notifier) add(e entry) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	e.id = n.nextID
	n.entries = append(n.entries, e)
	return &Subscription{id: e.id, notifier: n}
}

func (n *notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.entries {
		if e.id == id {
			n.entries = append(n.entries[:i:i], n.entries[i+1:]...)
			return
		}
	}
}

func (n *notifier) snapshot() []entry {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// emit calls state listeners first, then change listeners once per change.
func (n *notifier) emit(st State, changes []Change) {
	entries := n.snapshot()
	for _, e := range entries {
		if e.onState != nil {
			e.onState(st)
		}
	}
	for _, e := range entries {
		if e.onChange == nil {
			continue
		}
		for _, c := range changes {
			e.onChange(c)
		}
	}
}
