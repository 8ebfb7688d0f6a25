package realtime

import (
	"sync"
)

// Container holds the latest snapshot per collection. Handlers read from it
// instead of importing module-level state; each screen depends only on the
// slice it reads. Snapshots are replaced whole, never mutated in place.
type Container struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewContainer() *Container {
	return &Container{snapshots: make(map[string]Snapshot)}
}

// Apply stores a newer snapshot for its collection.
func (c *Container) Apply(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[snap.Collection] = snap
}

// Latest returns the last-known snapshot for a collection. A subscription
// failure leaves the previous snapshot in place, so readers never see a
// false empty state.
func (c *Container) Latest(collection string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.snapshots[collection]
	return snap, ok
}

// Consume drains a subscriber's updates into the container until the
// subscription closes.
func (c *Container) Consume(sub *Subscriber) {
	for snap := range sub.Updates() {
		c.Apply(snap)
	}
}
