package bind

import (
	"sort"
	"sync"
)

// Observer receives notifications about binding activity. Implementations
// must be cheap: the hooks run inside tree walks.
type Observer interface {
	// HostSeeded fires when a host runs its first data-to-node pass.
	HostSeeded()
	// ChangeDetected fires when a host first queues a pending change.
	ChangeDetected()
	// ChangeApplied fires when a queued change is folded into data.
	ChangeApplied()
}

// HostStatus is a point-in-time snapshot of one host, for inspection.
type HostStatus struct {
	ID      int64  `json:"id"`
	State   string `json:"state"`
	Pending bool   `json:"pending"`
}

type statusReporter interface {
	Status() HostStatus
}

var (
	observerMu sync.RWMutex
	observer   Observer

	registryMu sync.RWMutex
	registry   = map[statusReporter]struct{}{}
)

// SetObserver installs the process-wide binding observer. Pass nil to
// remove it.
func SetObserver(o Observer) {
	observerMu.Lock()
	observer = o
	observerMu.Unlock()
}

func observeSeed() {
	observerMu.RLock()
	o := observer
	observerMu.RUnlock()
	if o != nil {
		o.HostSeeded()
	}
}

func observeDivergence() {
	observerMu.RLock()
	o := observer
	observerMu.RUnlock()
	if o != nil {
		o.ChangeDetected()
	}
}

func observeApply() {
	observerMu.RLock()
	o := observer
	observerMu.RUnlock()
	if o != nil {
		o.ChangeApplied()
	}
}

func registerHost(h statusReporter) {
	registryMu.Lock()
	registry[h] = struct{}{}
	registryMu.Unlock()
}

func unregisterHost(h statusReporter) {
	registryMu.Lock()
	delete(registry, h)
	registryMu.Unlock()
}

// Hosts reports a snapshot of every attached host, ordered by id.
func Hosts() []HostStatus {
	registryMu.RLock()
	statuses := make([]HostStatus, 0, len(registry))
	for h := range registry {
		statuses = append(statuses, h.Status())
	}
	registryMu.RUnlock()
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })
	return statuses
}
