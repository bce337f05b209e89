package state

import "sync"

// Lifecycle is the mounted/unmounted state of a view. Work that completes
// after Unmount, or after a later Mount, must not be committed.
type Lifecycle struct {
	mu        sync.Mutex
	mounted   bool
	epoch     uint64
	onUnmount []func()
}

// Mount starts a new epoch and returns it.
func (l *Lifecycle) Mount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
	l.mounted = true
	return l.epoch
}

// Unmount runs the teardown hooks registered for the current epoch.
func (l *Lifecycle) Unmount() {
	l.mu.Lock()
	if !l.mounted {
		l.mu.Unlock()
		return
	}
	l.mounted = false
	hooks := l.onUnmount
	l.onUnmount = nil
	l.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}

func (l *Lifecycle) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted
}

// Epoch is the current mount generation. Zero means never mounted.
func (l *Lifecycle) Epoch() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.epoch
}

// AliveAt reports whether the view is still in the given mount epoch.
func (l *Lifecycle) AliveAt(epoch uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted && l.epoch == epoch
}

// OnUnmount registers fn to run at the next Unmount. Hooks run in reverse
// registration order. If the view is not mounted fn runs immediately.
func (l *Lifecycle) OnUnmount(fn func()) {
	l.mu.Lock()
	if !l.mounted {
		l.mu.Unlock()
		fn()
		return
	}
	l.onUnmount = append(l.onUnmount, fn)
	l.mu.Unlock()
}
