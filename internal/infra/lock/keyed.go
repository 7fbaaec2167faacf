package lock

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type entry struct {
	slot chan struct{}
	refs int
}

// Keyed is an in-process mutex per key. Waiting is bounded by the context
// and by the configured timeout, whichever ends first.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
}

func NewKeyed(timeout time.Duration) *Keyed {
	return &Keyed{
		entries: make(map[string]*entry),
		timeout: timeout,
	}
}

func (k *Keyed) Acquire(ctx context.Context, key string) (func(), error) {
	e := k.ref(key)

	if k.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, k.timeout)
		defer cancel()
	}

	select {
	case e.slot <- struct{}{}:
	case <-ctx.Done():
		k.unref(key, e)
		return nil, httperr.Transient(
			"lock_timeout",
			"Agenda ocupada no momento. Tente novamente.",
			ctx.Err(),
		)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.slot
			k.unref(key, e)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *Keyed) ref(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{slot: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *Keyed) unref(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}
