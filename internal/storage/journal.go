package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const writeTimeout = 5 * time.Second

// Journal persists store snapshots fire-and-forget. The snapshot is
// marshalled synchronously so the bytes reflect state at mutation time,
// then written by a per-key flusher goroutine: snapshots of one key land
// in mutation order, and a burst of mutations coalesces to the newest
// snapshot (only the latest can matter, the whole document is rewritten
// each time). The write outcome goes to the observer hook only.
// In-memory state stays the source of truth for the session.
type Journal struct {
	store    Store
	observer Observer

	mu       sync.Mutex
	cond     *sync.Cond
	pending  map[string][]byte
	active   map[string]bool
	inflight int
}

// NewJournal wraps a Store. A nil observer drops write outcomes.
func NewJournal(store Store, observer Observer) *Journal {
	if observer == nil {
		observer = func(string, error) {}
	}
	j := &Journal{
		store:    store,
		observer: observer,
		pending:  make(map[string][]byte),
		active:   make(map[string]bool),
	}
	j.cond = sync.NewCond(&j.mu)
	return j
}

// Load reads and unmarshals the document under key into v.
// Returns false when the key has never been written.
func (j *Journal) Load(ctx context.Context, key string, v any) (bool, error) {
	data, err := j.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Write persists v under key asynchronously. Failures never reach the
// caller; they are reported through the observer.
func (j *Journal) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		j.observer(key, fmt.Errorf("encode %s: %w", key, err))
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	// A newer snapshot supersedes a queued one
	j.pending[key] = data
	if !j.active[key] {
		j.active[key] = true
		j.inflight++
		go j.flush(key)
	}
}

// flush drains the pending snapshot for key until none is left. At most
// one flusher runs per key, which keeps same-key writes ordered.
func (j *Journal) flush(key string) {
	for {
		j.mu.Lock()
		data, ok := j.pending[key]
		if !ok {
			j.active[key] = false
			j.inflight--
			if j.inflight == 0 {
				j.cond.Broadcast()
			}
			j.mu.Unlock()
			return
		}
		delete(j.pending, key)
		j.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := j.store.Set(ctx, key, data)
		cancel()
		j.observer(key, err)
	}
}

// Wait blocks until all in-flight writes have completed. Used at
// shutdown and in tests; mutators never wait.
func (j *Journal) Wait() {
	j.mu.Lock()
	for j.inflight > 0 {
		j.cond.Wait()
	}
	j.mu.Unlock()
}
