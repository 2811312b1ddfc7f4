package document

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// lockTable serializes mutations per document id. Operations on different
// documents never contend; two operations on the same document queue on a
// weighted semaphore with a bounded wait. Entries are reference-counted
// and evicted when the last holder or waiter lets go, so the table stays
// bounded by the number of in-flight operations rather than growing with
// every document id the process has ever seen.
type lockTable struct {
	mu      sync.Mutex
	locks   map[string]*lockEntry
	timeout time.Duration
}

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

func newLockTable(timeout time.Duration) *lockTable {
	return &lockTable{
		locks:   make(map[string]*lockEntry),
		timeout: timeout,
	}
}

// checkout returns the document's entry, creating it on first use. Every
// checkout must be paired with a checkin.
func (t *lockTable) checkout(documentID string) *lockEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.locks[documentID]
	if !ok {
		entry = &lockEntry{sem: semaphore.NewWeighted(1)}
		t.locks[documentID] = entry
	}
	entry.refs++
	return entry
}

func (t *lockTable) checkin(documentID string, entry *lockEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(t.locks, documentID)
	}
}

func (t *lockTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.locks)
}

// acquire takes the document's exclusive lock. A caller that cancels before
// acquisition sees its own context error and nothing has happened; waiting
// out the bound surfaces ErrBusy so the caller can retry.
func (t *lockTable) acquire(ctx context.Context, documentID string) (release func(), err error) {
	entry := t.checkout(documentID)

	waitCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if err := entry.sem.Acquire(waitCtx, 1); err != nil {
		t.checkin(documentID, entry)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			return nil, ErrBusy
		}
		return nil, err
	}

	return func() {
		entry.sem.Release(1)
		t.checkin(documentID, entry)
	}, nil
}
