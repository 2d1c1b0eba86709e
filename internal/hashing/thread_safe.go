package hashing

import "sync"

// ThreadSafeCountTable wraps CountTable with mutex protection for
// concurrent access.
type ThreadSafeCountTable struct {
	table *CountTable
	mu    sync.Mutex
}

// NewThreadSafeCountTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeCountTable(maxCapacity int) *ThreadSafeCountTable {
	return &ThreadSafeCountTable{
		table: NewCountTable(maxCapacity),
	}
}

// Lookup returns the stored count for key at depth.
func (t *ThreadSafeCountTable) Lookup(key uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key, depth)
}

// Store records the count for key at depth unless the table is full.
func (t *ThreadSafeCountTable) Store(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, depth, nodes)
}

// Len returns the number of stored counts.
func (t *ThreadSafeCountTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns how many lookups found a count.
func (t *ThreadSafeCountTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}
