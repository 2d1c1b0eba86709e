package hashing

// entry identifies a subtree: a position searched to a given depth.
type entry struct {
	key   uint64
	depth int
}

// CountTable remembers node counts of subtrees already searched. It is
// not safe for concurrent use; see ThreadSafeCountTable.
type CountTable struct {
	counts      map[entry]uint64
	maxCapacity int
	hits        int
}

// NewCountTable creates a table. maxCapacity of 0 means unlimited; once
// full, new counts are dropped rather than evicting old ones.
func NewCountTable(maxCapacity int) *CountTable {
	return &CountTable{
		counts:      make(map[entry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for key at depth.
func (t *CountTable) Lookup(key uint64, depth int) (uint64, bool) {
	n, ok := t.counts[entry{key, depth}]
	if ok {
		t.hits++
	}
	return n, ok
}

// Store records the count for key at depth unless the table is full.
func (t *CountTable) Store(key uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.counts[entry{key, depth}] = nodes
}

// Len returns the number of stored counts.
func (t *CountTable) Len() int {
	return len(t.counts)
}

// Hits returns how many lookups found a count.
func (t *CountTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *CountTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.counts) >= t.maxCapacity
}
