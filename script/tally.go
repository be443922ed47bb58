package script

// Entry is one key of a Tally together with its count.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// Tally counts occurrences of keys and remembers the order in which each
// distinct key was first seen.
type Tally[K comparable] struct {
	keys   []K
	counts map[K]int
	total  int
}

func newTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

func (t *Tally[K]) add(k K) {
	if _, seen := t.counts[k]; !seen {
		t.keys = append(t.keys, k)
	}
	t.counts[k]++
	t.total++
}

// Count returns the count for k, or 0 if k was never seen.
func (t *Tally[K]) Count(k K) int {
	return t.counts[k]
}

// Len returns the number of distinct keys.
func (t *Tally[K]) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Tally[K]) Total() int {
	return t.total
}

// Keys returns the distinct keys in first-occurrence order.
func (t *Tally[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns every key with its count, in first-occurrence order.
func (t *Tally[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry[K]{Key: k, Count: t.counts[k]}
	}
	return out
}
