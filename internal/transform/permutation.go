package transform

import (
	"container/list"
	"strings"
	"sync"

	"github.com/Conceptual-Machines/simfile-core/internal/notefield"
)

// PermutationGroupOfSequence computes every lane relabeling of a whole row
// sequence: for each of the W! permutations of [0, W), it applies that one
// permutation to every row in seq, producing a relabeled sequence.
// Sequences that come out identical under two different permutations (a
// symmetric pattern, e.g. all lanes empty) are deduplicated, preserving
// first-seen order (spec.md §4.H). seq must be non-empty and every row the
// same width; PermutationGroupOfSequence returns nil for an empty seq.
func PermutationGroupOfSequence[T rowCarrier[T]](seq []T) [][]T {
	if len(seq) == 0 {
		return nil
	}
	width := seq[0].RowValue().Width()

	seen := make(map[string]struct{})
	var out [][]T
	for _, perm := range notefield.AllLanePermutations(width) {
		transformed := make([]T, len(seq))
		var key strings.Builder
		for i, r := range seq {
			newRow := r.RowValue().SwitchLanes(perm)
			transformed[i] = r.WithRow(newRow)
			key.WriteString(newRow.String())
			key.WriteByte('|')
		}

		k := key.String()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, transformed)
	}
	return out
}

// PermutationCache is a bounded LRU memoizing Row.PermutationGroup, per
// Design Notes §9 ("Memoize per row; bound the cache... because the
// combinatorics explode" — an 8-lane row already has 8! = 40320
// permutations). Safe for concurrent use.
type PermutationCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type permutationCacheEntry struct {
	key    string
	result []notefield.Row
}

// NewPermutationCache builds a cache holding at most capacity distinct
// rows' permutation groups. capacity <= 0 disables eviction (unbounded).
func NewPermutationCache(capacity int) *PermutationCache {
	return &PermutationCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns row.PermutationGroup(), computing and caching it on a miss
// and promoting it to most-recently-used on a hit.
func (c *PermutationCache) Get(row notefield.Row) []notefield.Row {
	key := row.String()

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		result := el.Value.(*permutationCacheEntry).result
		c.mu.Unlock()
		return result
	}
	c.mu.Unlock()

	result := row.PermutationGroup()

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*permutationCacheEntry).result
	}
	el := c.order.PushFront(&permutationCacheEntry{key: key, result: result})
	c.entries[key] = el
	if c.capacity > 0 {
		for c.order.Len() > c.capacity {
			oldest := c.order.Back()
			if oldest == nil {
				break
			}
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*permutationCacheEntry).key)
		}
	}
	return result
}

// Len reports the number of distinct rows currently cached.
func (c *PermutationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
