package library

import (
	"fmt"
	"hash/fnv"
)

const (
	indexInitialBuckets = 16
	indexMaxLoadFactor  = 0.75
)

type indexEntry struct {
	key  string
	node *catalogNode
}

// HashIndex maps book IDs to their catalog nodes. Collisions are resolved by
// chaining; the table doubles its bucket count whenever the load factor
// passes indexMaxLoadFactor, so operations stay amortized O(1).
//
// The index holds non-owning references: the Catalog owns every node, and the
// index must be updated in lockstep with it.
type HashIndex struct {
	buckets [][]indexEntry
	size    int
}

// NewHashIndex returns an empty index.
func NewHashIndex() *HashIndex {
	return &HashIndex{buckets: make([][]indexEntry, indexInitialBuckets)}
}

func bucketFor(key string, buckets int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(buckets))
}

// Insert registers key. It fails with ErrDuplicateKey when the key is
// already present.
func (h *HashIndex) Insert(key string, node *catalogNode) error {
	b := bucketFor(key, len(h.buckets))
	for _, e := range h.buckets[b] {
		if e.key == key {
			return fmt.Errorf("index insert %q: %w", key, ErrDuplicateKey)
		}
	}
	h.buckets[b] = append(h.buckets[b], indexEntry{key: key, node: node})
	h.size++

	if float64(h.size)/float64(len(h.buckets)) > indexMaxLoadFactor {
		h.grow()
	}
	return nil
}

// Get returns the node registered under key, or ErrNotFound.
func (h *HashIndex) Get(key string) (*catalogNode, error) {
	b := bucketFor(key, len(h.buckets))
	for _, e := range h.buckets[b] {
		if e.key == key {
			return e.node, nil
		}
	}
	return nil, fmt.Errorf("index get %q: %w", key, ErrNotFound)
}

// Delete removes the mapping for key, or fails with ErrNotFound.
func (h *HashIndex) Delete(key string) error {
	b := bucketFor(key, len(h.buckets))
	for i, e := range h.buckets[b] {
		if e.key == key {
			h.buckets[b] = append(h.buckets[b][:i], h.buckets[b][i+1:]...)
			h.size--
			return nil
		}
	}
	return fmt.Errorf("index delete %q: %w", key, ErrNotFound)
}

// Len returns the number of registered keys.
func (h *HashIndex) Len() int { return h.size }

func (h *HashIndex) grow() {
	old := h.buckets
	h.buckets = make([][]indexEntry, len(old)*2)
	for _, bucket := range old {
		for _, e := range bucket {
			b := bucketFor(e.key, len(h.buckets))
			h.buckets[b] = append(h.buckets[b], e)
		}
	}
}
