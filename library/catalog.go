package library

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the ordering of AllSortedBy.
type SortKey string

const (
	SortNone     SortKey = "none"
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
)

// ParseSortKey maps user input onto a SortKey, defaulting blank input to
// SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone, "":
		return SortNone, nil
	case SortByTitle:
		return SortByTitle, nil
	case SortByAuthor:
		return SortByAuthor, nil
	}
	return SortNone, fmt.Errorf("sort key %q: %w", s, ErrInvalidInput)
}

type catalogNode struct {
	book *Book
	prev *catalogNode
	next *catalogNode
}

// Catalog is the ordered book collection: a doubly linked chain of nodes in
// insertion order, paired with a HashIndex from ID to node so lookups and
// unlinks are O(1). The catalog exclusively owns all nodes; the index only
// back-references them, which keeps removal consistent in one place.
type Catalog struct {
	head  *catalogNode
	tail  *catalogNode
	index *HashIndex
	size  int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: NewHashIndex()}
}

// Add appends book at the tail and registers it in the index. It fails with
// ErrDuplicateKey when the ID is already present.
func (c *Catalog) Add(book *Book) error {
	node := &catalogNode{book: book}
	if err := c.index.Insert(book.ID, node); err != nil {
		return err
	}

	if c.tail == nil {
		c.head = node
	} else {
		node.prev = c.tail
		c.tail.next = node
	}
	c.tail = node
	c.size++
	return nil
}

// Remove unlinks the book with the given ID and drops it from the index.
// It fails with ErrNotFound when the ID is unknown. State checks (borrowed,
// pending waitlist) belong to the Library service.
func (c *Catalog) Remove(id string) error {
	node, err := c.index.Get(id)
	if err != nil {
		return err
	}

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		c.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		c.tail = node.prev
	}
	node.prev, node.next = nil, nil
	c.size--

	// Index and chain were verified consistent by the Get above.
	return c.index.Delete(id)
}

// FindByID returns the book with the given ID via the index.
func (c *Catalog) FindByID(id string) (*Book, error) {
	node, err := c.index.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("book %q: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return node.book, nil
}

// FindByTitle returns all books whose title contains the query,
// case-insensitively, in catalog order. An empty result is not an error.
func (c *Catalog) FindByTitle(query string) []*Book {
	q := strings.ToLower(query)
	var results []*Book
	for node := c.head; node != nil; node = node.next {
		if strings.Contains(strings.ToLower(node.book.Title), q) {
			results = append(results, node.book)
		}
	}
	return results
}

// All returns the books in insertion order.
func (c *Catalog) All() []*Book {
	books := make([]*Book, 0, c.size)
	for node := c.head; node != nil; node = node.next {
		books = append(books, node.book)
	}
	return books
}

// AllSortedBy returns a new slice sorted ascending by the key,
// case-insensitively, with ties broken by ID so the order is deterministic.
// The stored catalog order is never touched; SortNone yields insertion order.
func (c *Catalog) AllSortedBy(key SortKey) ([]*Book, error) {
	books := c.All()
	var field func(*Book) string
	switch key {
	case SortNone:
		return books, nil
	case SortByTitle:
		field = func(b *Book) string { return b.Title }
	case SortByAuthor:
		field = func(b *Book) string { return b.Author }
	default:
		return nil, fmt.Errorf("sort key %q: %w", key, ErrInvalidInput)
	}

	sort.SliceStable(books, func(i, j int) bool {
		a, b := strings.ToLower(field(books[i])), strings.ToLower(field(books[j]))
		if a != b {
			return a < b
		}
		return books[i].ID < books[j].ID
	})
	return books, nil
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int { return c.size }
