package library

import (
	"errors"
	"fmt"
	"testing"
)

func TestIndexInsertGetDelete(t *testing.T) {
	idx := NewHashIndex()
	node := &catalogNode{book: &Book{ID: "B001"}}

	if err := idx.Insert("B001", node); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := idx.Insert("B001", node); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}

	got, err := idx.Get("B001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != node {
		t.Fatalf("get returned wrong node")
	}
	if _, err := idx.Get("B999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if err := idx.Delete("B001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := idx.Delete("B001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("want empty index, len=%d", idx.Len())
	}
}

func TestIndexRehashKeepsAllKeys(t *testing.T) {
	idx := NewHashIndex()
	const n = 500 // forces several bucket doublings

	for i := 0; i < n; i++ {
		key := fmt.Sprintf("B%04d", i)
		if err := idx.Insert(key, &catalogNode{book: &Book{ID: key}}); err != nil {
			t.Fatalf("insert %s: %v", key, err)
		}
	}
	if idx.Len() != n {
		t.Fatalf("want %d keys, got %d", n, idx.Len())
	}

	for i := 0; i < n; i++ {
		key := fmt.Sprintf("B%04d", i)
		node, err := idx.Get(key)
		if err != nil {
			t.Fatalf("get %s after rehash: %v", key, err)
		}
		if node.book.ID != key {
			t.Fatalf("key %s maps to node %s", key, node.book.ID)
		}
	}
}
