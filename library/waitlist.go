package library

import (
	"fmt"
	"sort"
)

// Waitlist holds one FIFO queue of pending borrow requests per book.
// Per-book queues keep Dequeue O(1) instead of filtering one global queue.
type Waitlist struct {
	queues map[string][]*WaitlistEntry
	seq    uint64
}

// NewWaitlist returns an empty waitlist.
func NewWaitlist() *Waitlist {
	return &Waitlist{queues: make(map[string][]*WaitlistEntry)}
}

// Enqueue appends entry at the tail of its book's queue.
func (w *Waitlist) Enqueue(entry *WaitlistEntry) {
	w.seq++
	entry.seq = w.seq
	w.queues[entry.BookID] = append(w.queues[entry.BookID], entry)
}

// Dequeue removes and returns the oldest entry for bookID, strict FIFO.
// It fails with ErrEmptyWaitlist when no entries are pending.
func (w *Waitlist) Dequeue(bookID string) (*WaitlistEntry, error) {
	q := w.queues[bookID]
	if len(q) == 0 {
		return nil, fmt.Errorf("waitlist for book %q: %w", bookID, ErrEmptyWaitlist)
	}
	head := q[0]
	if len(q) == 1 {
		delete(w.queues, bookID)
	} else {
		w.queues[bookID] = q[1:]
	}
	return head, nil
}

// Peek returns the oldest entry for bookID without removing it.
func (w *Waitlist) Peek(bookID string) (*WaitlistEntry, error) {
	q := w.queues[bookID]
	if len(q) == 0 {
		return nil, fmt.Errorf("waitlist for book %q: %w", bookID, ErrEmptyWaitlist)
	}
	return q[0], nil
}

// Size returns the number of pending entries for bookID.
func (w *Waitlist) Size(bookID string) int { return len(w.queues[bookID]) }

// Entries returns the pending entries for bookID in request order.
func (w *Waitlist) Entries(bookID string) []*WaitlistEntry {
	q := w.queues[bookID]
	out := make([]*WaitlistEntry, len(q))
	copy(out, q)
	return out
}

// AllEntries returns every pending entry across all books in request order.
func (w *Waitlist) AllEntries() []*WaitlistEntry {
	var out []*WaitlistEntry
	for _, q := range w.queues {
		out = append(out, q...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
