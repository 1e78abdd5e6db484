package library

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(bookID, borrower string, at time.Time) *WaitlistEntry {
	return &WaitlistEntry{ID: uuid.New(), BookID: bookID, Borrower: borrower, RequestedAt: at}
}

func TestWaitlistFIFOPerBook(t *testing.T) {
	wl := NewWaitlist()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	wl.Enqueue(entry("B001", "alice", base))
	wl.Enqueue(entry("B002", "bob", base))
	wl.Enqueue(entry("B001", "carol", base.Add(time.Minute)))

	assert.Equal(t, 2, wl.Size("B001"))
	assert.Equal(t, 1, wl.Size("B002"))

	head, err := wl.Peek("B001")
	require.NoError(t, err)
	assert.Equal(t, "alice", head.Borrower)
	assert.Equal(t, 2, wl.Size("B001"), "peek must not mutate")

	first, err := wl.Dequeue("B001")
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Borrower)

	second, err := wl.Dequeue("B001")
	require.NoError(t, err)
	assert.Equal(t, "carol", second.Borrower)

	_, err = wl.Dequeue("B001")
	assert.ErrorIs(t, err, ErrEmptyWaitlist)

	// B002's queue is untouched.
	assert.Equal(t, 1, wl.Size("B002"))
}

func TestWaitlistAllEntriesInRequestOrder(t *testing.T) {
	wl := NewWaitlist()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// Same timestamp on purpose: ordering must follow enqueue order, not time.
	wl.Enqueue(entry("B002", "bob", base))
	wl.Enqueue(entry("B001", "alice", base))
	wl.Enqueue(entry("B002", "carol", base))

	all := wl.AllEntries()
	require.Len(t, all, 3)
	assert.Equal(t, "bob", all[0].Borrower)
	assert.Equal(t, "alice", all[1].Borrower)
	assert.Equal(t, "carol", all[2].Borrower)

	assert.Empty(t, wl.Entries("B999"))
}
