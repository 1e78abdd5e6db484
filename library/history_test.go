package library

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(bookID, borrower string, at time.Time) *BorrowRecord {
	return &BorrowRecord{ID: uuid.New(), BookID: bookID, Borrower: borrower, BorrowedAt: at}
}

func TestHistoryOpenRecordScansFromTop(t *testing.T) {
	stack := NewHistoryStack()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	r1 := record("B001", "alice", base)
	r1.ReturnedAt = base.Add(time.Hour)
	r2 := record("B001", "bob", base.Add(2*time.Hour))
	r3 := record("B002", "carol", base.Add(3*time.Hour))
	stack.Push(r1)
	stack.Push(r2)
	stack.Push(r3)

	// The most recent open record for B001 is r2, not the closed r1.
	open, err := stack.OpenRecordFor("B001")
	require.NoError(t, err)
	assert.Same(t, r2, open)

	open, err = stack.OpenRecordFor("B002")
	require.NoError(t, err)
	assert.Same(t, r3, open)

	r2.ReturnedAt = base.Add(4 * time.Hour)
	_, err = stack.OpenRecordFor("B001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryAllIsMostRecentFirst(t *testing.T) {
	stack := NewHistoryStack()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	r1 := record("B001", "alice", base)
	r2 := record("B002", "bob", base.Add(time.Hour))
	stack.Push(r1)
	stack.Push(r2)

	all := stack.All()
	require.Len(t, all, 2)
	assert.Same(t, r2, all[0])
	assert.Same(t, r1, all[1])
	assert.Equal(t, 2, stack.Len())
}
