package library

import "fmt"

// HistoryStack is the LIFO borrowing history. Every borrow pushes a record;
// returns find the matching open record by scanning from the top, which is
// cheap because the active lending is almost always near it.
type HistoryStack struct {
	records []*BorrowRecord
}

// NewHistoryStack returns an empty history.
func NewHistoryStack() *HistoryStack {
	return &HistoryStack{}
}

// Push appends a record at the top.
func (s *HistoryStack) Push(record *BorrowRecord) {
	s.records = append(s.records, record)
}

// OpenRecordFor scans from the most recent record backward and returns the
// first open record for bookID. It fails with ErrNotFound when no open
// record exists, meaning the book is not currently borrowed.
func (s *HistoryStack) OpenRecordFor(bookID string) (*BorrowRecord, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].BookID == bookID && s.records[i].Open() {
			return s.records[i], nil
		}
	}
	return nil, fmt.Errorf("no open borrow record for book %q: %w", bookID, ErrNotFound)
}

// All returns the records most-recent-first.
func (s *HistoryStack) All() []*BorrowRecord {
	out := make([]*BorrowRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	return out
}

// Len returns the number of records.
func (s *HistoryStack) Len() int { return len(s.records) }
