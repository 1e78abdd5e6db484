package library

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BorrowStatus reports how a borrow request was resolved.
type BorrowStatus string

const (
	// StatusBorrowed means the book was handed to the borrower.
	StatusBorrowed BorrowStatus = "borrowed"
	// StatusWaitlisted means the book was unavailable and the request was
	// queued instead.
	StatusWaitlisted BorrowStatus = "waitlisted"
)

// BorrowOutcome is the result of a successful BorrowBook call.
type BorrowOutcome struct {
	Status BorrowStatus
	// Record is set when Status is StatusBorrowed.
	Record *BorrowRecord
	// Entry and QueuePosition (1-based) are set when Status is
	// StatusWaitlisted.
	Entry         *WaitlistEntry
	QueuePosition int
}

// ReturnOutcome is the result of a successful ReturnBook call.
type ReturnOutcome struct {
	// Returned is the record that was closed.
	Returned *BorrowRecord
	// Assigned is the fresh open record created for the head of the
	// waitlist, nil when the book simply became available.
	Assigned *BorrowRecord
}

// Reassigned reports whether the book went straight to a waiting borrower.
func (o ReturnOutcome) Reassigned() bool { return o.Assigned != nil }

// Library orchestrates the catalog, index, history, and waitlist. It is the
// only component allowed to mutate more than one of them in a single
// operation, and it validates every precondition before the first mutation so
// a failed command leaves all structures unchanged.
//
// Construct instances with NewLibrary; operations are not safe for
// concurrent use.
type Library struct {
	catalog  *Catalog
	history  *HistoryStack
	waitlist *Waitlist
	now      func() time.Time
}

// Option configures a Library.
type Option func(*Library)

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// NewLibrary returns an empty library service.
func NewLibrary(opts ...Option) *Library {
	l := &Library{
		catalog:  NewCatalog(),
		history:  NewHistoryStack(),
		waitlist: NewWaitlist(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddBook registers a new available book. It fails with ErrInvalidInput on
// blank id/title/author and ErrDuplicateKey on an ID collision.
func (l *Library) AddBook(id, title, author string, year int) (*Book, error) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if id == "" || title == "" || author == "" {
		return nil, fmt.Errorf("id, title and author are required: %w", ErrInvalidInput)
	}

	book := &Book{
		ID:        id,
		Title:     title,
		Author:    author,
		Year:      year,
		Available: true,
	}
	if err := l.catalog.Add(book); err != nil {
		return nil, err
	}
	return book, nil
}

// RemoveBook deletes a book from the catalog. It fails with ErrNotFound for
// an unknown ID and ErrConflict while the book is borrowed or has pending
// waitlist entries.
func (l *Library) RemoveBook(id string) error {
	book, err := l.catalog.FindByID(id)
	if err != nil {
		return err
	}
	if !book.Available {
		return fmt.Errorf("book %q is currently borrowed by %s: %w", id, book.BorrowedBy, ErrConflict)
	}
	if n := l.waitlist.Size(id); n > 0 {
		return fmt.Errorf("book %q has %d pending waitlist entries: %w", id, n, ErrConflict)
	}
	return l.catalog.Remove(id)
}

// SearchByID returns the book with the given ID.
func (l *Library) SearchByID(id string) (*Book, error) {
	return l.catalog.FindByID(id)
}

// SearchByTitle returns all books whose title contains the query, in catalog
// order. No match is an empty slice, not an error.
func (l *Library) SearchByTitle(query string) []*Book {
	return l.catalog.FindByTitle(query)
}

// ListAll returns the catalog ordered by the given key.
func (l *Library) ListAll(key SortKey) ([]*Book, error) {
	return l.catalog.AllSortedBy(key)
}

// BookCount returns the number of books in the catalog.
func (l *Library) BookCount() int { return l.catalog.Len() }

// BorrowBook lends the book to borrower when it is available, or queues the
// request when it is not. It fails with ErrNotFound for an unknown ID and
// ErrInvalidInput for a blank borrower.
func (l *Library) BorrowBook(id, borrower string) (BorrowOutcome, error) {
	borrower = strings.TrimSpace(borrower)
	if borrower == "" {
		return BorrowOutcome{}, fmt.Errorf("borrower is required: %w", ErrInvalidInput)
	}

	book, err := l.catalog.FindByID(id)
	if err != nil {
		return BorrowOutcome{}, err
	}

	if !book.Available {
		entry := &WaitlistEntry{
			ID:          uuid.New(),
			BookID:      book.ID,
			Borrower:    borrower,
			RequestedAt: l.now(),
		}
		l.waitlist.Enqueue(entry)
		return BorrowOutcome{
			Status:        StatusWaitlisted,
			Entry:         entry,
			QueuePosition: l.waitlist.Size(book.ID),
		}, nil
	}

	record := l.lendTo(book, borrower)
	return BorrowOutcome{Status: StatusBorrowed, Record: record}, nil
}

// ReturnBook closes the open borrow record for the book. When the waitlist
// is non-empty the head entry is dequeued and the book is lent to that
// borrower immediately; otherwise the book becomes available. It fails with
// ErrNotFound for an unknown ID and ErrConflict when the book is not
// borrowed.
func (l *Library) ReturnBook(id string) (ReturnOutcome, error) {
	book, err := l.catalog.FindByID(id)
	if err != nil {
		return ReturnOutcome{}, err
	}

	record, err := l.history.OpenRecordFor(book.ID)
	if err != nil {
		// No open record means the book is already available.
		return ReturnOutcome{}, fmt.Errorf("book %q is not borrowed: %w", id, ErrConflict)
	}

	// All preconditions hold; from here on the operation cannot fail.
	record.ReturnedAt = l.now()

	next, err := l.waitlist.Dequeue(book.ID)
	if errors.Is(err, ErrEmptyWaitlist) {
		book.Available = true
		book.BorrowedBy = ""
		book.BorrowedAt = time.Time{}
		return ReturnOutcome{Returned: record}, nil
	}

	assigned := l.lendTo(book, next.Borrower)
	return ReturnOutcome{Returned: record, Assigned: assigned}, nil
}

// History returns the full borrowing history, most recent first.
func (l *Library) History() []*BorrowRecord {
	return l.history.All()
}

// WaitlistFor returns the pending waitlist entries for one book in request
// order. It fails with ErrNotFound for an unknown ID.
func (l *Library) WaitlistFor(id string) ([]*WaitlistEntry, error) {
	if _, err := l.catalog.FindByID(id); err != nil {
		return nil, err
	}
	return l.waitlist.Entries(id), nil
}

// WaitlistAll returns every pending entry across all books in request order.
func (l *Library) WaitlistAll() []*WaitlistEntry {
	return l.waitlist.AllEntries()
}

// lendTo marks the book as borrowed and pushes the open record. The caller
// has already validated that the book exists and may be lent.
func (l *Library) lendTo(book *Book, borrower string) *BorrowRecord {
	record := &BorrowRecord{
		ID:         uuid.New(),
		BookID:     book.ID,
		Borrower:   borrower,
		BorrowedAt: l.now(),
	}
	l.history.Push(record)
	book.Available = false
	book.BorrowedBy = borrower
	book.BorrowedAt = record.BorrowedAt
	return record
}
