package library

import (
	"time"

	"github.com/google/uuid"
)

// Book represents metadata and current availability of a book in the catalog.
// The ID is assigned once on Add and never changes; availability and the
// borrower fields are maintained exclusively by the Library service.
type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Year       int       `json:"year"`
	Available  bool      `json:"available"`
	BorrowedBy string    `json:"borrowed_by,omitempty"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

// BorrowRecord captures one lending of a book. ReturnedAt stays zero while
// the lending is open and is set exactly once when the book comes back.
type BorrowRecord struct {
	ID         uuid.UUID `json:"id"`
	BookID     string    `json:"book_id"`
	Borrower   string    `json:"borrower"`
	BorrowedAt time.Time `json:"borrowed_at"`
	ReturnedAt time.Time `json:"returned_at"`
}

// Open reports whether the record is still waiting for a return.
func (r *BorrowRecord) Open() bool { return r.ReturnedAt.IsZero() }

// WaitlistEntry is a pending borrow request for a book that was unavailable
// at request time.
type WaitlistEntry struct {
	ID          uuid.UUID `json:"id"`
	BookID      string    `json:"book_id"`
	Borrower    string    `json:"borrower"`
	RequestedAt time.Time `json:"requested_at"`

	seq uint64 // assigned by Waitlist.Enqueue, orders entries across books
}
