package library

import "errors"

// Sentinel errors returned by catalog and circulation operations. Call sites
// wrap these with context via fmt.Errorf("...: %w", ...); callers should
// match with errors.Is.
var (
	// ErrNotFound is returned when a referenced book, record, or waitlist
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when adding a book whose ID is already
	// registered.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConflict is returned when an operation would violate the current
	// book state: removing a borrowed book, removing a book with pending
	// waitlist entries, or returning a book that is not borrowed.
	ErrConflict = errors.New("conflicts with current book state")

	// ErrEmptyWaitlist is returned when dequeuing from a book with no
	// pending waitlist entries.
	ErrEmptyWaitlist = errors.New("waitlist is empty")

	// ErrInvalidInput is returned when a required field is blank.
	ErrInvalidInput = errors.New("invalid input")
)
