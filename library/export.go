package library

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigFastest

// EncodeBooks renders books as indented JSON for the CLI's --json mode.
func EncodeBooks(books []*Book) ([]byte, error) {
	return json.MarshalIndent(books, "", "  ")
}

// EncodeHistory renders borrow records as indented JSON.
func EncodeHistory(records []*BorrowRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// EncodeWaitlist renders waitlist entries as indented JSON.
func EncodeWaitlist(entries []*WaitlistEntry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}
