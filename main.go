package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"codeshelf/library"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	noSeed  bool
	jsonOut bool
)

func main() {
	root := &cobra.Command{
		Use:           "codeshelf",
		Short:         "Code Shelf: a smart library organizer",
		Long:          "Code Shelf manages an in-memory book catalog with borrowing history and per-book waitlists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}
	root.PersistentFlags().BoolVar(&noSeed, "no-seed", false, "start with an empty catalog instead of the sample books")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "render listings as JSON instead of tables")
	root.AddCommand(demoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var sampleBooks = []struct {
	id     string
	title  string
	author string
	year   int
}{
	{"B001", "The Great Gatsby", "F. Scott Fitzgerald", 1925},
	{"B002", "To Kill a Mockingbird", "Harper Lee", 1960},
	{"B003", "1984", "George Orwell", 1949},
	{"B004", "Pride and Prejudice", "Jane Austen", 1813},
	{"B005", "The Hobbit", "J.R.R. Tolkien", 1937},
	{"B006", "The Catcher in the Rye", "J.D. Salinger", 1951},
	{"B007", "Lord of the Flies", "William Golding", 1954},
	{"B008", "Animal Farm", "George Orwell", 1945},
	{"B009", "Brave New World", "Aldous Huxley", 1932},
	{"B010", "The Alchemist", "Paulo Coelho", 1988},
}

func newLibrary() *library.Library {
	lib := library.NewLibrary()
	if noSeed {
		return lib
	}
	for _, b := range sampleBooks {
		if _, err := lib.AddBook(b.id, b.title, b.author, b.year); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not seed %s: %v\n", b.id, err)
		}
	}
	return lib
}

func runShell() error {
	lib := newLibrary()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to Code Shelf - Smart Library Organizer!")
	if !noSeed {
		fmt.Println("Sample books have been added to get you started.")
	}
	fmt.Println("Available commands:")
	fmt.Println("  Catalog: add book, remove book, search title, search id, list books")
	fmt.Println("  Circulation: borrow, return")
	fmt.Println("  Records: history, waitlist")
	fmt.Println("  System: exit")
	fmt.Println()
	fmt.Println("Tips:")
	fmt.Println("  • For 'waitlist': Enter a Book ID for one book, or press Enter to see all books")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, lib)
		case "remove book":
			handleRemoveBook(scanner, lib)
		case "search title":
			handleSearchTitle(scanner, lib)
		case "search id":
			handleSearchID(scanner, lib)
		case "list books":
			handleListBooks(scanner, lib)
		case "borrow":
			handleBorrow(scanner, lib)
		case "return":
			handleReturn(scanner, lib)
		case "history":
			handleHistory(lib)
		case "waitlist":
			handleWaitlist(scanner, lib)
		case "exit":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
	return nil
}

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	fmt.Print("Title: ")
	if !sc.Scan() {
		return
	}
	title := strings.TrimSpace(sc.Text())

	fmt.Print("Author: ")
	if !sc.Scan() {
		return
	}
	author := strings.TrimSpace(sc.Text())

	fmt.Print("Publication year: ")
	if !sc.Scan() {
		return
	}
	yearStr := strings.TrimSpace(sc.Text())
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		fmt.Printf("Invalid year: %s\n", yearStr)
		return
	}

	book, err := lib.AddBook(id, title, author, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book '%s' with ID %s\n", book.Title, book.ID)
}

func handleRemoveBook(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID to remove: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	if err := lib.RemoveBook(id); err != nil {
		fmt.Printf("Error removing book: %v\n", err)
		return
	}
	fmt.Printf("Book with ID %s removed\n", id)
}

func handleSearchTitle(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Title to search: ")
	if !sc.Scan() {
		return
	}
	query := strings.TrimSpace(sc.Text())

	books := lib.SearchByTitle(query)
	if len(books) == 0 {
		fmt.Printf("No books found matching '%s'.\n", query)
		return
	}
	fmt.Printf("Found %d book(s) matching '%s':\n", len(books), query)
	printBooks(books)
}

func handleSearchID(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	book, err := lib.SearchByID(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printBooks([]*library.Book{book})
}

func handleListBooks(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Sort by (none/title/author) [default: none]: ")
	if !sc.Scan() {
		return
	}
	key, err := library.ParseSortKey(sc.Text())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	books, err := lib.ListAll(key)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Println("No books in the library.")
		return
	}
	printBooks(books)
	fmt.Printf("Total books: %d\n", len(books))
}

func handleBorrow(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	fmt.Print("Borrower name: ")
	if !sc.Scan() {
		return
	}
	borrower := strings.TrimSpace(sc.Text())

	outcome, err := lib.BorrowBook(id, borrower)
	if err != nil {
		fmt.Printf("Error borrowing book: %v\n", err)
		return
	}

	book, _ := lib.SearchByID(id)
	switch outcome.Status {
	case library.StatusBorrowed:
		fmt.Printf("Book '%s' borrowed by %s\n", book.Title, borrower)
	case library.StatusWaitlisted:
		fmt.Printf("Book '%s' is currently borrowed. %s added to the waitlist.\n", book.Title, borrower)
		fmt.Printf("Position in queue: %d\n", outcome.QueuePosition)
	}
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID to return: ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	outcome, err := lib.ReturnBook(id)
	if err != nil {
		fmt.Printf("Error returning book: %v\n", err)
		return
	}

	book, _ := lib.SearchByID(id)
	fmt.Printf("Book '%s' returned by %s\n", book.Title, outcome.Returned.Borrower)
	if outcome.Reassigned() {
		fmt.Printf("Book automatically assigned to %s (next in waitlist)\n", outcome.Assigned.Borrower)
	} else {
		fmt.Println("Book is now available for borrowing")
	}
}

func handleHistory(lib *library.Library) {
	records := lib.History()
	if len(records) == 0 {
		fmt.Println("No borrowing history.")
		return
	}

	if jsonOut {
		printJSONHistory(records)
		return
	}

	fmt.Println("BORROWING HISTORY (Most Recent First)")
	fmt.Printf("%-10s %-20s %-17s %-17s\n", "Book ID", "Borrower", "Borrowed", "Returned")
	fmt.Println(strings.Repeat("-", 70))
	for _, r := range records {
		returned := "not returned"
		if !r.Open() {
			returned = r.ReturnedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("%-10s %-20s %-17s %-17s\n",
			r.BookID,
			truncateString(r.Borrower, 20),
			r.BorrowedAt.Format("2006-01-02 15:04"),
			returned)
	}
}

func handleWaitlist(sc *bufio.Scanner, lib *library.Library) {
	fmt.Print("Book ID (or press Enter for all books): ")
	if !sc.Scan() {
		return
	}
	id := strings.TrimSpace(sc.Text())

	var entries []*library.WaitlistEntry
	if id == "" {
		entries = lib.WaitlistAll()
	} else {
		var err error
		entries, err = lib.WaitlistFor(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if len(entries) == 0 {
		fmt.Println("No books in waitlist.")
		return
	}

	if jsonOut {
		printJSONWaitlist(entries)
		return
	}

	fmt.Printf("%-10s %-10s %-25s %-17s\n", "Position", "Book ID", "Borrower", "Requested")
	fmt.Println(strings.Repeat("-", 65))
	for i, e := range entries {
		fmt.Printf("%-10d %-10s %-25s %-17s\n",
			i+1, e.BookID, truncateString(e.Borrower, 25), e.RequestedAt.Format("2006-01-02 15:04"))
	}
}

// printBooks renders a book table sized to the terminal, or JSON when --json
// is set.
func printBooks(books []*library.Book) {
	if jsonOut {
		out, err := library.EncodeBooks(books)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding books: %v\n", err)
			return
		}
		fmt.Println(string(out))
		return
	}

	titleWidth, authorWidth := columnWidths()
	fmt.Printf("%-8s %-*s %-*s %-6s %-10s %s\n", "ID", titleWidth, "Title", authorWidth, "Author", "Year", "Status", "Borrower")
	fmt.Println(strings.Repeat("-", 40+titleWidth+authorWidth))
	for _, b := range books {
		status := "Available"
		borrower := ""
		if !b.Available {
			status = "Borrowed"
			borrower = b.BorrowedBy
		}
		fmt.Printf("%-8s %-*s %-*s %-6d %-10s %s\n",
			b.ID,
			titleWidth, truncateString(b.Title, titleWidth),
			authorWidth, truncateString(b.Author, authorWidth),
			b.Year, status, borrower)
	}
}

func printJSONHistory(records []*library.BorrowRecord) {
	out, err := library.EncodeHistory(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding history: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func printJSONWaitlist(entries []*library.WaitlistEntry) {
	out, err := library.EncodeWaitlist(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding waitlist: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

// columnWidths sizes the title and author columns to the terminal, with
// fixed fallbacks when stdout is not a terminal (pipes, tests).
func columnWidths() (title, author int) {
	title, author = 30, 25
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return title, author
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return title, author
	}
	// Leave room for the fixed ID/Year/Status/Borrower columns.
	if spare := width - 60; spare > title+author {
		title = spare * 55 / 100
		author = spare - title
	}
	return title, author
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}

// demoCmd runs a scripted circulation walkthrough against a fresh library so
// the whole flow can be seen without typing commands.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted borrow/waitlist/return walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := newLibrary()

			if _, err := lib.AddBook("B011", "Dune", "Herbert", 1965); err != nil {
				return err
			}
			fmt.Println("Added: Dune by Herbert (B011)")

			out, err := lib.BorrowBook("B011", "alice")
			if err != nil {
				return err
			}
			fmt.Printf("alice borrows B011 -> %s\n", out.Status)

			out, err = lib.BorrowBook("B011", "bob")
			if err != nil {
				return err
			}
			fmt.Printf("bob borrows B011 -> %s (queue position %d)\n", out.Status, out.QueuePosition)

			ret, err := lib.ReturnBook("B011")
			if err != nil {
				return err
			}
			fmt.Printf("alice returns B011 -> returned, reassigned to %s\n", ret.Assigned.Borrower)

			if _, err = lib.ReturnBook("B011"); err != nil {
				return err
			}
			fmt.Println("bob returns B011 -> returned, book is available again")

			fmt.Println("\nHistory:")
			handleHistory(lib)
			return nil
		},
	}
}
