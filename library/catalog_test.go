package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(id, title, author string, year int) *Book {
	return &Book{ID: id, Title: title, Author: author, Year: year, Available: true}
}

func TestCatalogAddAndFind(t *testing.T) {
	cat := NewCatalog()

	require.NoError(t, cat.Add(testBook("B001", "The Hobbit", "Tolkien", 1937)))
	require.NoError(t, cat.Add(testBook("B002", "Dune", "Herbert", 1965)))

	err := cat.Add(testBook("B001", "Other", "Other", 2000))
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 2, cat.Len())

	book, err := cat.FindByID("B002")
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)

	_, err = cat.FindByID("B999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRemoveRelinksChain(t *testing.T) {
	cat := NewCatalog()
	for _, id := range []string{"B001", "B002", "B003"} {
		require.NoError(t, cat.Add(testBook(id, "Title "+id, "Author", 2000)))
	}

	// Middle, then head, then tail.
	require.NoError(t, cat.Remove("B002"))
	assert.Equal(t, []string{"B001", "B003"}, bookIDs(cat.All()))

	require.NoError(t, cat.Remove("B001"))
	assert.Equal(t, []string{"B003"}, bookIDs(cat.All()))

	require.NoError(t, cat.Remove("B003"))
	assert.Empty(t, cat.All())
	assert.Equal(t, 0, cat.Len())

	assert.ErrorIs(t, cat.Remove("B003"), ErrNotFound)
}

func TestCatalogFindByTitle(t *testing.T) {
	cat := NewCatalog()
	require.NoError(t, cat.Add(testBook("B001", "The Great Gatsby", "Fitzgerald", 1925)))
	require.NoError(t, cat.Add(testBook("B002", "Great Expectations", "Dickens", 1861)))
	require.NoError(t, cat.Add(testBook("B003", "Dune", "Herbert", 1965)))

	// Case-insensitive, catalog order.
	matches := cat.FindByTitle("gReAt")
	assert.Equal(t, []string{"B001", "B002"}, bookIDs(matches))

	assert.Empty(t, cat.FindByTitle("missing"))
}

func TestCatalogAllSortedBy(t *testing.T) {
	cat := NewCatalog()
	require.NoError(t, cat.Add(testBook("B003", "animal farm", "Orwell", 1945)))
	require.NoError(t, cat.Add(testBook("B001", "1984", "Orwell", 1949)))
	require.NoError(t, cat.Add(testBook("B002", "Dune", "Herbert", 1965)))

	byTitle, err := cat.AllSortedBy(SortByTitle)
	require.NoError(t, err)
	assert.Equal(t, []string{"B001", "B003", "B002"}, bookIDs(byTitle))

	// Duplicate authors tie-break by ID ascending.
	byAuthor, err := cat.AllSortedBy(SortByAuthor)
	require.NoError(t, err)
	assert.Equal(t, []string{"B002", "B001", "B003"}, bookIDs(byAuthor))

	// Stored order is untouched.
	assert.Equal(t, []string{"B003", "B001", "B002"}, bookIDs(cat.All()))

	unsorted, err := cat.AllSortedBy(SortNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"B003", "B001", "B002"}, bookIDs(unsorted))

	_, err = cat.AllSortedBy(SortKey("year"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseSortKey(t *testing.T) {
	for input, want := range map[string]SortKey{
		"":         SortNone,
		"none":     SortNone,
		"Title":    SortByTitle,
		" author ": SortByAuthor,
	} {
		key, err := ParseSortKey(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, key, "input %q", input)
	}

	_, err := ParseSortKey("year")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func bookIDs(books []*Book) []string {
	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}
