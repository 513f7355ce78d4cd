package repository

import "path/filepath"

// DefaultDataDir is used when no data directory is configured.
const DefaultDataDir = "data"

// Backing file names, one per entity type.
const (
	UsersFile      = "users.json"
	LoansFile      = "loans.json"
	BooksFile      = "books.json"
	ReviewsFile    = "reviews.json"
	LibrariesFile  = "libraries.json"
	CategoriesFile = "categories.json"
)

// Path returns the full path of name inside dir.
// Layout: <dir>/<name>
func Path(dir, name string) string {
	if dir == "" {
		dir = DefaultDataDir
	}
	return filepath.Join(dir, name)
}
