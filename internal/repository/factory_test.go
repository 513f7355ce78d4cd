package repository_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/blackwell-systems/libcat/internal/repository"
	"github.com/google/uuid"
)

func newFactory(t *testing.T, dir string, opts ...repository.Option) *repository.Factory {
	t.Helper()
	f, err := repository.New(repository.JSON, dir, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

var allFiles = []string{
	repository.BooksFile,
	repository.CategoriesFile,
	repository.LibrariesFile,
	repository.LoansFile,
	repository.ReviewsFile,
	repository.UsersFile,
}

// --- Backend selection ---

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		backend repository.Backend
		want    error
	}{
		{repository.XML, repository.ErrNotImplemented},
		{repository.PostgreSQL, repository.ErrNotImplemented},
		{repository.Backend(0), repository.ErrUnknownBackend},
		{repository.Backend(99), repository.ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.backend.String(), func(t *testing.T) {
			f, err := repository.New(tt.backend, t.TempDir())
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if f != nil {
				t.Error("factory returned alongside error")
			}
		})
	}
}

func TestNew_UnimplementedBackendTouchesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if _, err := repository.New(repository.XML, dir); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("data dir created for unimplemented backend (stat err = %v)", err)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want repository.Backend
	}{
		{"", repository.JSON},
		{"json", repository.JSON},
		{" JSON ", repository.JSON},
		{"xml", repository.XML},
		{"postgres", repository.PostgreSQL},
		{"postgresql", repository.PostgreSQL},
	}
	for _, tt := range tests {
		got, err := repository.ParseBackend(tt.in)
		if err != nil {
			t.Errorf("ParseBackend(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := repository.ParseBackend("mongodb"); !errors.Is(err, repository.ErrUnknownBackend) {
		t.Errorf("ParseBackend(mongodb) err = %v, want ErrUnknownBackend", err)
	}
}

func TestNew_CreatesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	f := newFactory(t, dir)

	if f.Dir() != dir {
		t.Errorf("Dir = %q, want %q", f.Dir(), dir)
	}
	for _, name := range allFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

// --- Commit ---

func TestCommit_EmptyWritesEmptyArrays(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t, dir)
	if err := f.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	for _, name := range allFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(string(data)); got != "[]" {
			t.Errorf("%s = %q, want []", name, got)
		}
	}
}

func TestCommit_RoundTrip(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		name := "overwrite"
		var opts []repository.Option
		if atomic {
			name = "atomic"
			opts = append(opts, repository.WithAtomicWrites())
		}
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			f := newFactory(t, dir, opts...)

			var ids []uuid.UUID
			for _, n := range []string{"Fiction", "History", "Poetry"} {
				c := category(t, uuid.Nil, n)
				f.Categories().Add(c)
				ids = append(ids, c.ID())
			}
			if err := f.Commit(); err != nil {
				t.Fatalf("Commit: %v", err)
			}

			reopened := newFactory(t, dir, opts...)
			if reopened.Categories().Len() != len(ids) {
				t.Fatalf("reopened Len = %d, want %d", reopened.Categories().Len(), len(ids))
			}
			for i, c := range reopened.Categories().FindAll() {
				if c.ID() != ids[i] {
					t.Errorf("categories[%d].ID = %s, want %s", i, c.ID(), ids[i])
				}
			}
			if _, err := os.Stat(filepath.Join(dir, repository.CategoriesFile+".tmp")); !os.IsNotExist(err) {
				t.Error("temp file left behind after commit")
			}
		})
	}
}

func TestCommit_OverwritesMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, repository.UsersFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newFactory(t, dir)
	if f.Users().Len() != 0 {
		t.Fatalf("Len = %d, want 0", f.Users().Len())
	}
	if err := f.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("users.json = %q, want []", data)
	}
}

func TestCommit_UncommittedChangesAreLost(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t, dir)
	f.Categories().Add(category(t, uuid.Nil, "Fiction"))

	reopened := newFactory(t, dir)
	if reopened.Categories().Len() != 0 {
		t.Errorf("Len = %d, want 0 before commit", reopened.Categories().Len())
	}
}

func TestCommit_WriteFailureIsFileError(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t, dir)

	// Replace books.json with a directory so the first write fails.
	path := filepath.Join(dir, repository.BooksFile)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	err := f.Commit()
	var fe *repository.FileError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FileError", err)
	}
	if fe.Op != "write" || fe.File != repository.BooksFile {
		t.Errorf("FileError = %+v, want write on %s", fe, repository.BooksFile)
	}

	// Books is first in commit order, so nothing after it was written.
	data, _ := os.ReadFile(filepath.Join(dir, repository.UsersFile))
	if len(data) != 0 {
		t.Errorf("users.json written after earlier failure: %q", data)
	}
}

func TestCommit_GraphSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	f := newFactory(t, dir)

	cat := category(t, uuid.Nil, "Fiction")
	user, err := entity.NewUser(uuid.Nil, "ada@example.com", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	book, err := entity.NewBook(uuid.Nil, "Dune", "Frank Herbert", cat, 1965)
	if err != nil {
		t.Fatal(err)
	}
	review, err := entity.NewReview(uuid.Nil, "Great", 5, user.ID(), book.ID())
	if err != nil {
		t.Fatal(err)
	}
	book.AddReview(review)
	loan, err := entity.NewLoan(uuid.Nil, entity.NewDate(2024, 3, 1), entity.NewDate(2024, 3, 15), user.ID(), book)
	if err != nil {
		t.Fatal(err)
	}

	f.Categories().Add(cat)
	f.Users().Add(user)
	f.Books().Add(book)
	f.Reviews().Add(review)
	f.Loans().Add(loan)
	if err := f.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	r := newFactory(t, dir)
	gotLoan, ok := r.Loans().FindByID(loan.ID())
	if !ok {
		t.Fatal("loan not found after reload")
	}
	if gotLoan.BorrowerID() != user.ID() {
		t.Errorf("BorrowerID = %s, want %s", gotLoan.BorrowerID(), user.ID())
	}
	if gotLoan.BorrowedBook() == nil || gotLoan.BorrowedBook().Title() != "Dune" {
		t.Fatalf("BorrowedBook = %+v, want nested Dune", gotLoan.BorrowedBook())
	}
	if got := gotLoan.DueDate().String(); got != "15-03-2024" {
		t.Errorf("DueDate = %q, want %q", got, "15-03-2024")
	}

	gotBook, ok := r.Books().FindByID(book.ID())
	if !ok {
		t.Fatal("book not found after reload")
	}
	if gotBook.Category() == nil || gotBook.Category().ID() != cat.ID() {
		t.Error("book category not restored")
	}
	if len(gotBook.Reviews()) != 1 || gotBook.Reviews()[0].Rating() != 5 {
		t.Errorf("book reviews = %v, want one 5-star review", gotBook.Reviews())
	}
}
