package repository

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/libcat/internal/entity"
	"go.uber.org/zap"
)

// Factory owns exactly one repository per entity type and is the only
// component that writes to disk. Construct it once at startup and pass it
// to whatever needs the repositories.
//
// It is not safe for concurrent use, and two factories over the same
// directory will overwrite each other's files.
type Factory struct {
	dir    string
	log    *zap.Logger
	atomic bool

	books      *BookRepository
	categories *CategoryRepository
	libraries  *LibraryRepository
	loans      *LoanRepository
	reviews    *ReviewRepository
	users      *UserRepository
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger handed to every repository.
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

// WithAtomicWrites makes Commit replace each file through a temp file and
// rename instead of truncating it in place. Commit is still not atomic
// across files.
func WithAtomicWrites() Option {
	return func(f *Factory) { f.atomic = true }
}

// New opens every repository for the given backend under dir. Only JSON is
// implemented; XML and PostgreSQL fail with ErrNotImplemented rather than
// falling back.
func New(backend Backend, dir string, opts ...Option) (*Factory, error) {
	switch backend {
	case JSON:
	case XML, PostgreSQL:
		return nil, fmt.Errorf("%s backend: %w", backend, ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, backend)
	}

	if dir == "" {
		dir = DefaultDataDir
	}
	f := &Factory{dir: dir, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}

	var err error
	if f.books, err = openBooks(f); err != nil {
		return nil, err
	}
	if f.categories, err = openCategories(f); err != nil {
		return nil, err
	}
	if f.libraries, err = openLibraries(f); err != nil {
		return nil, err
	}
	if f.loans, err = openLoans(f); err != nil {
		return nil, err
	}
	if f.reviews, err = openReviews(f); err != nil {
		return nil, err
	}
	if f.users, err = openUsers(f); err != nil {
		return nil, err
	}
	f.log.Debug("repositories opened", zap.String("dir", dir))
	return f, nil
}

func openBooks(f *Factory) (*BookRepository, error) {
	r, err := Open[*entity.Book](Path(f.dir, BooksFile), f.log)
	if err != nil {
		return nil, err
	}
	return &BookRepository{r}, nil
}

func openCategories(f *Factory) (*CategoryRepository, error) {
	r, err := Open[*entity.Category](Path(f.dir, CategoriesFile), f.log)
	if err != nil {
		return nil, err
	}
	return &CategoryRepository{r}, nil
}

func openLibraries(f *Factory) (*LibraryRepository, error) {
	r, err := Open[*entity.Library](Path(f.dir, LibrariesFile), f.log)
	if err != nil {
		return nil, err
	}
	return &LibraryRepository{r}, nil
}

func openLoans(f *Factory) (*LoanRepository, error) {
	r, err := Open[*entity.Loan](Path(f.dir, LoansFile), f.log)
	if err != nil {
		return nil, err
	}
	return &LoanRepository{r}, nil
}

func openReviews(f *Factory) (*ReviewRepository, error) {
	r, err := Open[*entity.Review](Path(f.dir, ReviewsFile), f.log)
	if err != nil {
		return nil, err
	}
	return &ReviewRepository{r}, nil
}

func openUsers(f *Factory) (*UserRepository, error) {
	r, err := Open[*entity.User](Path(f.dir, UsersFile), f.log)
	if err != nil {
		return nil, err
	}
	return &UserRepository{r}, nil
}

// Dir returns the data directory.
func (f *Factory) Dir() string { return f.dir }

func (f *Factory) Books() *BookRepository          { return f.books }
func (f *Factory) Categories() *CategoryRepository { return f.categories }
func (f *Factory) Libraries() *LibraryRepository   { return f.libraries }
func (f *Factory) Loans() *LoanRepository          { return f.loans }
func (f *Factory) Reviews() *ReviewRepository      { return f.reviews }
func (f *Factory) Users() *UserRepository          { return f.users }

// encoder is the part of a repository Commit needs.
type encoder interface {
	Path() string
	Len() int
	encode() ([]byte, error)
}

// Commit writes every cache to its file, overwriting the previous content,
// in a fixed order: books, categories, libraries, loans, reviews, users.
//
// Commit stops at the first failure. Files written before it keep their new
// content and later files keep their old content; nothing is rolled back.
func (f *Factory) Commit() error {
	start := time.Now()
	for _, r := range f.ordered() {
		data, err := r.encode()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", r.Path(), err)
		}
		if f.atomic {
			err = writeFileAtomic(r.Path(), data)
		} else {
			err = writeFile(r.Path(), data)
		}
		if err != nil {
			return err
		}
		f.log.Debug("committed", zap.String("file", r.Path()), zap.Int("entities", r.Len()))
	}
	f.log.Info("commit complete", zap.String("dir", f.dir), zap.Duration("took", time.Since(start)))
	return nil
}

func (f *Factory) ordered() []encoder {
	return []encoder{
		f.books.Repository,
		f.categories.Repository,
		f.libraries.Repository,
		f.loans.Repository,
		f.reviews.Repository,
		f.users.Repository,
	}
}
