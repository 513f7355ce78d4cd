package repository

import (
	"strings"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
)

// BookRepository adds book finders to the generic engine.
type BookRepository struct {
	*Repository[*entity.Book]
}

// FindAllByCategory returns books whose category has the given ID.
func (r *BookRepository) FindAllByCategory(categoryID uuid.UUID) []*entity.Book {
	return r.FindAllFunc(func(b *entity.Book) bool {
		return b.Category() != nil && b.Category().ID() == categoryID
	})
}

// FindAllByAuthor returns books whose author matches exactly.
func (r *BookRepository) FindAllByAuthor(author string) []*entity.Book {
	return r.FindAllFunc(func(b *entity.Book) bool { return b.Author() == author })
}

// FindAllAvailable returns books that can currently be lent.
func (r *BookRepository) FindAllAvailable() []*entity.Book {
	return r.FindAllFunc((*entity.Book).Available)
}

// Search returns books whose title or author contains q, ignoring case.
func (r *BookRepository) Search(q string) []*entity.Book {
	q = strings.ToLower(q)
	return r.FindAllFunc(func(b *entity.Book) bool {
		return strings.Contains(strings.ToLower(b.Title()), q) ||
			strings.Contains(strings.ToLower(b.Author()), q)
	})
}
