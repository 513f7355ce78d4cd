package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindBook = "book"

// Book is a catalogued title. Category and reviews are shared references;
// the book does not own them.
type Book struct {
	Base
	title         string
	author        string
	category      *Category
	yearPublished int
	reviews       []*Review
}

// NewBook validates every field and returns the book with an empty review
// list.
func NewBook(id uuid.UUID, title, author string, category *Category, yearPublished int) (*Book, error) {
	b := &Book{
		Base:          newBase(id),
		title:         title,
		author:        author,
		category:      category,
		yearPublished: yearPublished,
		reviews:       []*Review{},
	}
	if err := check(kindBook, b.Validate()); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) Title() string       { return b.title }
func (b *Book) Author() string      { return b.author }
func (b *Book) Category() *Category { return b.category }
func (b *Book) YearPublished() int  { return b.yearPublished }
func (b *Book) Reviews() []*Review  { return b.reviews }

func (b *Book) SetTitle(title string) error {
	if err := check(kindBook, validateTitle(title)); err != nil {
		return err
	}
	b.title = title
	return nil
}

func (b *Book) SetAuthor(author string) error {
	if err := check(kindBook, validateAuthor(author)); err != nil {
		return err
	}
	b.author = author
	return nil
}

func (b *Book) SetCategory(c *Category) error {
	if err := check(kindBook, validateBookCategory(c)); err != nil {
		return err
	}
	b.category = c
	return nil
}

func (b *Book) SetYearPublished(year int) error {
	if err := check(kindBook, validateYear(year)); err != nil {
		return err
	}
	b.yearPublished = year
	return nil
}

// AddReview appends r to the book's reviews.
func (b *Book) AddReview(r *Review) {
	b.reviews = append(b.reviews, r)
}

// SetReviews replaces the review list with a copy of reviews.
func (b *Book) SetReviews(reviews []*Review) {
	b.reviews = append([]*Review{}, reviews...)
}

// Available reports whether the book can be lent: it has no reviews, or
// every review carries a positive rating.
func (b *Book) Available() bool {
	for _, r := range b.reviews {
		if r.Rating() <= 0 {
			return false
		}
	}
	return true
}

func (b *Book) Validate() []string {
	return join(
		validateTitle(b.title),
		validateAuthor(b.author),
		validateBookCategory(b.category),
		validateYear(b.yearPublished),
	)
}

func validateTitle(title string) []string   { return boundedText("Title", title, maxNameLength) }
func validateAuthor(author string) []string { return boundedText("Author", author, maxAuthorLength) }

func validateBookCategory(c *Category) []string {
	if c == nil {
		return []string{Required.Format("Category")}
	}
	return MaxLen("Category", c.Name(), maxNameLength)
}

func validateYear(year int) []string {
	var msgs []string
	if year <= 0 {
		msgs = append(msgs, Required.Format("YearPublished"))
	}
	if year < minYear || year > maxYear {
		msgs = append(msgs, YearRange.Format("YearPublished", minYear, maxYear))
	}
	return msgs
}

type bookRecord struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Category      *Category `json:"category"`
	YearPublished int       `json:"yearPublished"`
	Reviews       []*Review `json:"reviews"`
}

func (b *Book) MarshalJSON() ([]byte, error) {
	reviews := b.reviews
	if reviews == nil {
		reviews = []*Review{}
	}
	return json.Marshal(bookRecord{
		ID:            b.id,
		Title:         b.title,
		Author:        b.author,
		Category:      b.category,
		YearPublished: b.yearPublished,
		Reviews:       reviews,
	})
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var r bookRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Reviews == nil {
		r.Reviews = []*Review{}
	}
	*b = Book{
		Base:          Base{id: r.ID},
		title:         r.Title,
		author:        r.Author,
		category:      r.Category,
		yearPublished: r.YearPublished,
		reviews:       r.Reviews,
	}
	return nil
}
