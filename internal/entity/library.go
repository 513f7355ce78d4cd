package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindLibrary = "library"

// Library is a branch holding books, patrons and loans. Its collections hold
// the same pointers the repositories cache, not copies.
type Library struct {
	Base
	name    string
	address string
	email   string
	books   []*Book
	users   []*User
	loans   []*Loan
}

// NewLibrary validates every field and returns a library with empty
// collections.
func NewLibrary(id uuid.UUID, name, address, email string) (*Library, error) {
	l := &Library{
		Base:    newBase(id),
		name:    name,
		address: address,
		email:   email,
		books:   []*Book{},
		users:   []*User{},
		loans:   []*Loan{},
	}
	if err := check(kindLibrary, l.Validate()); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Library) Name() string    { return l.name }
func (l *Library) Address() string { return l.address }
func (l *Library) Email() string   { return l.email }
func (l *Library) Books() []*Book  { return l.books }
func (l *Library) Users() []*User  { return l.users }
func (l *Library) Loans() []*Loan  { return l.loans }

func (l *Library) AddBook(b *Book) { l.books = append(l.books, b) }
func (l *Library) AddUser(u *User) { l.users = append(l.users, u) }
func (l *Library) AddLoan(n *Loan) { l.loans = append(l.loans, n) }

func (l *Library) SetName(name string) error {
	if err := check(kindLibrary, boundedText("Library Name", name, maxNameLength)); err != nil {
		return err
	}
	l.name = name
	return nil
}

func (l *Library) SetAddress(address string) error {
	if err := check(kindLibrary, boundedText("Library Address", address, maxNameLength)); err != nil {
		return err
	}
	l.address = address
	return nil
}

func (l *Library) SetEmail(email string) error {
	if err := check(kindLibrary, boundedText("Library Email", email, maxNameLength)); err != nil {
		return err
	}
	l.email = email
	return nil
}

func (l *Library) Validate() []string {
	return join(
		boundedText("Library Name", l.name, maxNameLength),
		boundedText("Library Address", l.address, maxNameLength),
		boundedText("Library Email", l.email, maxNameLength),
	)
}

type libraryRecord struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Email   string    `json:"email"`
	Books   []*Book   `json:"books"`
	Users   []*User   `json:"users"`
	Loans   []*Loan   `json:"loans"`
}

func (l *Library) MarshalJSON() ([]byte, error) {
	return json.Marshal(libraryRecord{
		ID:      l.id,
		Name:    l.name,
		Address: l.address,
		Email:   l.email,
		Books:   nonNil(l.books),
		Users:   nonNil(l.users),
		Loans:   nonNil(l.loans),
	})
}

func (l *Library) UnmarshalJSON(data []byte) error {
	var r libraryRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*l = Library{
		Base:    Base{id: r.ID},
		name:    r.Name,
		address: r.Address,
		email:   r.Email,
		books:   nonNil(r.Books),
		users:   nonNil(r.Users),
		loans:   nonNil(r.Loans),
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
