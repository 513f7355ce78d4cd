package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindUser = "user"

// User is a registered library patron.
type User struct {
	Base
	email string
	name  string
}

// NewUser validates every field and returns the user, or a *ValidationError
// listing all violations. A nil id is replaced with a fresh one.
func NewUser(id uuid.UUID, email, name string) (*User, error) {
	u := &User{Base: newBase(id), email: email, name: name}
	if err := check(kindUser, u.Validate()); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Email() string { return u.email }
func (u *User) Name() string  { return u.name }

// SetEmail replaces the email if it passes its own rules.
func (u *User) SetEmail(email string) error {
	if err := check(kindUser, validateUserEmail(email)); err != nil {
		return err
	}
	u.email = email
	return nil
}

// SetName replaces the name if it passes its own rules.
func (u *User) SetName(name string) error {
	if err := check(kindUser, validateUserName(name)); err != nil {
		return err
	}
	u.name = name
	return nil
}

func (u *User) Validate() []string {
	return join(validateUserEmail(u.email), validateUserName(u.name))
}

func validateUserEmail(email string) []string { return RequiredText("Email", email) }
func validateUserName(name string) []string   { return boundedText("Name", name, maxNameLength) }

type userRecord struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userRecord{ID: u.id, Email: u.email, Name: u.name})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var r userRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*u = User{Base: Base{id: r.ID}, email: r.Email, name: r.Name}
	return nil
}
