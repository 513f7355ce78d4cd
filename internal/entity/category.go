package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindCategory = "category"

// Category groups books by genre.
type Category struct {
	Base
	name string
}

// NewCategory validates the name and returns the category.
func NewCategory(id uuid.UUID, name string) (*Category, error) {
	c := &Category{Base: newBase(id), name: name}
	if err := check(kindCategory, c.Validate()); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Name() string { return c.name }

func (c *Category) SetName(name string) error {
	if err := check(kindCategory, validateCategoryName(name)); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Category) Validate() []string { return validateCategoryName(c.name) }

func validateCategoryName(name string) []string {
	return boundedText("Name", name, maxNameLength)
}

type categoryRecord struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryRecord{ID: c.id, Name: c.name})
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var r categoryRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*c = Category{Base: Base{id: r.ID}, name: r.Name}
	return nil
}
