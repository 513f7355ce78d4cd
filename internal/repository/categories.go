package repository

import "github.com/blackwell-systems/libcat/internal/entity"

// CategoryRepository adds category finders to the generic engine.
type CategoryRepository struct {
	*Repository[*entity.Category]
}

func (r *CategoryRepository) FindAllByName(name string) []*entity.Category {
	return r.FindAllFunc(func(c *entity.Category) bool { return c.Name() == name })
}

// FindByName returns the first category with the given name.
func (r *CategoryRepository) FindByName(name string) (*entity.Category, bool) {
	return r.findFirst(func(c *entity.Category) bool { return c.Name() == name })
}
