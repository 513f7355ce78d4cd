package repository

import "github.com/blackwell-systems/libcat/internal/entity"

// UserRepository adds user finders to the generic engine.
type UserRepository struct {
	*Repository[*entity.User]
}

// FindByEmail returns the first user registered with email.
func (r *UserRepository) FindByEmail(email string) (*entity.User, bool) {
	return r.findFirst(func(u *entity.User) bool { return u.Email() == email })
}

func (r *UserRepository) FindAllByName(name string) []*entity.User {
	return r.FindAllFunc(func(u *entity.User) bool { return u.Name() == name })
}
