package repository

import "github.com/blackwell-systems/libcat/internal/entity"

// LibraryRepository adds library finders to the generic engine.
type LibraryRepository struct {
	*Repository[*entity.Library]
}

func (r *LibraryRepository) FindByName(name string) (*entity.Library, bool) {
	return r.findFirst(func(l *entity.Library) bool { return l.Name() == name })
}

func (r *LibraryRepository) FindByEmail(email string) (*entity.Library, bool) {
	return r.findFirst(func(l *entity.Library) bool { return l.Email() == email })
}

func (r *LibraryRepository) FindAllByAddress(address string) []*entity.Library {
	return r.FindAllFunc(func(l *entity.Library) bool { return l.Address() == address })
}

// FindAllWithLoans returns libraries that hold at least one loan.
func (r *LibraryRepository) FindAllWithLoans() []*entity.Library {
	return r.FindAllFunc(func(l *entity.Library) bool { return len(l.Loans()) > 0 })
}
