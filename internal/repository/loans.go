package repository

import (
	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
)

// LoanRepository adds loan finders to the generic engine.
type LoanRepository struct {
	*Repository[*entity.Loan]
}

func (r *LoanRepository) FindAllByBorrower(userID uuid.UUID) []*entity.Loan {
	return r.FindAllFunc(func(l *entity.Loan) bool { return l.BorrowerID() == userID })
}

func (r *LoanRepository) FindAllByBook(bookID uuid.UUID) []*entity.Loan {
	return r.FindAllFunc(func(l *entity.Loan) bool {
		return l.BorrowedBook() != nil && l.BorrowedBook().ID() == bookID
	})
}

func (r *LoanRepository) FindAllByLoanDate(d entity.Date) []*entity.Loan {
	return r.FindAllFunc(func(l *entity.Loan) bool { return l.LoanDate().Equal(d) })
}

func (r *LoanRepository) FindAllByDueDate(d entity.Date) []*entity.Loan {
	return r.FindAllFunc(func(l *entity.Loan) bool { return l.DueDate().Equal(d) })
}

// FindAllOverdue returns loans whose due date is before asOf.
func (r *LoanRepository) FindAllOverdue(asOf entity.Date) []*entity.Loan {
	return r.FindAllFunc(func(l *entity.Loan) bool { return l.Overdue(asOf) })
}
