package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindLoan = "loan"

// Loan records a book lent to a patron. Dates are not checked against each
// other: a due date before the loan date is accepted.
type Loan struct {
	Base
	loanDate     Date
	dueDate      Date
	borrowerID   uuid.UUID
	borrowedBook *Book
}

// NewLoan validates every field and returns the loan.
func NewLoan(id uuid.UUID, loanDate, dueDate Date, borrowerID uuid.UUID, book *Book) (*Loan, error) {
	l := &Loan{
		Base:         newBase(id),
		loanDate:     loanDate,
		dueDate:      dueDate,
		borrowerID:   borrowerID,
		borrowedBook: book,
	}
	if err := check(kindLoan, l.Validate()); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Loan) LoanDate() Date        { return l.loanDate }
func (l *Loan) DueDate() Date         { return l.dueDate }
func (l *Loan) BorrowerID() uuid.UUID { return l.borrowerID }
func (l *Loan) BorrowedBook() *Book   { return l.borrowedBook }

// Overdue reports whether the due date lies strictly before asOf.
func (l *Loan) Overdue(asOf Date) bool {
	return !l.dueDate.IsZero() && l.dueDate.Before(asOf)
}

func (l *Loan) SetLoanDate(d Date) error {
	if err := check(kindLoan, requiredDate("Loan Date", d)); err != nil {
		return err
	}
	l.loanDate = d
	return nil
}

func (l *Loan) SetDueDate(d Date) error {
	if err := check(kindLoan, requiredDate("Due Date", d)); err != nil {
		return err
	}
	l.dueDate = d
	return nil
}

func (l *Loan) SetBorrowerID(id uuid.UUID) error {
	if err := check(kindLoan, requiredID("Borrower ID", id)); err != nil {
		return err
	}
	l.borrowerID = id
	return nil
}

func (l *Loan) SetBorrowedBook(b *Book) error {
	if err := check(kindLoan, requiredBook(b)); err != nil {
		return err
	}
	l.borrowedBook = b
	return nil
}

func (l *Loan) Validate() []string {
	return join(
		requiredDate("Loan Date", l.loanDate),
		requiredDate("Due Date", l.dueDate),
		requiredID("Borrower ID", l.borrowerID),
		requiredBook(l.borrowedBook),
	)
}

func requiredDate(field string, d Date) []string {
	if d.IsZero() {
		return []string{Required.Format(field)}
	}
	return nil
}

func requiredBook(b *Book) []string {
	if b == nil {
		return []string{Required.Format("Borrowed Book")}
	}
	return nil
}

type loanRecord struct {
	ID           uuid.UUID `json:"id"`
	LoanDate     Date      `json:"loanDate"`
	DueDate      Date      `json:"dueDate"`
	BorrowerID   uuid.UUID `json:"borrowerId"`
	BorrowedBook *Book     `json:"borrowedBook"`
}

func (l *Loan) MarshalJSON() ([]byte, error) {
	return json.Marshal(loanRecord{
		ID:           l.id,
		LoanDate:     l.loanDate,
		DueDate:      l.dueDate,
		BorrowerID:   l.borrowerID,
		BorrowedBook: l.borrowedBook,
	})
}

func (l *Loan) UnmarshalJSON(data []byte) error {
	var r loanRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*l = Loan{
		Base:         Base{id: r.ID},
		loanDate:     r.LoanDate,
		dueDate:      r.DueDate,
		borrowerID:   r.BorrowerID,
		borrowedBook: r.BorrowedBook,
	}
	return nil
}
