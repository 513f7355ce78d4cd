package entity_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
)

func TestDate_PersistedFormat(t *testing.T) {
	d := entity.NewDate(2024, time.February, 3)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"03-02-2024"` {
		t.Errorf("Marshal = %s, want \"03-02-2024\"", data)
	}

	var back entity.Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("Unmarshal = %v, want %v", back, d)
	}
}

func TestDate_ZeroIsNull(t *testing.T) {
	data, _ := json.Marshal(entity.Date{})
	if string(data) != "null" {
		t.Errorf("zero date = %s, want null", data)
	}
	var d entity.Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil || !d.IsZero() {
		t.Errorf("null should decode to zero date, got %v (%v)", d, err)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := entity.ParseDate("2024-02-03"); err == nil {
		t.Error("ISO date should be rejected by dd-mm-yyyy parser")
	}
}

func TestLoanJSON_ReferenceConvention(t *testing.T) {
	cat, _ := entity.NewCategory(uuid.New(), "Fiction")
	book, _ := entity.NewBook(uuid.New(), "Dune", "Frank Herbert", cat, 1965)
	borrower := uuid.New()
	loan, err := entity.NewLoan(uuid.New(),
		entity.NewDate(2024, time.January, 5), entity.NewDate(2024, time.January, 19), borrower, book)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(loan)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		`"borrowerId":"` + borrower.String() + `"`,
		`"loanDate":"05-01-2024"`,
		`"borrowedBook":{"id":"` + book.ID().String() + `"`,
		`"category":{"id":"` + cat.ID().String() + `","name":"Fiction"}`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded loan missing %s\n%s", want, s)
		}
	}

	var back entity.Loan
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID() != loan.ID() || back.BorrowedBook().Title() != "Dune" || back.BorrowerID() != borrower {
		t.Errorf("decoded loan mismatch: %+v", back)
	}
	if len(back.Validate()) != 0 {
		t.Errorf("decoded loan should be valid: %v", back.Validate())
	}
}

func TestBookJSON_EmptyReviewsIsArray(t *testing.T) {
	cat, _ := entity.NewCategory(uuid.New(), "Fiction")
	book, _ := entity.NewBook(uuid.New(), "Dune", "Frank Herbert", cat, 1965)
	data, _ := json.Marshal(book)
	if !strings.Contains(string(data), `"reviews":[]`) {
		t.Errorf("empty reviews should encode as [], got %s", data)
	}
}
