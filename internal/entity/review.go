package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

const kindReview = "review"

// Review is a patron's rating of a book. Reviewer and book are held by ID so
// a book's review list never nests the book again.
type Review struct {
	Base
	text       string
	rating     int
	reviewerID uuid.UUID
	bookID     uuid.UUID
}

// NewReview validates every field and returns the review.
func NewReview(id uuid.UUID, text string, rating int, reviewerID, bookID uuid.UUID) (*Review, error) {
	r := &Review{
		Base:       newBase(id),
		text:       text,
		rating:     rating,
		reviewerID: reviewerID,
		bookID:     bookID,
	}
	if err := check(kindReview, r.Validate()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Text() string          { return r.text }
func (r *Review) Rating() int           { return r.rating }
func (r *Review) ReviewerID() uuid.UUID { return r.reviewerID }
func (r *Review) BookID() uuid.UUID     { return r.bookID }

func (r *Review) SetText(text string) error {
	if err := check(kindReview, validateReviewText(text)); err != nil {
		return err
	}
	r.text = text
	return nil
}

func (r *Review) SetRating(rating int) error {
	if err := check(kindReview, validateRating(rating)); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func (r *Review) SetReviewerID(id uuid.UUID) error {
	if err := check(kindReview, requiredID("Reviewer", id)); err != nil {
		return err
	}
	r.reviewerID = id
	return nil
}

func (r *Review) SetBookID(id uuid.UUID) error {
	if err := check(kindReview, requiredID("Book", id)); err != nil {
		return err
	}
	r.bookID = id
	return nil
}

func (r *Review) Validate() []string {
	return join(
		validateReviewText(r.text),
		validateRating(r.rating),
		requiredID("Reviewer", r.reviewerID),
		requiredID("Book", r.bookID),
	)
}

func validateReviewText(text string) []string { return RequiredText("Text", text) }

func validateRating(rating int) []string {
	if rating < minRating || rating > maxRating {
		return []string{RatingRange.Format("Rating", minRating, maxRating)}
	}
	return nil
}

func requiredID(field string, id uuid.UUID) []string {
	if id == uuid.Nil {
		return []string{Required.Format(field)}
	}
	return nil
}

type reviewRecord struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	BookID     uuid.UUID `json:"bookId"`
}

func (r *Review) MarshalJSON() ([]byte, error) {
	return json.Marshal(reviewRecord{
		ID:         r.id,
		Text:       r.text,
		Rating:     r.rating,
		ReviewerID: r.reviewerID,
		BookID:     r.bookID,
	})
}

func (r *Review) UnmarshalJSON(data []byte) error {
	var rec reviewRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = Review{
		Base:       Base{id: rec.ID},
		text:       rec.Text,
		rating:     rec.Rating,
		reviewerID: rec.ReviewerID,
		bookID:     rec.BookID,
	}
	return nil
}
