package repository

import (
	"github.com/blackwell-systems/libcat/internal/entity"
	"github.com/google/uuid"
)

// ReviewRepository adds review finders to the generic engine.
type ReviewRepository struct {
	*Repository[*entity.Review]
}

func (r *ReviewRepository) FindAllByBook(bookID uuid.UUID) []*entity.Review {
	return r.FindAllFunc(func(v *entity.Review) bool { return v.BookID() == bookID })
}

func (r *ReviewRepository) FindAllByReviewer(userID uuid.UUID) []*entity.Review {
	return r.FindAllFunc(func(v *entity.Review) bool { return v.ReviewerID() == userID })
}

func (r *ReviewRepository) FindAllByRating(rating int) []*entity.Review {
	return r.FindAllFunc(func(v *entity.Review) bool { return v.Rating() == rating })
}
