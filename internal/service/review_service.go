package service

import (
	"context"
	"errors"

	"bookreviews/internal/models"
	"bookreviews/internal/repository"
)

// ErrReviewComplete rejects submissions for a pair whose row already holds
// both fields; a completed review is append-only.
var ErrReviewComplete = errors.New("already rated and reviewed")

// ReviewState is the four-way completion state of a (user, book) pair.
type ReviewState int

const (
	StateNone ReviewState = iota
	StateRatingOnly
	StateReviewOnly
	StateComplete
)

// StateOf maps a review row's nullable (rating, review) pair to its state.
// A nil row counts as StateNone.
func StateOf(r *models.Review) ReviewState {
	if r == nil {
		return StateNone
	}
	switch {
	case r.Rating.Valid && r.Review.Valid:
		return StateComplete
	case r.Rating.Valid:
		return StateRatingOnly
	case r.Review.Valid:
		return StateReviewOnly
	default:
		return StateNone
	}
}

// ReviewStatus carries the two independent view flags derived from a state.
type ReviewStatus struct {
	NoRating bool
	NoReview bool
}

// Status exposes the view flags for a state tag.
func (st ReviewState) Status() ReviewStatus {
	return ReviewStatus{
		NoRating: st == StateNone || st == StateReviewOnly,
		NoReview: st == StateNone || st == StateRatingOnly,
	}
}

// ReviewService owns the per-user review state and its single transition.
type ReviewService struct {
	reviews repository.Reviews
}

func NewReviewService(reviews repository.Reviews) *ReviewService {
	return &ReviewService{reviews: reviews}
}

var _ Reviews = (*ReviewService)(nil)

// Status derives the current completion flags for a (book, user) pair.
func (s *ReviewService) Status(ctx context.Context, bookID, userID int) (ReviewStatus, error) {
	row, err := s.reviews.GetForUserBook(ctx, bookID, userID)
	if err != nil {
		return ReviewStatus{}, err
	}
	return StateOf(row).Status(), nil
}

// Submit applies exactly one mutation for the pair:
// no row → insert; row with neither field → fill both; rating-only → add the
// review text; review-only → add the rating; complete → ErrReviewComplete.
func (s *ReviewService) Submit(ctx context.Context, bookID, userID, rating int, review string) error {
	row, err := s.reviews.GetForUserBook(ctx, bookID, userID)
	if err != nil {
		return err
	}

	switch StateOf(row) {
	case StateNone:
		if row == nil {
			return s.reviews.Insert(ctx, bookID, userID, rating, review)
		}
		return s.reviews.UpdateBoth(ctx, bookID, userID, rating, review)
	case StateRatingOnly:
		return s.reviews.UpdateReview(ctx, bookID, userID, review)
	case StateReviewOnly:
		return s.reviews.UpdateRating(ctx, bookID, userID, rating)
	default:
		return ErrReviewComplete
	}
}

// ListForBook returns every (username, review) row for the book.
func (s *ReviewService) ListForBook(ctx context.Context, bookID int) ([]models.BookReview, error) {
	return s.reviews.ListForBook(ctx, bookID)
}
