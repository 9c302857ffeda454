package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookreviews/internal/models"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

var _ Reviews = (*ReviewRepository)(nil)

const (
	selectReviewSQL = `SELECT id, book_id, user_id, rating, review FROM reviews WHERE book_id = ? AND user_id = ?`

	insertReviewSQL = `INSERT INTO reviews (book_id, user_id, rating, review) VALUES (?, ?, ?, ?)`

	updateReviewBothSQL   = `UPDATE reviews SET rating = ?, review = ? WHERE book_id = ? AND user_id = ?`
	updateReviewTextSQL   = `UPDATE reviews SET review = ? WHERE book_id = ? AND user_id = ?`
	updateReviewRatingSQL = `UPDATE reviews SET rating = ? WHERE book_id = ? AND user_id = ?`

	listBookReviewsSQL = `SELECT users.username, reviews.review FROM reviews JOIN users ON reviews.user_id = users.id WHERE book_id = ?`
)

// GetForUserBook fetches the single review row for a (book, user) pair.
// Returns (nil, nil) if the pair has no row yet.
func (r *ReviewRepository) GetForUserBook(ctx context.Context, bookID, userID int) (*models.Review, error) {
	var rev models.Review
	err := r.db.QueryRowContext(ctx, selectReviewSQL, bookID, userID).
		Scan(&rev.ID, &rev.BookID, &rev.UserID, &rev.Rating, &rev.Review)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select review book=%d user=%d: %w", bookID, userID, err)
	}
	return &rev, nil
}

// Insert creates the review row for a pair that has none.
func (r *ReviewRepository) Insert(ctx context.Context, bookID, userID, rating int, review string) error {
	if _, err := r.db.ExecContext(ctx, insertReviewSQL, bookID, userID, rating, review); err != nil {
		return fmt.Errorf("insert review book=%d user=%d: %w", bookID, userID, err)
	}
	return nil
}

// UpdateBoth sets rating and review text on an existing row.
func (r *ReviewRepository) UpdateBoth(ctx context.Context, bookID, userID, rating int, review string) error {
	if _, err := r.db.ExecContext(ctx, updateReviewBothSQL, rating, review, bookID, userID); err != nil {
		return fmt.Errorf("update review book=%d user=%d: %w", bookID, userID, err)
	}
	return nil
}

// UpdateReview sets only the review text, keeping the stored rating.
func (r *ReviewRepository) UpdateReview(ctx context.Context, bookID, userID int, review string) error {
	if _, err := r.db.ExecContext(ctx, updateReviewTextSQL, review, bookID, userID); err != nil {
		return fmt.Errorf("update review text book=%d user=%d: %w", bookID, userID, err)
	}
	return nil
}

// UpdateRating sets only the rating, keeping the stored review text.
func (r *ReviewRepository) UpdateRating(ctx context.Context, bookID, userID, rating int) error {
	if _, err := r.db.ExecContext(ctx, updateReviewRatingSQL, rating, bookID, userID); err != nil {
		return fmt.Errorf("update rating book=%d user=%d: %w", bookID, userID, err)
	}
	return nil
}

// ListForBook returns (username, review) rows for every user who touched the book.
func (r *ReviewRepository) ListForBook(ctx context.Context, bookID int) ([]models.BookReview, error) {
	rows, err := r.db.QueryContext(ctx, listBookReviewsSQL, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for book=%d: %w", bookID, err)
	}
	defer func() { _ = rows.Close() }()

	var list []models.BookReview
	for rows.Next() {
		var (
			br   models.BookReview
			text sql.NullString
		)
		if err := rows.Scan(&br.Username, &text); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		br.Review = text.String
		list = append(list, br)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return list, nil
}
