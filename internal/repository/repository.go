package repository

import (
	"context"
	"database/sql"

	"bookreviews/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Books interface {
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	Search(ctx context.Context, titlePattern, authorPattern, isbnPattern string) ([]models.Book, error)
}

type Reviews interface {
	GetForUserBook(ctx context.Context, bookID, userID int) (*models.Review, error)
	Insert(ctx context.Context, bookID, userID, rating int, review string) error
	UpdateBoth(ctx context.Context, bookID, userID, rating int, review string) error
	UpdateReview(ctx context.Context, bookID, userID int, review string) error
	UpdateRating(ctx context.Context, bookID, userID, rating int) error
	ListForBook(ctx context.Context, bookID int) ([]models.BookReview, error)
}

type Repository struct {
	Auth    Authorization
	Books   Books
	Reviews Reviews
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		Books:   NewBookRepository(db),
		Reviews: NewReviewRepository(db),
	}
}
