package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookreviews/internal/models"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

var _ Books = (*BookRepository)(nil)

const (
	selectBookByISBNSQL = `SELECT id, isbn, title, author, year FROM books WHERE isbn = ?`

	// Patterns arrive pre-wrapped (or empty) from the caller; an empty
	// pattern only ever matches an empty column value.
	searchBooksSQL = `SELECT id, isbn, title, author, year FROM books WHERE title LIKE ? OR author LIKE ? OR isbn LIKE ? ORDER BY year DESC`
)

// GetByISBN fetches a book by its ISBN. Returns (nil, nil) if not found.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var b models.Book
	err := r.db.QueryRowContext(ctx, selectBookByISBNSQL, isbn).
		Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select book %q: %w", isbn, err)
	}
	return &b, nil
}

// Search runs the OR-combined LIKE query, newest publication year first.
func (r *BookRepository) Search(ctx context.Context, titlePattern, authorPattern, isbnPattern string) ([]models.Book, error) {
	rows, err := r.db.QueryContext(ctx, searchBooksSQL, titlePattern, authorPattern, isbnPattern)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Year); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}
	return books, nil
}
