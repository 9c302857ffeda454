package service

import (
	"context"
	"errors"

	"bookreviews/internal/models"
	"bookreviews/internal/repository"
)

var (
	// ErrNoSearchData rejects a search with all three fields empty before
	// any store query runs.
	ErrNoSearchData = errors.New("no search data provided")

	// ErrBookNotFound means the aggregator knows the ISBN but the local
	// catalog does not.
	ErrBookNotFound = errors.New("no book with that ISBN")
)

// CatalogService answers catalog searches and builds the merged book view.
type CatalogService struct {
	books      repository.Books
	aggregator Aggregator
}

func NewCatalogService(books repository.Books, aggregator Aggregator) *CatalogService {
	return &CatalogService{books: books, aggregator: aggregator}
}

var _ Catalog = (*CatalogService)(nil)

// likePattern wraps a non-empty field for substring matching. Empty fields
// stay empty so they only ever match empty column values in the OR query.
func likePattern(s string) string {
	if s == "" {
		return ""
	}
	return "%" + s + "%"
}

// Search matches title/author/isbn substrings combined with OR, newest first.
func (s *CatalogService) Search(ctx context.Context, q SearchQuery) ([]models.Book, error) {
	if q.Title == "" && q.Author == "" && q.ISBN == "" {
		return nil, ErrNoSearchData
	}
	return s.books.Search(ctx, likePattern(q.Title), likePattern(q.Author), likePattern(q.ISBN))
}

// BookInfo queries the aggregator first, then the local catalog, and merges
// the two. Aggregator failures surface as goodreads.ErrInvalidISBN; a missing
// local row surfaces as ErrBookNotFound.
func (s *CatalogService) BookInfo(ctx context.Context, isbn string) (*models.BookInfo, error) {
	counts, err := s.aggregator.ReviewCounts(ctx, isbn)
	if err != nil {
		return nil, err
	}

	b, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookNotFound
	}

	return &models.BookInfo{
		Title:                b.Title,
		Author:               b.Author,
		Year:                 b.Year,
		ISBN:                 counts.ISBN,
		ISBN13:               counts.ISBN13,
		RatingsCount:         counts.RatingsCount,
		ReviewsCount:         counts.ReviewsCount,
		TextReviewsCount:     counts.TextReviewsCount,
		WorkRatingsCount:     counts.WorkRatingsCount,
		WorkReviewsCount:     counts.WorkReviewsCount,
		WorkTextReviewsCount: counts.WorkTextReviewsCount,
		AverageRating:        counts.AverageRating,
		BookID:               b.ID,
	}, nil
}
