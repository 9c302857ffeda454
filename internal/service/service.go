package service

import (
	"context"
	"time"

	"bookreviews/internal/goodreads"
	"bookreviews/internal/models"
	"bookreviews/internal/repository"
)

type Authorization interface {
	Register(username, password string) (int, error)
	Authenticate(username, password string) (int, error)
}

// Sessions issues and validates the tokens carried in the session cookie.
type Sessions interface {
	IssueToken(userID int) (string, error)
	ParseToken(token string) (int, error)
}

// SearchQuery carries the raw (unwrapped) form fields of a catalog search.
type SearchQuery struct {
	Title  string
	Author string
	ISBN   string
}

// Catalog exposes catalog reads: free-text search and the merged
// local-plus-aggregator book view.
type Catalog interface {
	Search(ctx context.Context, q SearchQuery) ([]models.Book, error)
	BookInfo(ctx context.Context, isbn string) (*models.BookInfo, error)
}

// Reviews exposes per-user review state and the single submission operation.
type Reviews interface {
	Status(ctx context.Context, bookID, userID int) (ReviewStatus, error)
	Submit(ctx context.Context, bookID, userID, rating int, review string) error
	ListForBook(ctx context.Context, bookID int) ([]models.BookReview, error)
}

// Aggregator is the outbound review-counts lookup (implemented by goodreads.Client).
type Aggregator interface {
	ReviewCounts(ctx context.Context, isbn string) (*goodreads.BookCounts, error)
}

// SessionConfig tunes session token issuing.
type SessionConfig struct {
	SigningKey string
	TTL        time.Duration
}

type Service struct {
	Authorization
	Sessions
	Catalog
	Reviews
}

// NewService wires repository layer and the aggregator client into concrete services.
func NewService(repos *repository.Repository, agg Aggregator, sess SessionConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth),
		Sessions:      NewSessionService(sess),
		Catalog:       NewCatalogService(repos.Books, agg),
		Reviews:       NewReviewService(repos.Reviews),
	}
}
