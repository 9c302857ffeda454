// Package goodreads wraps the Goodreads review_counts lookup by ISBN.
// The upstream is treated as untrusted: any malformed or empty response
// collapses into ErrInvalidISBN.
package goodreads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidISBN covers every upstream failure mode: transport errors,
// non-2xx statuses, undecodable bodies and empty book lists. Callers are
// not supposed to tell these apart.
var ErrInvalidISBN = errors.New("invalid ISBN")

const requestTimeout = 10 * time.Second

// BookCounts is one entry of the review_counts response.
type BookCounts struct {
	ID                   int    `json:"id"`
	ISBN                 string `json:"isbn"`
	ISBN13               string `json:"isbn13"`
	RatingsCount         int    `json:"ratings_count"`
	ReviewsCount         int    `json:"reviews_count"`
	TextReviewsCount     int    `json:"text_reviews_count"`
	WorkRatingsCount     int    `json:"work_ratings_count"`
	WorkReviewsCount     int    `json:"work_reviews_count"`
	WorkTextReviewsCount int    `json:"work_text_reviews_count"`
	AverageRating        string `json:"average_rating"`
}

type reviewCountsResponse struct {
	Books []BookCounts `json:"books"`
}

// Client calls the review_counts endpoint. One blocking call per request,
// no retries; the only resilience is the client timeout.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

func NewClient(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// ReviewCounts looks up aggregate rating data for a single ISBN.
func (c *Client) ReviewCounts(ctx context.Context, isbn string) (*BookCounts, error) {
	q := url.Values{}
	q.Set("key", c.key)
	q.Set("isbns", isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build review counts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidISBN, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrInvalidISBN, resp.StatusCode)
	}

	var body reviewCountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrInvalidISBN, err)
	}
	if len(body.Books) == 0 {
		return nil, fmt.Errorf("%w: no book entries", ErrInvalidISBN)
	}

	counts := body.Books[0]
	return &counts, nil
}
