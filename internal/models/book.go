package models

// Book is a catalog entry. Rows are pre-populated; this app never writes them.
type Book struct {
	ID     int    `json:"id"`
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// BookInfo merges the local catalog row with the aggregate counts returned
// by the external review API. This is the shape served by /api/:isbn.
type BookInfo struct {
	Title                string `json:"title"`
	Author               string `json:"author"`
	Year                 int    `json:"year"`
	ISBN                 string `json:"isbn"`
	ISBN13               string `json:"isbn13"`
	RatingsCount         int    `json:"ratings_count"`
	ReviewsCount         int    `json:"reviews_count"`
	TextReviewsCount     int    `json:"text_reviews_count"`
	WorkRatingsCount     int    `json:"work_ratings_count"`
	WorkReviewsCount     int    `json:"work_reviews_count"`
	WorkTextReviewsCount int    `json:"work_text_reviews_count"`
	// AverageRating stays a string because that is how the upstream API sends it.
	AverageRating string `json:"average_rating"`

	// BookID is the local row id, needed for review lookups.
	BookID int `json:"-"`
}
