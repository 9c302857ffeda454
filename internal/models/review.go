package models

import "database/sql"

// Review joins one user and one book. Rating and review text are filled in
// independently, so either column may be NULL.
type Review struct {
	ID     int           `json:"id"`
	BookID int           `json:"book_id"`
	UserID int           `json:"user_id"`
	Rating sql.NullInt64 `json:"rating"`
	Review sql.NullString `json:"review"`
}

// BookReview is one row of the per-book review listing (reviewer + text).
type BookReview struct {
	Username string `json:"username"`
	Review   string `json:"review"`
}
