// File: internal/model/post.go
package model

import "time"

// Post is owned by exactly one User. Tags is nullable.
type Post struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Tags        *string   `db:"tags" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Published   bool      `db:"published" json:"published"`
	Likes       int       `db:"likes" json:"likes"`
	UserID      int       `db:"user_id" json:"user_id"`
}
