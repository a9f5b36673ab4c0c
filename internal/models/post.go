package models

import (
	"time"
)

// Post represents a blog post as persisted and served
type Post struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Excerpt       string    `json:"excerpt" db:"excerpt"`
	Tags          []string  `json:"tags" db:"tags"`
	Category      string    `json:"category" db:"category"`
	FeaturedImage *string   `json:"featured_image" db:"featured_image"`
	Published     bool      `json:"published" db:"published"`
	Author        string    `json:"author,omitempty" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// PostInput is the inbound payload for creating or replacing a post. It is a
// separate type from Post so transport-only fields (the shared secret) and
// server-assigned fields (id, timestamps, author) never meet: the secret is
// structurally absent from the persisted record.
type PostInput struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"required"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category" binding:"required"`
	FeaturedImage *string  `json:"featured_image"`
	Published     *bool    `json:"published"`

	// BlogSecret carries the shared-secret credential in secret mode. It is
	// read by the authorization gate and goes no further.
	BlogSecret string `json:"blog_secret"`
}

// PostFilter describes the list query: a conjunction of equality predicates
// plus offset pagination. Results are always sorted created_at descending.
type PostFilter struct {
	Category      string
	PublishedOnly bool
	Skip          int
	Limit         int
}
