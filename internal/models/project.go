package models

import (
	"time"
)

// Project represents an AI project showcase entry. Unlike Post it carries no
// updated_at; replaces leave its single timestamp untouched.
type Project struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Content      string    `json:"content" db:"content"`
	Technologies []string  `json:"technologies" db:"technologies"`
	DemoURL      *string   `json:"demo_url" db:"demo_url"`
	GithubURL    *string   `json:"github_url" db:"github_url"`
	ImageURL     *string   `json:"image_url" db:"image_url"`
	Featured     bool      `json:"featured" db:"featured"`
	Author       string    `json:"author,omitempty" db:"author"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ProjectInput is the inbound payload for creating or replacing a project.
type ProjectInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Content      string   `json:"content" binding:"required"`
	Technologies []string `json:"technologies"`
	DemoURL      *string  `json:"demo_url"`
	GithubURL    *string  `json:"github_url"`
	ImageURL     *string  `json:"image_url"`
	Featured     *bool    `json:"featured"`

	BlogSecret string `json:"blog_secret"`
}

// ProjectFilter describes the project list query.
type ProjectFilter struct {
	FeaturedOnly bool
	Skip         int
	Limit        int
}
