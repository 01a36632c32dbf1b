package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Author is the name of the person who wrote a blog post.
type Author struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// BlogPost represents a single blog article.
type BlogPost struct {
	ID      string    `json:"id" validate:"omitempty,uuid4"`
	Author  Author    `json:"author" validate:"required"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}
