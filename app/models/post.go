package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPost is returned when a post fails validation.
var ErrInvalidPost = errors.New("invalid post")

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title cannot be blank", ErrInvalidPost)
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
}
