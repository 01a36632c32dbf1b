package services

import (
	"fmt"
	"strings"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.BlogPost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, repositories.ErrNotFound
	}
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves posts oldest first. A limit of zero or less returns
// every post from offset onwards.
func (s *PostService) ListPosts(limit, offset int) ([]*models.BlogPost, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.postRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	return posts, nil
}

// CountPosts returns the number of stored posts
func (s *PostService) CountPosts() (int, error) {
	count, err := s.postRepo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
