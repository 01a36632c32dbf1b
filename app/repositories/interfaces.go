package repositories

import "blogapi/app/models"

// PostRepository defines the interface for blog post data access
type PostRepository interface {
	Create(post *models.BlogPost) error
	InsertMany(posts []*models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	List(limit, offset int) ([]*models.BlogPost, error)
	Count() (int, error)
}
