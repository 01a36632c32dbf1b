package mock

import (
	"errors"
	"sort"
	"sync"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/google/uuid"
)

// PostRepository is an in-memory repositories.PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.BlogPost
	mutex sync.RWMutex

	// Err, when set, is returned by every method.
	Err error
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.BlogPost),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.BlogPost)
}

func (m *PostRepository) Create(post *models.BlogPost) error {
	return m.InsertMany([]*models.BlogPost{post})
}

func (m *PostRepository) InsertMany(posts []*models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	for _, post := range posts {
		if post == nil {
			return errors.New("post cannot be nil")
		}
		post.BeforeCreate()
		if err := post.Validate(); err != nil {
			return err
		}
	}
	for _, post := range posts {
		post.ID = uuid.NewString()
		stored := *post
		m.posts[post.ID] = &stored
	}
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	found := *post
	return &found, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	posts := []*models.BlogPost{}
	for _, post := range m.posts {
		found := *post
		posts = append(posts, &found)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Created.Equal(posts[j].Created) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].Created.Before(posts[j].Created)
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(posts) {
		return []*models.BlogPost{}, nil
	}
	posts = posts[offset:]
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *PostRepository) Count() (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.posts), nil
}
