package repositories

import (
	"errors"
	"fmt"
	"sort"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create stores a single post, assigning its ID.
func (r *BadgerPostRepository) Create(post *models.BlogPost) error {
	return r.InsertMany([]*models.BlogPost{post})
}

// InsertMany stores posts, assigning their IDs. Every post is validated
// first; if any is invalid nothing is written. A batch that outgrows one
// Badger transaction is committed in several, so a storage failure part way
// through can leave the earlier transactions written.
func (r *BadgerPostRepository) InsertMany(posts []*models.BlogPost) error {
	for i, post := range posts {
		if post == nil {
			return fmt.Errorf("%w: post %d is nil", models.ErrInvalidPost, i)
		}
		post.BeforeCreate()
		if err := post.Validate(); err != nil {
			return fmt.Errorf("post %d: %w", i, err)
		}
	}

	ids := make([]string, len(posts))
	txn := r.db.NewTransaction(true)
	defer func() { txn.Discard() }()

	for i, post := range posts {
		ids[i] = uuid.NewString()

		doc := *post
		doc.ID = ids[i]
		data, err := marshalEntity(&doc)
		if err != nil {
			return err
		}

		err = txn.Set(postKey(doc.ID), data)
		if errors.Is(err, badger.ErrTxnTooBig) {
			if err := txn.Commit(); err != nil {
				return fmt.Errorf("failed to commit posts: %w", err)
			}
			txn = r.db.NewTransaction(true)
			err = txn.Set(postKey(doc.ID), data)
		}
		if err != nil {
			return fmt.Errorf("failed to store post: %w", err)
		}
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("failed to commit posts: %w", err)
	}

	// IDs are only handed back once every post has been committed.
	for i, post := range posts {
		post.ID = ids[i]
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts ordered by creation time, oldest first. A limit of zero
// or less returns every post from offset onwards.
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.BlogPost, error) {
	posts := []*models.BlogPost{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.BlogPost
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
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

// Count returns the number of stored posts
func (r *BadgerPostRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
