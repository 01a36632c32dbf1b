package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostValidation(t *testing.T) {
	author := Author{FirstName: "Ada", LastName: "Lovelace"}

	tests := []struct {
		name    string
		post    *BlogPost
		wantErr bool
	}{
		{
			name: "valid post",
			post: &BlogPost{
				Author:  author,
				Title:   "Valid Title",
				Content: "Some content",
				Created: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "empty content is allowed",
			post: &BlogPost{
				Author: author,
				Title:  "Valid Title",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &BlogPost{
				Author:  author,
				Content: "Some content",
			},
			wantErr: true,
		},
		{
			name: "blank title",
			post: &BlogPost{
				Author: author,
				Title:  "   ",
			},
			wantErr: true,
		},
		{
			name: "missing author last name",
			post: &BlogPost{
				Author: Author{FirstName: "Ada"},
				Title:  "Valid Title",
			},
			wantErr: true,
		},
		{
			name: "malformed id",
			post: &BlogPost{
				ID:     "not-a-uuid",
				Author: author,
				Title:  "Valid Title",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPost)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlogPostBeforeCreate(t *testing.T) {
	t.Run("defaults created", func(t *testing.T) {
		post := &BlogPost{Title: "Test Post"}

		assert.True(t, post.Created.IsZero())
		post.BeforeCreate()
		assert.False(t, post.Created.IsZero())
	})

	t.Run("keeps supplied created", func(t *testing.T) {
		created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		post := &BlogPost{Title: "Test Post", Created: created}

		post.BeforeCreate()
		assert.Equal(t, created, post.Created)
	})
}

func TestBlogPostJSONKeys(t *testing.T) {
	post := BlogPost{
		ID:      "5f0c8d2e-4b8e-4d0e-9a57-1f6f1f5f2b11",
		Author:  Author{FirstName: "Ada", LastName: "Lovelace"},
		Title:   "Notes",
		Content: "On the analytical engine",
		Created: time.Now(),
	}

	data, err := json.Marshal(post)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"id", "title", "content", "author", "created"} {
		assert.Contains(t, fields, key)
	}

	author, ok := fields["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ada", author["firstName"])
	assert.Equal(t, "Lovelace", author["lastName"])
}
