package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories/mock"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostController(t *testing.T) (*PostController, *mock.PostRepository) {
	t.Helper()
	postRepo := mock.NewPostRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	controller := NewPostController(services.NewPostService(postRepo), logger)
	return controller, postRepo
}

func setupRouter(controller *PostController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Show).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(controller.NotFound)
	return router
}

func createPosts(t *testing.T, repo *mock.PostRepository, n int) []*models.BlogPost {
	t.Helper()
	base := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	var posts []*models.BlogPost
	for i := 0; i < n; i++ {
		posts = append(posts, &models.BlogPost{
			Author:  models.Author{FirstName: "Grace", LastName: "Hopper"},
			Title:   "Test Post",
			Content: "Test Content",
			Created: base.Add(time.Duration(i) * time.Minute),
		})
	}
	require.NoError(t, repo.InsertMany(posts))
	return posts
}

func TestPostController(t *testing.T) {
	controller, postRepo := setupTestPostController(t)
	router := setupRouter(controller)
	posts := createPosts(t, postRepo, 3)

	t.Run("list posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response []models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 3)
		assert.Equal(t, posts[0].ID, response[0].ID)
		assert.Equal(t, "Grace", response[0].Author.FirstName)
	})

	t.Run("list posts with limit and offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?limit=1&offset=2", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, posts[2].ID, response[0].ID)
	})

	t.Run("malformed paging parameters are ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts?limit=abc&offset=-4", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 3)
	})

	t.Run("get post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+posts[1].ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, posts[1].ID, response.ID)
		assert.Equal(t, posts[1].Title, response.Title)
		assert.Equal(t, posts[1].Content, response.Content)
		assert.True(t, posts[1].Created.Equal(response.Created))
	})

	t.Run("get missing post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})
}

func TestPostControllerEmptyStore(t *testing.T) {
	controller, _ := setupTestPostController(t)
	router := setupRouter(controller)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostControllerStoreFailure(t *testing.T) {
	controller, postRepo := setupTestPostController(t)
	router := setupRouter(controller)
	postRepo.Err = errors.New("connection lost")

	tests := []struct {
		name string
		path string
	}{
		{name: "list", path: "/posts"},
		{name: "show", path: "/posts/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
