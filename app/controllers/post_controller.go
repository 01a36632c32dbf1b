package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	logger      *slog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, logger *slog.Logger) *PostController {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// Index lists posts as a JSON array. The optional limit and offset query
// parameters page the listing; malformed values are ignored.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")

	posts, err := pc.postService.ListPosts(limit, offset)
	if err != nil {
		pc.logger.Error("failed to list posts", "error", err)
		pc.sendError(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusOK, posts)
}

// Show returns a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		pc.sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		pc.logger.Error("failed to get post", "id", id, "error", err)
		pc.sendError(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// NotFound answers requests for unknown routes
func (pc *PostController) NotFound(w http.ResponseWriter, r *http.Request) {
	pc.sendError(w, "Not found", http.StatusNotFound)
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		pc.logger.Error("failed to encode response", "error", err)
	}
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	pc.sendJSON(w, status, map[string]string{"error": message})
}
