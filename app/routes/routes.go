package routes

import (
	"log/slog"
	"net/http"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(postService *services.PostService, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(postService, logger)

	router.HandleFunc("/posts", postController.Index).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", postController.Show).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}` + "\n"))
	}).Methods(http.MethodGet)

	// Middleware registered with Use does not run for unmatched routes.
	router.NotFoundHandler = middleware.ContentTypeJSON(http.HandlerFunc(postController.NotFound))
	router.MethodNotAllowedHandler = middleware.ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}` + "\n"))
	}))

	return router
}
