package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arundaon/blog-api/internal/api"
	apimw "github.com/arundaon/blog-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(apimw.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	userHandler := api.NewUserHandler(app.userService, app.logger)
	postHandler := api.NewPostHandler(app.postService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		// Reads are public.
		r.Get("/posts", postHandler.List)
		r.Get("/posts/{postId}", postHandler.Get)

		// Mutations require an authenticated principal.
		r.Group(func(r chi.Router) {
			r.Use(app.authMw.Authenticate)
			r.Post("/posts", postHandler.Create)
			r.Put("/posts/{postId}", postHandler.Update)
			r.Delete("/posts/{postId}", postHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
