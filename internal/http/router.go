package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nveloso/pipeflow/internal/http/auth"
	"github.com/nveloso/pipeflow/internal/http/checkout"
	"github.com/nveloso/pipeflow/internal/http/lead"
	"github.com/nveloso/pipeflow/internal/http/pipeline"
)

func New(
	jwtSecret string,
	pipelinesV1 *pipeline.Handler,
	leadsV1 *lead.Handler,
	checkoutV1 *checkout.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/pipelines", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			pipelinesV1.Routes(r)
		})

		r.Route("/leads", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			leadsV1.Routes(r)
		})

		checkoutV1.Routes(r)
	})

	return router
}
