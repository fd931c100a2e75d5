package apitest

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const tokenTTL = 7 * 24 * time.Hour

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, s.withRequestID, s.withLogging, s.record, s.fail)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", s.register)
		r.Post("/login", s.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(s.auth)

		r.Get("/movies", s.getAllMovies)
		r.Get("/movies/{title}", s.getMovie)
		r.Get("/movies/director/{director}", s.getDirector)
		r.Get("/movies/Genre/{genre}", s.getGenre)

		r.Get("/users/{username}", s.getUser)
		r.Put("/users/{username}", s.editUser)
		r.Delete("/users/{username}", s.deleteUser)

		// The API accepts both verbs for adding a favourite.
		r.Post("/users/{username}/movies/{movieID}", s.addFavorite)
		r.Put("/users/{username}/movies/{movieID}", s.addFavorite)
		r.Delete("/users/{username}/movies/{movieID}", s.removeFavorite)
	})

	return router
}
