package apitest

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-movie-client/internal/app"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) getAllMovies(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, s.Movies(), http.StatusOK)
}

// getMovie answers an unknown title with a literal null, as the real API
// does.
func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	for _, m := range s.Movies() {
		if m.Title == title {
			utils.WriteJSON(w, m, http.StatusOK)
			return
		}
	}
	utils.WriteJSON(w, json.RawMessage("null"), http.StatusOK)
}

func (s *Server) getDirector(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "director")
	for _, m := range s.Movies() {
		if m.Director.Name == name {
			utils.WriteJSON(w, m.Director, http.StatusOK)
			return
		}
	}
	utils.WriteError(w, app.MsgMovieNotFound, http.StatusNotFound)
}

func (s *Server) getGenre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "genre")
	for _, m := range s.Movies() {
		if m.Genre.Name == name {
			utils.WriteJSON(w, m.Genre, http.StatusOK)
			return
		}
	}
	utils.WriteError(w, app.MsgMovieNotFound, http.StatusNotFound)
}

func seedMovies(ids *utils.UUIDGenerator) []models.Movie {
	nolan := models.Director{Name: "Christopher Nolan", Bio: "British-American filmmaker.", Birth: "1970"}
	peele := models.Director{Name: "Jordan Peele", Bio: "American filmmaker and comedian.", Birth: "1979"}
	scifi := models.Genre{Name: "Sci-Fi", Description: "Speculative stories built on science and technology."}
	horror := models.Genre{Name: "Horror", Description: "Stories meant to frighten."}

	return []models.Movie{
		{ID: ids.Generate(), Title: "Inception", Director: nolan, Genre: scifi, Featured: true},
		{ID: ids.Generate(), Title: "Interstellar", Director: nolan, Genre: scifi},
		{ID: ids.Generate(), Title: "Get Out", Director: peele, Genre: horror, Featured: true},
		{ID: ids.Generate(), Title: "Us", Director: peele, Genre: horror},
	}
}
