package apitest

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-movie-client/internal/app"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var details models.UserDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if details.Username == "" || details.Password == "" {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusUnprocessableEntity)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.MinCost)
	if err != nil {
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[details.Username]; exists {
		utils.WriteError(w, details.Username+" "+app.MsgUsernameAlreadyExists, http.StatusBadRequest)
		return
	}

	acc := &account{
		user: models.User{
			ID:             s.ids.Generate(),
			Username:       details.Username,
			Password:       string(hash),
			Email:          details.Email,
			Birthday:       details.Birthday,
			FavoriteMovies: []string{},
		},
		passwordHash: hash,
	}
	s.users[details.Username] = acc

	utils.WriteJSON(w, acc.user, http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	acc, ok := s.users[credentials.Username]
	var user models.User
	var hash []byte
	if ok {
		user, hash = cloneUser(acc.user), acc.passwordHash
	}
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(credentials.Password)) != nil {
		utils.WriteError(w, app.MsgInvalidLoginPassword, http.StatusBadRequest)
		return
	}

	token, err := issueToken(user.Username)
	if err != nil {
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{User: user, Token: token}, http.StatusOK)
}

// getUser answers an unknown username with a literal null, as the real API
// does.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.User(chi.URLParam(r, "username"))
	if !ok {
		utils.WriteJSON(w, json.RawMessage("null"), http.StatusOK)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (s *Server) editUser(w http.ResponseWriter, r *http.Request) {
	var details models.UserDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var hash []byte
	if details.Password != "" {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.MinCost); err != nil {
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	username := chi.URLParam(r, "username")

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[username]
	if !ok {
		utils.WriteError(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}
	if details.Username != "" && details.Username != username {
		if _, taken := s.users[details.Username]; taken {
			utils.WriteError(w, details.Username+" "+app.MsgUsernameAlreadyExists, http.StatusBadRequest)
			return
		}
		delete(s.users, username)
		acc.user.Username = details.Username
		s.users[details.Username] = acc
	}
	if hash != nil {
		acc.passwordHash = hash
		acc.user.Password = string(hash)
	}
	if details.Email != "" {
		acc.user.Email = details.Email
	}
	if details.Birthday != "" {
		acc.user.Birthday = details.Birthday
	}

	utils.WriteJSON(w, acc.user, http.StatusOK)
}

// deleteUser answers with a plain-text confirmation, as the real API does.
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; !ok {
		utils.WriteError(w, username+" was not found", http.StatusBadRequest)
		return
	}
	delete(s.users, username)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(username + " was deleted."))
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	s.updateFavorites(w, r, func(favorites []string, movieID string) []string {
		if slices.Contains(favorites, movieID) {
			return favorites
		}
		return append(favorites, movieID)
	})
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	s.updateFavorites(w, r, func(favorites []string, movieID string) []string {
		return slices.DeleteFunc(favorites, func(id string) bool { return id == movieID })
	})
}

func (s *Server) updateFavorites(w http.ResponseWriter, r *http.Request, update func([]string, string) []string) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieID")

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[username]
	if !ok {
		utils.WriteError(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}
	acc.user.FavoriteMovies = update(acc.user.FavoriteMovies, movieID)

	utils.WriteJSON(w, acc.user, http.StatusOK)
}
