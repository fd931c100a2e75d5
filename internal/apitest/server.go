// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest provides an in-process implementation of the movie API for
// tests. It serves every endpoint the client consumes, keeps users and movies
// in memory, issues HS256 tokens at /login and records every request it
// receives so tests can assert on what went over the wire.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer  = "movie-api"
	tokenSignKey = "apitest-sign-key"
)

// Request is one request as received by the server.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          []byte
}

type account struct {
	user         models.User
	passwordHash []byte
}

type failure struct {
	status int
	body   string
}

// Server is a fake movie API listening on a loopback address.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]*account
	movies   []models.Movie
	requests []Request
	failure  *failure

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewServer starts a server seeded with a small catalog. Request logs go to
// the test log. It is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:  make(map[string]*account),
		ids:    utils.NewUUIDGenerator(),
		logger: &logger.Logger{Logger: zerolog.New(zerolog.NewTestWriter(t)).With().Str("role", "apitest").Logger()},
	}
	s.movies = seedMovies(s.ids)
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// AddUser creates an account directly, bypassing POST /users.
func (s *Server) AddUser(t testing.TB, username, password string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := &account{
		user: models.User{
			ID:             s.ids.Generate(),
			Username:       username,
			Password:       string(hash),
			FavoriteMovies: []string{},
		},
		passwordHash: hash,
	}
	s.users[username] = acc
	return acc.user
}

// Token issues a valid bearer token for username.
func (s *Server) Token(t testing.TB, username string) string {
	t.Helper()

	token, err := issueToken(username)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// User returns the stored record of username.
func (s *Server) User(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[username]
	if !ok {
		return models.User{}, false
	}
	return cloneUser(acc.user), true
}

// Movies returns the catalog.
func (s *Server) Movies() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Movie(nil), s.movies...)
}

// Movie returns the catalog entry titled title. It panics on unknown titles
// since tests only ask for seeded ones.
func (s *Server) Movie(title string) models.Movie {
	for _, m := range s.Movies() {
		if m.Title == title {
			return m
		}
	}
	panic("apitest: no seeded movie titled " + title)
}

// Requests returns every request received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request. ok is false if none arrived.
func (s *Server) LastRequest() (req Request, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// ResetRequests forgets the recorded requests.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = nil
}

// FailWith makes every following request fail with status and body. An
// empty body is replaced by the status text.
func (s *Server) FailWith(status int, body string) {
	if body == "" {
		body = http.StatusText(status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.failure = &failure{status: status, body: body}
}

// Recover undoes FailWith.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failure = nil
}

func issueToken(username string) (string, error) {
	return utils.GenerateJWTToken(tokenIssuer, username, tokenTTL, tokenSignKey)
}

func cloneUser(u models.User) models.User {
	u.FavoriteMovies = append([]string{}, u.FavoriteMovies...)
	return u
}
