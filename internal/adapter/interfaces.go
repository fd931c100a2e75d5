// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the movie client.
//
// The primary abstraction is [MovieAPI], one method per remote operation of
// the movie catalog REST API. The package ships an HTTP implementation
// ([NewHTTPMovieAPI]) built on resty.
//
// Every method returns the response body untouched (or "{}" for an empty or
// falsy body). Failures are structured: a [*TransportError] when no response
// reached the client and a [*RemoteError] for non-2xx answers. Both unwrap to
// the sentinels in errors.go, so callers can branch with [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-movie-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/movie_api_mock.go -package=mock

// MovieAPI defines communication with the remote movie catalog API.
// Implementations attach bearer authorization where the endpoint needs it,
// reading the credentials anew on every call.
type MovieAPI interface {
	// RegisterUser creates an account. POST /users, no auth.
	RegisterUser(ctx context.Context, details models.UserDetails) (json.RawMessage, error)

	// Login exchanges credentials for a user record and a token.
	// POST /login, no auth.
	Login(ctx context.Context, credentials models.Credentials) (json.RawMessage, error)

	// GetAllMovies lists the catalog. GET /movies.
	GetAllMovies(ctx context.Context) (json.RawMessage, error)

	// GetOneMovie fetches a movie by title. GET /movies/{title}.
	GetOneMovie(ctx context.Context, title string) (json.RawMessage, error)

	// GetDirector fetches director information. GET /movies/director/{director}.
	GetDirector(ctx context.Context, director string) (json.RawMessage, error)

	// GetGenre fetches genre information. GET /movies/Genre/{genre}.
	GetGenre(ctx context.Context, genre string) (json.RawMessage, error)

	// GetUser fetches the active user's record. GET /users/{user}.
	GetUser(ctx context.Context) (json.RawMessage, error)

	// AddFavoriteMovie adds movieID to the active user's favourites.
	// PUT /users/{user}/movies/{movieID} with {"FavoriteMovie": movieID}.
	AddFavoriteMovie(ctx context.Context, movieID string) (json.RawMessage, error)

	// RemoveFavoriteMovie removes movieID from the active user's favourites.
	// DELETE /users/{user}/movies/{movieID}.
	RemoveFavoriteMovie(ctx context.Context, movieID string) (json.RawMessage, error)

	// EditUser updates the active user's account. PUT /users/{user}.
	EditUser(ctx context.Context, details models.UserDetails) (json.RawMessage, error)

	// GetFavoriteMovies fetches the active user's record, from which callers
	// extract FavoriteMovies. GET /users/{user}.
	GetFavoriteMovies(ctx context.Context) (json.RawMessage, error)

	// DeleteUser deletes the active user's account. DELETE /users/{user}.
	DeleteUser(ctx context.Context) (json.RawMessage, error)
}

// CredentialsProvider supplies the session token and active username. It is
// consulted immediately before every authenticated request; the adapter keeps
// no copy.
type CredentialsProvider interface {
	Token(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
}
