// Package service holds the client's use-case layer: the catalog service that
// runs every movie API operation asynchronously behind one generic failure
// message, and the session service that keeps the stored token and username
// in step with the account flows.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-movie-client/internal/async"
	"github.com/MKhiriev/go-movie-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientCatalogService exposes the twelve movie API operations. Every method
// returns immediately; the request runs on its own goroutine and the future
// completes once with the extracted response data or with an
// [*OperationError].
type ClientCatalogService interface {
	// RegisterUser creates an account from details.
	RegisterUser(ctx context.Context, details models.UserDetails) *async.Future[json.RawMessage]

	// Login exchanges credentials for a user record and a bearer token.
	// The session is not touched; see [ClientSessionService.Login].
	Login(ctx context.Context, credentials models.Credentials) *async.Future[json.RawMessage]

	// GetAllMovies lists the catalog.
	GetAllMovies(ctx context.Context) *async.Future[json.RawMessage]

	// GetOneMovie looks a movie up by title.
	GetOneMovie(ctx context.Context, title string) *async.Future[json.RawMessage]

	// GetDirector looks a director up by name.
	GetDirector(ctx context.Context, director string) *async.Future[json.RawMessage]

	// GetGenre looks a genre up by name.
	GetGenre(ctx context.Context, genre string) *async.Future[json.RawMessage]

	// GetUser fetches the active user's record.
	GetUser(ctx context.Context) *async.Future[json.RawMessage]

	// AddFavoriteMovie adds movieID to the active user's favourites.
	AddFavoriteMovie(ctx context.Context, movieID string) *async.Future[json.RawMessage]

	// RemoveFavoriteMovie removes movieID from the active user's favourites.
	RemoveFavoriteMovie(ctx context.Context, movieID string) *async.Future[json.RawMessage]

	// EditUser updates the active user's record with the non-empty fields of
	// details.
	EditUser(ctx context.Context, details models.UserDetails) *async.Future[json.RawMessage]

	// GetFavoriteMovies fetches the active user's record, whose
	// FavoriteMovies field carries the favourites.
	GetFavoriteMovies(ctx context.Context) *async.Future[json.RawMessage]

	// DeleteUser deletes the active user's account.
	DeleteUser(ctx context.Context) *async.Future[json.RawMessage]
}

// ClientSessionService runs the account flows that change the stored session.
// Every method blocks until the remote call completes. Failures are
// [*OperationError] values.
type ClientSessionService interface {
	// Register creates the account and makes details.Username the active
	// user. No token is stored; the user still has to log in.
	Register(ctx context.Context, details models.UserDetails) (models.User, error)

	// Login authenticates and stores the returned token and username.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Logout clears the stored session. It never calls the API.
	Logout(ctx context.Context) error

	// EditProfile updates the account and, when the username changes, stores
	// the new one so later calls address the renamed account.
	EditProfile(ctx context.Context, details models.UserDetails) (models.User, error)

	// DeleteAccount deletes the account and clears the session on success.
	DeleteAccount(ctx context.Context) error

	// Current returns the stored session with the token expiry filled in.
	Current(ctx context.Context) (models.Session, error)
}
