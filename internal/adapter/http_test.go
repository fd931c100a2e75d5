// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-movie-client/internal/apitest"
	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCredentials is a mutable session used to check that credentials are
// read on every call.
type stubCredentials struct {
	mu       sync.Mutex
	token    string
	username string
	err      error
}

func (s *stubCredentials) set(token, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = token, username
}

func (s *stubCredentials) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *stubCredentials) Username(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, s.err
}

func newTestAdapter(t *testing.T, serverURL string, creds CredentialsProvider) MovieAPI {
	t.Helper()

	a, err := NewHTTPMovieAPI(config.ClientAdapter{BaseURL: serverURL}, creds, logger.Nop())
	require.NoError(t, err)
	return a
}

// newStaticServer answers every request with status and body and counts hits.
func newStaticServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// ── base URL ────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty selects default", raw: "", want: DefaultBaseURL},
		{name: "trailing slash", raw: "https://micolsmovieapp.herokuapp.com/", want: "https://micolsmovieapp.herokuapp.com"},
		{name: "no scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPMovieAPI_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPMovieAPI(config.ClientAdapter{BaseURL: "http://"}, &stubCredentials{}, logger.Nop())
	assert.Error(t, err)
}

// ── request construction ────────────────────────────────────────────────────

func TestMovieAPI_Routes(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser(t, "micol", "secret")
	creds := &stubCredentials{token: srv.Token(t, "micol"), username: "micol"}
	a := newTestAdapter(t, srv.URL, creds)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() (json.RawMessage, error)
		wantMethod string
		wantPath   string
		wantAuth   bool
	}{
		{"register", func() (json.RawMessage, error) {
			return a.RegisterUser(ctx, models.UserDetails{Username: "newbie", Password: "pw"})
		}, http.MethodPost, "/users", false},
		{"login", func() (json.RawMessage, error) {
			return a.Login(ctx, models.Credentials{Username: "micol", Password: "secret"})
		}, http.MethodPost, "/login", false},
		{"all movies", func() (json.RawMessage, error) { return a.GetAllMovies(ctx) }, http.MethodGet, "/movies", true},
		{"one movie", func() (json.RawMessage, error) { return a.GetOneMovie(ctx, "Inception") }, http.MethodGet, "/movies/Inception", true},
		{"director", func() (json.RawMessage, error) { return a.GetDirector(ctx, "Nolan") }, http.MethodGet, "/movies/director/Nolan", true},
		{"genre", func() (json.RawMessage, error) { return a.GetGenre(ctx, "Horror") }, http.MethodGet, "/movies/Genre/Horror", true},
		{"user", func() (json.RawMessage, error) { return a.GetUser(ctx) }, http.MethodGet, "/users/micol", true},
		{"favorites", func() (json.RawMessage, error) { return a.GetFavoriteMovies(ctx) }, http.MethodGet, "/users/micol", true},
		{"add favorite", func() (json.RawMessage, error) { return a.AddFavoriteMovie(ctx, "42") }, http.MethodPut, "/users/micol/movies/42", true},
		{"remove favorite", func() (json.RawMessage, error) { return a.RemoveFavoriteMovie(ctx, "42") }, http.MethodDelete, "/users/micol/movies/42", true},
		{"edit user", func() (json.RawMessage, error) {
			return a.EditUser(ctx, models.UserDetails{Email: "micol@example.com"})
		}, http.MethodPut, "/users/micol", true},
		{"delete user", func() (json.RawMessage, error) { return a.DeleteUser(ctx) }, http.MethodDelete, "/users/micol", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv.ResetRequests()

			// Director "Nolan" is unknown to the fake API; only the wire matters here.
			_, _ = tt.call()

			reqs := srv.Requests()
			require.Len(t, reqs, 1, "exactly one attempt")
			assert.Equal(t, tt.wantMethod, reqs[0].Method)
			assert.Equal(t, tt.wantPath, reqs[0].Path)
			assert.NotEmpty(t, reqs[0].RequestID)
			if tt.wantAuth {
				assert.Equal(t, "Bearer "+creds.token, reqs[0].Authorization)
			} else {
				assert.Empty(t, reqs[0].Authorization)
			}
		})
	}
}

func TestAddFavoriteMovie_Body(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser(t, "micol", "secret")
	a := newTestAdapter(t, srv.URL, &stubCredentials{token: srv.Token(t, "micol"), username: "micol"})

	got, err := a.AddFavoriteMovie(context.Background(), "42")
	require.NoError(t, err)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/users/micol/movies/42", last.Path)
	assert.JSONEq(t, `{"FavoriteMovie":"42"}`, string(last.Body))

	user, err := models.Decode[models.User](got)
	require.NoError(t, err)
	assert.True(t, user.HasFavorite("42"))
}

func TestEditUser_OmitsEmptyFields(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser(t, "micol", "secret")
	a := newTestAdapter(t, srv.URL, &stubCredentials{token: srv.Token(t, "micol"), username: "micol"})

	_, err := a.EditUser(context.Background(), models.UserDetails{Email: "micol@example.com"})
	require.NoError(t, err)

	last, _ := srv.LastRequest()
	assert.JSONEq(t, `{"Email":"micol@example.com"}`, string(last.Body))
}

func TestAuthorization_ReadFreshOnEveryCall(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser(t, "micol", "secret")
	srv.AddUser(t, "gio", "secret")
	creds := &stubCredentials{}
	a := newTestAdapter(t, srv.URL, creds)
	ctx := context.Background()

	first := srv.Token(t, "micol")
	creds.set(first, "micol")
	_, err := a.GetUser(ctx)
	require.NoError(t, err)

	second := srv.Token(t, "gio")
	creds.set(second, "gio")
	_, err = a.GetUser(ctx)
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer "+first, reqs[0].Authorization)
	assert.Equal(t, "/users/micol", reqs[0].Path)
	assert.Equal(t, "Bearer "+second, reqs[1].Authorization)
	assert.Equal(t, "/users/gio", reqs[1].Path)
	assert.NotEqual(t, reqs[0].Authorization, reqs[1].Authorization)
}

func TestAuthorization_MissingTokenStillSent(t *testing.T) {
	srv := apitest.NewServer(t)
	a := newTestAdapter(t, srv.URL, &stubCredentials{})

	_, err := a.GetAllMovies(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Len(t, srv.Requests(), 1)
}

func TestCredentialsError_IsLocal(t *testing.T) {
	srv := apitest.NewServer(t)
	storeErr := errors.New("store closed")
	a := newTestAdapter(t, srv.URL, &stubCredentials{err: storeErr})

	_, err := a.GetUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Empty(t, srv.Requests(), "nothing is sent when credentials cannot be read")
}

func TestRequestID_FromContext(t *testing.T) {
	srv := apitest.NewServer(t)
	a := newTestAdapter(t, srv.URL, &stubCredentials{})

	ctx := utils.WithRequestID(context.Background(), "req-42")
	_, _ = a.Login(ctx, models.Credentials{Username: "x", Password: "y"})

	last, _ := srv.LastRequest()
	assert.Equal(t, "req-42", last.RequestID)
}

// ── response unwrapping ─────────────────────────────────────────────────────

func TestResponse_IdentityPassThrough(t *testing.T) {
	bodies := []string{
		`{"Title":"Inception","unknown":{"nested":[1,2,3]}}`,
		`[{"Title":"Inception"},{"Title":"Us"}]`,
		`[]`,
		`{}`,
		`"text"`,
		`42`,
		`true`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			srv, _ := newStaticServer(t, http.StatusOK, body)
			a := newTestAdapter(t, srv.URL, &stubCredentials{})

			got, err := a.GetAllMovies(context.Background())
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestResponse_EmptyOrFalsyBecomesEmptyObject(t *testing.T) {
	bodies := []string{"", "null", "false", "0", `""`, "  \n", "0.0"}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			srv, _ := newStaticServer(t, http.StatusOK, body)
			a := newTestAdapter(t, srv.URL, &stubCredentials{})

			got, err := a.GetOneMovie(context.Background(), "Inception")
			require.NoError(t, err)
			assert.Equal(t, "{}", string(got))
		})
	}
}

func TestResponse_PlainTextIsQuoted(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser(t, "micol", "secret")
	a := newTestAdapter(t, srv.URL, &stubCredentials{token: srv.Token(t, "micol"), username: "micol"})

	got, err := a.DeleteUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `"micol was deleted."`, string(got))
}

func TestResponse_NoContent(t *testing.T) {
	srv, _ := newStaticServer(t, http.StatusNoContent, "")
	a := newTestAdapter(t, srv.URL, &stubCredentials{})

	got, err := a.DeleteUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

// ── failures ────────────────────────────────────────────────────────────────

func TestRemoteError_Mapping(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
		class    error
	}{
		{http.StatusBadRequest, ErrBadRequest, ErrClient},
		{http.StatusUnauthorized, ErrUnauthorized, ErrClient},
		{http.StatusForbidden, ErrForbidden, ErrClient},
		{http.StatusNotFound, ErrNotFound, ErrClient},
		{http.StatusConflict, ErrConflict, ErrClient},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity, ErrClient},
		{http.StatusInternalServerError, ErrInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrBadGateway, ErrServer},
		{http.StatusServiceUnavailable, ErrServiceUnavailable, ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv, hits := newStaticServer(t, tt.status, " payload \n")
			a := newTestAdapter(t, srv.URL, &stubCredentials{})

			_, err := a.GetAllMovies(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.class)
			assert.NotErrorIs(t, err, ErrTransport)

			var remote *RemoteError
			require.ErrorAs(t, err, &remote)
			assert.Equal(t, tt.status, remote.StatusCode)
			assert.Equal(t, "payload", remote.Body)
			assert.Equal(t, int32(1), hits.Load(), "no retry")
		})
	}
}

func TestRemoteError_UnknownStatus(t *testing.T) {
	srv, _ := newStaticServer(t, http.StatusTeapot, "")
	a := newTestAdapter(t, srv.URL, &stubCredentials{})

	_, err := a.GetAllMovies(context.Background())

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.ErrorIs(t, err, ErrClient)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestTransportError(t *testing.T) {
	srv, hits := newStaticServer(t, http.StatusOK, "{}")
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, &stubCredentials{})
	_, err := a.GetAllMovies(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, http.MethodGet, transport.Method)
	assert.Equal(t, "/movies", transport.Path)
	assert.Zero(t, hits.Load())
}

func TestTransportError_CancelledContext(t *testing.T) {
	srv, hits := newStaticServer(t, http.StatusOK, "{}")
	a := newTestAdapter(t, srv.URL, &stubCredentials{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.GetAllMovies(ctx)

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, hits.Load())
}

func TestFailure_SingleAttempt(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailWith(http.StatusInternalServerError, "boom")
	a := newTestAdapter(t, srv.URL, &stubCredentials{token: "t", username: "micol"})

	_, err := a.RemoveFavoriteMovie(context.Background(), "42")

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Len(t, srv.Requests(), 1)
}

func TestExtractResponseData(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "{}"},
		{"null", "{}"},
		{"false", "{}"},
		{"0", "{}"},
		{`""`, "{}"},
		{"-0", "{}"},
		{"1", "1"},
		{`"a"`, `"a"`},
		{`{"a":1}`, `{"a":1}`},
		{"not json", `"not json"`},
		{"{broken", `"{broken"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, string(extractResponseData([]byte(tt.in))))
		})
	}
}
