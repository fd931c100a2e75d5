package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-movie-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, srv *Server, method, path, token, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestServer_RegisterAndLogin(t *testing.T) {
	srv := NewServer(t)

	status, body := do(t, srv, http.MethodPost, "/users", "", `{"Username":"micol","Password":"secret","Email":"m@example.com"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, body, `"Username":"micol"`)

	status, _ = do(t, srv, http.MethodPost, "/users", "", `{"Username":"micol","Password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, status, "duplicate username")

	status, body = do(t, srv, http.MethodPost, "/login", "", `{"Username":"micol","Password":"secret"}`)
	require.Equal(t, http.StatusOK, status)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "micol", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	status, _ = do(t, srv, http.MethodGet, "/movies", resp.Token, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_RegisterMissingFields(t *testing.T) {
	srv := NewServer(t)

	status, _ := do(t, srv, http.MethodPost, "/users", "", `{"Username":"micol"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestServer_LoginWrongPassword(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser(t, "micol", "secret")

	status, _ := do(t, srv, http.MethodPost, "/login", "", `{"Username":"micol","Password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_AuthRequired(t *testing.T) {
	srv := NewServer(t)

	status, _ := do(t, srv, http.MethodGet, "/movies", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, srv, http.MethodGet, "/movies", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestServer_Movies(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser(t, "micol", "secret")
	token := srv.Token(t, "micol")

	status, body := do(t, srv, http.MethodGet, "/movies/Inception", token, "")
	require.Equal(t, http.StatusOK, status)
	movie, err := models.Decode[models.Movie](json.RawMessage(body))
	require.NoError(t, err)
	assert.Equal(t, srv.Movie("Inception").ID, movie.ID)

	status, body = do(t, srv, http.MethodGet, "/movies/Unknown", token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", body)

	status, body = do(t, srv, http.MethodGet, "/movies/Genre/Horror", token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"Name":"Horror"`)

	status, body = do(t, srv, http.MethodGet, "/movies/director/Jordan%20Peele", token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"Name":"Jordan Peele"`)

	status, _ = do(t, srv, http.MethodGet, "/movies/Genre/Western", token, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_Favorites(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser(t, "micol", "secret")
	token := srv.Token(t, "micol")
	id := srv.Movie("Get Out").ID

	status, _ := do(t, srv, http.MethodPut, "/users/micol/movies/"+id, token, `{"FavoriteMovie":"`+id+`"}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, srv, http.MethodPost, "/users/micol/movies/"+id, token, "")
	require.Equal(t, http.StatusOK, status)

	user, ok := srv.User("micol")
	require.True(t, ok)
	assert.Equal(t, []string{id}, user.FavoriteMovies, "adding twice keeps one entry")

	status, _ = do(t, srv, http.MethodDelete, "/users/micol/movies/"+id, token, "")
	require.Equal(t, http.StatusOK, status)

	user, _ = srv.User("micol")
	assert.Empty(t, user.FavoriteMovies)
}

func TestServer_EditUserRenames(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser(t, "micol", "secret")
	token := srv.Token(t, "micol")

	status, body := do(t, srv, http.MethodPut, "/users/micol", token, `{"Username":"micol2","Email":"new@example.com"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"Username":"micol2"`)

	_, ok := srv.User("micol")
	assert.False(t, ok)
	user, ok := srv.User("micol2")
	require.True(t, ok)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestServer_DeleteUser(t *testing.T) {
	srv := NewServer(t)
	srv.AddUser(t, "micol", "secret")
	token := srv.Token(t, "micol")

	status, body := do(t, srv, http.MethodDelete, "/users/micol", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "micol was deleted.", body)

	status, _ = do(t, srv, http.MethodDelete, "/users/micol", token, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, srv, http.MethodGet, "/users/micol", token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", body)
}

func TestServer_RecordsRequests(t *testing.T) {
	srv := NewServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/movies", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("X-Request-ID", "req-1")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"), "request ID is echoed")

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/movies", last.Path)
	assert.Equal(t, "Bearer abc", last.Authorization)
	assert.Equal(t, "req-1", last.RequestID)
	assert.Len(t, srv.Requests(), 1)

	srv.ResetRequests()
	_, ok = srv.LastRequest()
	assert.False(t, ok)
}

func TestServer_FailWith(t *testing.T) {
	srv := NewServer(t)
	srv.FailWith(http.StatusBadGateway, "")

	status, body := do(t, srv, http.MethodPost, "/login", "", `{}`)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), body)
	assert.Len(t, srv.Requests(), 1, "failed requests are recorded too")

	srv.Recover()
	status, _ = do(t, srv, http.MethodPost, "/login", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
