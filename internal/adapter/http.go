package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-movie-client/internal/config"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production movie API.
const DefaultBaseURL = "https://micolsmovieapp.herokuapp.com"

// RequestIDHeader carries the identifier of every outbound request.
const RequestIDHeader = "X-Request-ID"

var emptyObject = json.RawMessage(`{}`)

type httpMovieAPI struct {
	client      *utils.HTTPClient
	credentials CredentialsProvider
	requestIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPMovieAPI constructs an HTTP/REST implementation of [MovieAPI].
// An empty adapterCfg.BaseURL selects [DefaultBaseURL]. Credentials are read
// from credentials on each authenticated call.
//
// Returns an error if the base URL cannot be parsed as a valid URL.
func NewHTTPMovieAPI(adapterCfg config.ClientAdapter, credentials CredentialsProvider, logger *logger.Logger) (MovieAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetLogger(restyLogger{logger}).
		SetHeader("Accept", "application/json")

	return &httpMovieAPI{
		client:      client,
		credentials: credentials,
		requestIDs:  utils.NewUUIDGenerator(),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RegisterUser implements [MovieAPI].
func (h *httpMovieAPI) RegisterUser(ctx context.Context, details models.UserDetails) (json.RawMessage, error) {
	req, err := h.request(ctx).withBody(details)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodPost, "/users")
}

// Login implements [MovieAPI].
func (h *httpMovieAPI) Login(ctx context.Context, credentials models.Credentials) (json.RawMessage, error) {
	req, err := h.request(ctx).withBody(credentials)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodPost, "/login")
}

// GetAllMovies implements [MovieAPI].
func (h *httpMovieAPI) GetAllMovies(ctx context.Context) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodGet, "/movies")
}

// GetOneMovie implements [MovieAPI].
func (h *httpMovieAPI) GetOneMovie(ctx context.Context, title string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetRawPathParam("title", title)
	return h.do(req, http.MethodGet, "/movies/{title}")
}

// GetDirector implements [MovieAPI].
func (h *httpMovieAPI) GetDirector(ctx context.Context, director string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetRawPathParam("director", director)
	return h.do(req, http.MethodGet, "/movies/director/{director}")
}

// GetGenre implements [MovieAPI]. The "Genre" segment is capitalised by
// the API contract.
func (h *httpMovieAPI) GetGenre(ctx context.Context, genre string) (json.RawMessage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetRawPathParam("genre", genre)
	return h.do(req, http.MethodGet, "/movies/Genre/{genre}")
}

// GetUser implements [MovieAPI].
func (h *httpMovieAPI) GetUser(ctx context.Context) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodGet, "/users/{user}")
}

// AddFavoriteMovie implements [MovieAPI].
func (h *httpMovieAPI) AddFavoriteMovie(ctx context.Context, movieID string) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = req.withBody(models.FavoriteMovieRequest{FavoriteMovie: movieID}); err != nil {
		return nil, err
	}
	req.SetRawPathParam("movieID", movieID)
	return h.do(req, http.MethodPut, "/users/{user}/movies/{movieID}")
}

// RemoveFavoriteMovie implements [MovieAPI].
func (h *httpMovieAPI) RemoveFavoriteMovie(ctx context.Context, movieID string) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	req.SetRawPathParam("movieID", movieID)
	return h.do(req, http.MethodDelete, "/users/{user}/movies/{movieID}")
}

// EditUser implements [MovieAPI].
func (h *httpMovieAPI) EditUser(ctx context.Context, details models.UserDetails) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = req.withBody(details); err != nil {
		return nil, err
	}
	return h.do(req, http.MethodPut, "/users/{user}")
}

// GetFavoriteMovies implements [MovieAPI]. The API has no favourites-only
// endpoint, so this fetches the whole user record.
func (h *httpMovieAPI) GetFavoriteMovies(ctx context.Context) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodGet, "/users/{user}")
}

// DeleteUser implements [MovieAPI].
func (h *httpMovieAPI) DeleteUser(ctx context.Context) (json.RawMessage, error) {
	req, err := h.userRequest(ctx)
	if err != nil {
		return nil, err
	}
	return h.do(req, http.MethodDelete, "/users/{user}")
}

// request wraps a resty request so body encoding can be done up front and
// reported as a local failure instead of a transport one.
type request struct {
	*resty.Request
}

func (r request) withBody(v any) (request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return r, fmt.Errorf("encode request body: %w", err)
	}
	r.SetHeader("Content-Type", "application/json").SetBody(body)
	return r, nil
}

func (h *httpMovieAPI) request(ctx context.Context) request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestIDs.Generate()
	}

	return request{h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)}
}

// authedRequest reads the token right now; an empty token is still sent.
func (h *httpMovieAPI) authedRequest(ctx context.Context) (request, error) {
	token, err := h.credentials.Token(ctx)
	if err != nil {
		return request{}, fmt.Errorf("read session token: %w", err)
	}

	req := h.request(ctx)
	req.SetHeader("Authorization", "Bearer "+token)
	return req, nil
}

// userRequest is an authedRequest with the {user} path parameter bound to the
// active username.
func (h *httpMovieAPI) userRequest(ctx context.Context) (request, error) {
	username, err := h.credentials.Username(ctx)
	if err != nil {
		return request{}, fmt.Errorf("read session username: %w", err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return request{}, err
	}
	req.SetRawPathParam("user", username)
	return req, nil
}

func (h *httpMovieAPI) do(req request, method, path string) (json.RawMessage, error) {
	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Msg("sending request")

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return extractResponseData(resp.Body()), nil
}

// extractResponseData returns body unchanged unless it is empty or a
// JSON-falsy scalar (null, false, 0, ""), in which case it returns {}.
// A body that is not JSON at all is returned as a JSON string.
func extractResponseData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return emptyObject
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		if json.Valid(trimmed) {
			return json.RawMessage(body)
		}
		return quoteText(body)
	}

	var scalar any
	if err := json.Unmarshal(trimmed, &scalar); err != nil {
		return quoteText(body)
	}
	if isFalsy(scalar) {
		return emptyObject
	}
	return json.RawMessage(body)
}

func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	default:
		return false
	}
}

func quoteText(body []byte) json.RawMessage {
	quoted, _ := json.Marshal(string(body))
	return quoted
}

// restyLogger routes resty's own diagnostics into the client log file.
type restyLogger struct {
	logger *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
