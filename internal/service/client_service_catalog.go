package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-movie-client/internal/adapter"
	"github.com/MKhiriev/go-movie-client/internal/async"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/MKhiriev/go-movie-client/internal/service"

type clientCatalogService struct {
	api        adapter.MovieAPI
	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewClientCatalogService(api adapter.MovieAPI, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		api:        api,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (s *clientCatalogService) RegisterUser(ctx context.Context, details models.UserDetails) *async.Future[json.RawMessage] {
	return s.run(ctx, "RegisterUser", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.RegisterUser(ctx, details)
	})
}

func (s *clientCatalogService) Login(ctx context.Context, credentials models.Credentials) *async.Future[json.RawMessage] {
	return s.run(ctx, "Login", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.Login(ctx, credentials)
	})
}

func (s *clientCatalogService) GetAllMovies(ctx context.Context) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetAllMovies", s.api.GetAllMovies)
}

func (s *clientCatalogService) GetOneMovie(ctx context.Context, title string) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetOneMovie", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.GetOneMovie(ctx, title)
	})
}

func (s *clientCatalogService) GetDirector(ctx context.Context, director string) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetDirector", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.GetDirector(ctx, director)
	})
}

func (s *clientCatalogService) GetGenre(ctx context.Context, genre string) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetGenre", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.GetGenre(ctx, genre)
	})
}

func (s *clientCatalogService) GetUser(ctx context.Context) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetUser", s.api.GetUser)
}

func (s *clientCatalogService) AddFavoriteMovie(ctx context.Context, movieID string) *async.Future[json.RawMessage] {
	return s.run(ctx, "AddFavoriteMovie", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.AddFavoriteMovie(ctx, movieID)
	})
}

func (s *clientCatalogService) RemoveFavoriteMovie(ctx context.Context, movieID string) *async.Future[json.RawMessage] {
	return s.run(ctx, "RemoveFavoriteMovie", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.RemoveFavoriteMovie(ctx, movieID)
	})
}

func (s *clientCatalogService) EditUser(ctx context.Context, details models.UserDetails) *async.Future[json.RawMessage] {
	return s.run(ctx, "EditUser", func(ctx context.Context) (json.RawMessage, error) {
		return s.api.EditUser(ctx, details)
	})
}

func (s *clientCatalogService) GetFavoriteMovies(ctx context.Context) *async.Future[json.RawMessage] {
	return s.run(ctx, "GetFavoriteMovies", s.api.GetFavoriteMovies)
}

func (s *clientCatalogService) DeleteUser(ctx context.Context) *async.Future[json.RawMessage] {
	return s.run(ctx, "DeleteUser", s.api.DeleteUser)
}

// run tags ctx with a request ID, unless the caller already set one, and
// starts call on its own goroutine inside a span named after op.
func (s *clientCatalogService) run(
	ctx context.Context,
	op string,
	call func(ctx context.Context) (json.RawMessage, error),
) *async.Future[json.RawMessage] {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = s.requestIDs.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	opLogger := s.logger.With().
		Str("op", op).
		Str("request_id", requestID).
		Logger()
	ctx = opLogger.WithContext(ctx)

	return async.Go(ctx, func(ctx context.Context) (json.RawMessage, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "catalog."+op)
		span.SetAttributes(attribute.String("request.id", requestID))
		defer span.End()

		data, err := call(ctx)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, handleError(ctx, s.logger, op, err)
		}
		return data, nil
	})
}
