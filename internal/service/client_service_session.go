// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/store"
	"github.com/MKhiriev/go-movie-client/internal/utils"
	"github.com/MKhiriev/go-movie-client/models"
)

type clientSessionService struct {
	catalog  ClientCatalogService
	sessions store.SessionStore

	logger *logger.Logger
}

func NewClientSessionService(catalog ClientCatalogService, sessions store.SessionStore, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *clientSessionService) Register(ctx context.Context, details models.UserDetails) (models.User, error) {
	const op = "Register"

	raw, err := s.catalog.RegisterUser(ctx, details).Await(ctx)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}

	if err = s.sessions.SetUsername(ctx, details.Username); err != nil {
		return models.User{}, handleError(ctx, s.logger, op, fmt.Errorf("store username: %w", err))
	}

	user, err := models.Decode[models.User](raw)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}

	s.logger.Info().Str("username", details.Username).Msg("account registered")
	return user, nil
}

func (s *clientSessionService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	const op = "Login"

	raw, err := s.catalog.Login(ctx, credentials).Await(ctx)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}

	resp, err := models.Decode[models.LoginResponse](raw)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}
	if resp.Token == "" {
		return models.User{}, handleError(ctx, s.logger, op, ErrNoTokenIssued)
	}

	username := resp.User.Username
	if username == "" {
		username = credentials.Username
	}

	if err = s.sessions.Save(ctx, resp.Token, username); err != nil {
		return models.User{}, handleError(ctx, s.logger, op, fmt.Errorf("store session: %w", err))
	}

	s.logger.Info().Str("username", username).Msg("logged in")
	return resp.User, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return handleError(ctx, s.logger, "Logout", fmt.Errorf("clear session: %w", err))
	}

	s.logger.Info().Msg("logged out")
	return nil
}

func (s *clientSessionService) EditProfile(ctx context.Context, details models.UserDetails) (models.User, error) {
	const op = "EditProfile"

	if details.IsEmpty() {
		return models.User{}, handleError(ctx, s.logger, op, ErrEmptyUserPatch)
	}

	raw, err := s.catalog.EditUser(ctx, details).Await(ctx)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}

	if details.Username != "" {
		if err = s.sessions.SetUsername(ctx, details.Username); err != nil {
			return models.User{}, handleError(ctx, s.logger, op, fmt.Errorf("store username: %w", err))
		}
	}

	user, err := models.Decode[models.User](raw)
	if err != nil {
		return models.User{}, handleError(ctx, s.logger, op, err)
	}
	return user, nil
}

func (s *clientSessionService) DeleteAccount(ctx context.Context) error {
	const op = "DeleteAccount"

	if _, err := s.catalog.DeleteUser(ctx).Await(ctx); err != nil {
		return handleError(ctx, s.logger, op, err)
	}

	if err := s.sessions.Clear(ctx); err != nil {
		return handleError(ctx, s.logger, op, fmt.Errorf("clear session: %w", err))
	}

	s.logger.Info().Msg("account deleted")
	return nil
}

func (s *clientSessionService) Current(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return models.Session{}, handleError(ctx, s.logger, "Current", fmt.Errorf("read session: %w", err))
	}

	if session.LoggedIn() {
		// opaque tokens have no readable expiry
		if expiresAt, err := utils.ParseTokenExpiry(session.Token); err == nil {
			session.ExpiresAt = expiresAt
		}
	}
	return session, nil
}
