// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client's persisted session: the bearer token and
// the active username, stored under the keys "token" and "user".
//
// Two implementations are provided: a SQLite-backed one that survives
// restarts ([NewSessionRepository]) and an in-memory one for ephemeral runs
// and tests ([NewMemorySessionStore]). Both satisfy
// adapter.CredentialsProvider, so the transport layer reads the credentials
// straight from the store before every call.
package store

import (
	"context"

	"github.com/MKhiriev/go-movie-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Keys of the session key-value table.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// SessionStore is the process-wide key-value store for session credentials.
// Missing keys read as empty strings. It provides no locking across calls:
// a Clear racing an in-flight request may let that request use the old token.
type SessionStore interface {
	// Token returns the stored bearer token.
	Token(ctx context.Context) (string, error)
	// Username returns the active username.
	Username(ctx context.Context) (string, error)
	// Get returns both values at once. ExpiresAt is left zero.
	Get(ctx context.Context) (models.Session, error)
	// Save writes the token and username together, as login does.
	Save(ctx context.Context, token, username string) error
	// SetUsername writes the username alone, as registration does.
	SetUsername(ctx context.Context, username string) error
	// Clear removes both values, as logout and account deletion do.
	Clear(ctx context.Context) error
}
