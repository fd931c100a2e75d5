// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// movie client's service layer, CLI and the fake API used in tests.
//
// All Msg* constants are human-readable message strings that are shown to the
// user or written into response bodies and log entries. Keeping them in one
// place ensures consistent wording.
package app

const (
	// MsgGenericFailure is the only failure text a caller of the catalog
	// ever sees, whatever the underlying cause.
	MsgGenericFailure = "Something bad happened; please try again later."

	// MsgTransportFailure is logged when no response reached the client.
	MsgTransportFailure = "transport error, no response from server"

	// MsgRemoteFailure is logged when the API answered with a non-2xx status.
	MsgRemoteFailure = "remote error"

	// MsgLocalFailure is logged for failures that happen before a request is
	// sent or after a response is received (credentials, encoding, decoding).
	MsgLocalFailure = "local error"

	// MsgNotLoggedIn is printed by the CLI when a command needs a stored
	// session and there is none.
	MsgNotLoggedIn = "not logged in"

	// MsgInvalidLoginPassword is returned by the fake API when the
	// username/password pair does not match.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgUsernameAlreadyExists is returned by the fake API on registration
	// with a taken username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgInvalidDataProvided is returned by the fake API when a body cannot
	// be decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgTokenIsExpiredOrInvalid is returned by the fake API when the bearer
	// token is missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Unauthorized"

	// MsgUserNotFound is returned by the fake API when deleting an unknown
	// username.
	MsgUserNotFound = "user not found"

	// MsgMovieNotFound is returned by the fake API for unknown directors or
	// genres.
	MsgMovieNotFound = "movie not found"

	// MsgInternalServerError is returned by the fake API when it is forced to
	// fail.
	MsgInternalServerError = "internal server error"
)
