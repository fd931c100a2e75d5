// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-client/internal/adapter"
	"github.com/MKhiriev/go-movie-client/internal/app"
	"github.com/MKhiriev/go-movie-client/internal/logger"
	"github.com/MKhiriev/go-movie-client/internal/utils"
)

// newOperationError classifies err into an [OperationError].
func newOperationError(op string, err error) *OperationError {
	opErr := &OperationError{Op: op, Kind: KindLocal, Err: err}

	var remoteErr *adapter.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		opErr.StatusCode = remoteErr.StatusCode
		opErr.Kind = KindClient
		if remoteErr.StatusCode >= http.StatusInternalServerError {
			opErr.Kind = KindServer
		}
	case errors.Is(err, adapter.ErrTransport):
		opErr.Kind = KindTransport
	}

	return opErr
}

// handleError logs err and turns it into the generic failure every caller
// sees. An err that already is an [OperationError] was logged where it was
// created and is returned unchanged.
func handleError(ctx context.Context, log *logger.Logger, op string, err error) error {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr
	}
	opErr = newOperationError(op, err)

	event := log.Error().
		Str("op", op).
		Str("kind", opErr.Kind.String())
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		event = event.Str("request_id", requestID)
	}

	var remoteErr *adapter.RemoteError
	switch {
	case opErr.Kind == KindTransport:
		event.Err(err).Msg(app.MsgTransportFailure)
	case errors.As(err, &remoteErr):
		event.Int("status_code", remoteErr.StatusCode).
			Str("body", remoteErr.Body).
			Msg(app.MsgRemoteFailure)
	default:
		event.Err(err).Msg(app.MsgLocalFailure)
	}

	return opErr
}
