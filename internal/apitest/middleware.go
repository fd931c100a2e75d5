package apitest

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-movie-client/internal/app"
	"github.com/MKhiriev/go-movie-client/internal/utils"
)

// record stores a copy of every request before any other handling, so
// rejected and failed requests are visible to tests too.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get(requestIDHeader),
			Body:          body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) fail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f := s.failure
		s.mu.Unlock()

		if f != nil {
			utils.WriteError(w, f.body, f.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth enforces a valid bearer token and stores its username in the request
// context under [utils.UsernameCtxKey].
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer)
		if err != nil {
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, claims.GetUsername())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
