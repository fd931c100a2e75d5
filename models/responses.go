package models

import (
	"encoding/json"
	"fmt"
)

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Decode unmarshals a pass-through response body into T.
//
// The access layer never validates response shapes; callers that want a typed
// view use Decode and handle the error themselves.
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %T: %w", v, err)
	}
	return v, nil
}
