package models

// Credentials is the payload of POST /login.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// UserDetails is the payload of POST /users (registration) and
// PUT /users/{username} (edit). Empty fields are omitted so an edit only
// carries what the caller wants to change.
type UserDetails struct {
	Username string `json:"Username,omitempty"`
	Password string `json:"Password,omitempty"`
	Email    string `json:"Email,omitempty"`
	Birthday string `json:"Birthday,omitempty"`
}

// IsEmpty reports whether no field is set.
func (d UserDetails) IsEmpty() bool {
	return d == UserDetails{}
}

// FavoriteMovieRequest is the body sent when adding a favourite movie.
type FavoriteMovieRequest struct {
	FavoriteMovie string `json:"FavoriteMovie"`
}
