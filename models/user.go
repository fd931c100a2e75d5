package models

// User is the account record owned by the remote movie API.
// The client never mutates it locally; it is only decoded for display and
// for extracting the favourites list.
type User struct {
	// ID is the remote identifier of the account.
	ID string `json:"_id,omitempty"`

	// Username is the unique login name. It is also the path segment used by
	// every per-user endpoint.
	Username string `json:"Username"`

	// Password is only populated in requests; the API returns a hash or omits it.
	Password string `json:"Password,omitempty"`

	// Email is the contact address of the account.
	Email string `json:"Email,omitempty"`

	// Birthday is kept as the raw string the API sends (ISO date).
	Birthday string `json:"Birthday,omitempty"`

	// FavoriteMovies holds the identifiers of the user's favourite movies.
	FavoriteMovies []string `json:"FavoriteMovies"`
}

// HasFavorite reports whether movieID is in the user's favourites.
func (u User) HasFavorite(movieID string) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}
	return false
}
