package models

// Genre describes the genre a movie belongs to.
type Genre struct {
	Name        string `json:"Name"`
	Description string `json:"Description,omitempty"`
}

// Director describes the director of a movie.
type Director struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio,omitempty"`
	Birth string `json:"Birth,omitempty"`
	Death string `json:"Death,omitempty"`
}

// Movie is a catalog entry as returned by the remote API. It is read-only
// from the client's point of view.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description,omitempty"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	ImagePath   string   `json:"ImagePath,omitempty"`
	Featured    bool     `json:"Featured,omitempty"`
}
