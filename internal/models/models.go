package models

// Audiobook represents one audiobook directory indexed into the catalog.
//
// Hash is derived from title and author; re-scanning the same book yields the
// same hash and replaces the stored row.
type Audiobook struct {
	Hash   string `json:"hash"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Path   string `json:"-"`
}

// AudiobookSummary is a catalog listing entry. The storage path is
// retrieval-only and deliberately absent.
type AudiobookSummary struct {
	Hash   string `json:"hash"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Catalog is the wire shape of the full catalog listing.
type Catalog struct {
	Audiobooks []AudiobookSummary `json:"audiobooks"`
}

// Position is a user's last known playback position inside one audiobook:
// which file they were listening to and the offset within it.
//
// At most one position exists per (audiobook, user) pair; the most recent
// write always wins.
type Position struct {
	File     string `json:"file"`
	Position uint32 `json:"position"`
}

// Account represents a registered user. Key is generated once at registration
// and immutable thereafter.
type Account struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Key      string `json:"key"`
}

// Credentials is the request body for registration and login.
type Credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// APIKey is the response body returned by registration and login.
type APIKey struct {
	Key string `json:"key"`
}
