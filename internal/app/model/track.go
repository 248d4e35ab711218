package model

import "time"

// Artist is a catalog artist
type Artist struct {
	ID          string
	Name        string
	Href        string
	URI         string
	ExternalURL string
}

// Image is an album cover rendition
type Image struct {
	URL    string
	Height *int
	Width  *int
}

// Album is a catalog album
type Album struct {
	ID                   string
	Name                 string
	AlbumType            string
	TotalTracks          int
	ReleaseDate          string
	ReleaseDatePrecision string
	Href                 string
	URI                  string
	ExternalURL          string
	Artists              []Artist
	Images               []Image
}

// ExternalIDs holds industry identifiers of a track
type ExternalIDs struct {
	ISRC string
	EAN  string
	UPC  string
}

// IsEmpty reports whether no identifier is set
func (e ExternalIDs) IsEmpty() bool {
	return e.ISRC == "" && e.EAN == "" && e.UPC == ""
}

// Track is a catalog track. DurationMs and Popularity are nil when the
// catalog did not report them.
type Track struct {
	ID          string
	Name        string
	DiscNumber  *int
	DurationMs  *int
	Explicit    bool
	Href        string
	URI         string
	ExternalURL string
	Popularity  *int
	PreviewURL  string
	TrackNumber *int
	IsPlayable  bool
	IsLocal     bool
	AlbumID     string
	Album       *Album
	Artists     []Artist
	Markets     []string
	ExternalIDs *ExternalIDs
	CreatedAt   time.Time
}

// ArtistNames returns the artist names in credit order
func (t Track) ArtistNames() []string {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	return names
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
