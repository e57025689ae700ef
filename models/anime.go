package models

// Anime is the read-only anime record shape returned by the Jikan v4
// API. It is never persisted beyond the short-lived response cache and
// is not owned by this application.
//
// JSON tags follow the upstream payload field names (snake_case,
// "mal_id" etc.), so the struct can be decoded straight from the API
// response envelope.
type Anime struct {
	MalID         int64       `json:"mal_id"`
	Title         string      `json:"title"`
	TitleEnglish  string      `json:"title_english,omitempty"`
	TitleJapanese string      `json:"title_japanese,omitempty"`
	Images        AnimeImages `json:"images"`
	Synopsis      string      `json:"synopsis,omitempty"`
	Score         float64     `json:"score,omitempty"`
	Episodes      int         `json:"episodes,omitempty"`
	Status        string      `json:"status,omitempty"`
	Type          string      `json:"type,omitempty"`
	Year          int         `json:"year,omitempty"`

	// Members is the MyAnimeList popularity counter (number of users
	// with the title on their list). Used by the least-popular listing.
	Members int64 `json:"members,omitempty"`

	URL     string       `json:"url,omitempty"`
	Genres  []AnimeLabel `json:"genres,omitempty"`
	Studios []AnimeLabel `json:"studios,omitempty"`
}

// AnimeImages groups the image URL variants provided by the API.
type AnimeImages struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// ImageSet holds the three image sizes the API exposes per format.
type ImageSet struct {
	ImageURL      string `json:"image_url,omitempty"`
	SmallImageURL string `json:"small_image_url,omitempty"`
	LargeImageURL string `json:"large_image_url,omitempty"`
}

// AnimeLabel is a named reference entity (genre, studio) attached to an
// anime record.
type AnimeLabel struct {
	MalID int64  `json:"mal_id"`
	Name  string `json:"name"`
}

// DisplayTitle prefers the English title when present.
func (a Anime) DisplayTitle() string {
	if a.TitleEnglish != "" {
		return a.TitleEnglish
	}
	return a.Title
}
