package models

import "time"

// Review is a user's rating and comment for a single anime title.
//
// Author fields (UserEmail, UserName) are denormalized copies taken at
// save time; they are not re-joined against the users table when the
// profile changes later.
type Review struct {
	// ID is the unique identifier of the review (UUID). Empty on a new
	// review that has not been saved yet.
	ID string `json:"id"`

	// AnimeID is the MyAnimeList identifier of the reviewed title.
	AnimeID int64 `json:"anime_id"`

	// AnimeTitle is a denormalized copy of the title at save time.
	AnimeTitle string `json:"anime_title"`

	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`

	// Rating is an integer score in the range 1..10.
	Rating int `json:"rating"`

	// Comment is the free-text body of the review.
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
