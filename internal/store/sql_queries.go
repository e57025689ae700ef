package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, full_name, password_hash, provider, photo_url, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?)
    RETURNING id, email, full_name, password_hash, provider, photo_url, created_at;`

	findUserByEmail = `SELECT id, email, full_name, password_hash, provider, photo_url, created_at
    FROM users
    WHERE email = ?;`

	findUserByID = `SELECT id, email, full_name, password_hash, provider, photo_url, created_at
    FROM users
    WHERE id = ?;`

	updateUser = `UPDATE users SET
		full_name = ?,
		photo_url = ?
	WHERE id = ?;`

	updateUserPassword = `UPDATE users SET
		password_hash = ?
	WHERE id = ?;`

	deleteUser = `DELETE FROM users WHERE id = ?;`

	insertReview = `INSERT INTO reviews (
			id,
			anime_id,
			anime_title,
			user_id,
			user_email,
			user_name,
			rating,
			comment,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateReview = `UPDATE reviews SET
			anime_title = ?,
			rating      = ?,
			comment     = ?,
			updated_at  = ?
		WHERE id = ?;`

	findReviewByID = `SELECT id, anime_id, anime_title, user_id, user_email, user_name, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = ?;`

	deleteReview = `DELETE FROM reviews
		WHERE id = ?;`

	deleteReviewsByUser = `DELETE FROM reviews
		WHERE user_id = ?;`

	upsertKV = `INSERT INTO kv (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	findKVValue = `SELECT value FROM kv WHERE key = ?;`

	deleteKV = `DELETE FROM kv WHERE key = ?;`

	listKVKeys = `SELECT key FROM kv WHERE key LIKE ? ORDER BY key;`

	deleteKVByPrefix = `DELETE FROM kv WHERE key LIKE ?;`
)

// reviewColumns is the canonical column order scanned into models.Review.
var reviewColumns = []string{
	"id",
	"anime_id",
	"anime_title",
	"user_id",
	"user_email",
	"user_name",
	"rating",
	"comment",
	"created_at",
	"updated_at",
}

// ReviewFilter narrows review list queries. Nil fields are not applied.
type ReviewFilter struct {
	AnimeID *int64
	UserID  *string
}

// buildSelectReviewsQuery dynamically builds the filtered review SELECT.
// With an empty filter, the full collection is returned ordered by creation
// time (newest first).
func buildSelectReviewsQuery(filter ReviewFilter) (string, []any, error) {
	builder := squirrel.
		Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC")

	if filter.AnimeID != nil {
		builder = builder.Where(squirrel.Eq{"anime_id": *filter.AnimeID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
