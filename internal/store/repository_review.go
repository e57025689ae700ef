package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/models"
)

// reviewRepository is the SQLite-backed implementation of [ReviewRepository].
// It executes all review CRUD operations against the "reviews" table using
// the embedded [*DB] connection; list queries are built dynamically via
// [buildSelectReviewsQuery].
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
	now    func() time.Time
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection, identifier generator, and logger.
func NewReviewRepository(db *DB, ids IDGenerator, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// SaveReview upserts a review record.
//
// When review.ID is set and matches a stored row, that row is updated in
// place and its updated_at column is stamped. When review.ID is empty, or
// set but matching no stored row, a new record is inserted with a freshly
// assigned identifier and created_at stamp. The insert-on-unknown-id branch
// is deliberate: a save that races with a delete lands as a fresh record
// instead of failing.
func (p *reviewRepository) SaveReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	if review.ID != "" {
		updated, err := p.updateExisting(ctx, review)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, ErrReviewNotFound) {
			return models.Review{}, err
		}
		// fall through: unknown id becomes an insert
	}

	review.ID = p.ids.Generate()
	review.CreatedAt = p.now()
	review.UpdatedAt = review.CreatedAt

	_, err := p.db.ExecContext(ctx, insertReview,
		review.ID,
		review.AnimeID,
		review.AnimeTitle,
		review.UserID,
		review.UserEmail,
		review.UserName,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.SaveReview").
			Str("review_id", review.ID).
			Int64("anime_id", review.AnimeID).
			Msg("failed to execute insert for review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return review, nil
}

func (p *reviewRepository) updateExisting(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	stored, err := p.findByID(ctx, review.ID)
	if err != nil {
		return models.Review{}, err
	}

	stored.AnimeTitle = review.AnimeTitle
	stored.Rating = review.Rating
	stored.Comment = review.Comment
	stored.UpdatedAt = p.now()

	_, err = p.db.ExecContext(ctx, updateReview,
		stored.AnimeTitle,
		stored.Rating,
		stored.Comment,
		stored.UpdatedAt,
		stored.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.updateExisting").
			Str("review_id", stored.ID).
			Msg("failed to execute update for review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return stored, nil
}

func (p *reviewRepository) findByID(ctx context.Context, reviewID string) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	row := p.db.QueryRowContext(ctx, findReviewByID, reviewID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.findByID").
			Str("review_id", reviewID).
			Msg("failed to query review by id")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanReview(row.Scan, &review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).
			Str("func", "*reviewRepository.findByID").
			Str("review_id", reviewID).
			Msg("failed to scan review row")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}

// GetAllReviews retrieves the whole review collection ordered by creation
// time, newest first. Returns an empty slice when no records exist.
func (p *reviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return p.listReviews(ctx, ReviewFilter{}, "*reviewRepository.GetAllReviews")
}

// GetReviewsByAnime retrieves every review for the given anime title.
func (p *reviewRepository) GetReviewsByAnime(ctx context.Context, animeID int64) ([]models.Review, error) {
	return p.listReviews(ctx, ReviewFilter{AnimeID: &animeID}, "*reviewRepository.GetReviewsByAnime")
}

// GetReviewsByUser retrieves every review authored by the given user.
func (p *reviewRepository) GetReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return p.listReviews(ctx, ReviewFilter{UserID: &userID}, "*reviewRepository.GetReviewsByUser")
}

func (p *reviewRepository) listReviews(ctx context.Context, filter ReviewFilter, funcName string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReviewsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Review, 0, 16)

	for rows.Next() {
		var review models.Review
		if scanErr := scanReview(rows.Scan, &review); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, review)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteReview removes the review with the given identifier.
// Deleting an absent review is a no-op.
func (p *reviewRepository) DeleteReview(ctx context.Context, reviewID string) error {
	log := logger.FromContext(ctx)

	if _, err := p.db.ExecContext(ctx, deleteReview, reviewID); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.DeleteReview").
			Str("review_id", reviewID).
			Msg("failed to execute review delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteReviewsByUser removes every review authored by the given user.
// Used by the account-deletion cascade.
func (p *reviewRepository) DeleteReviewsByUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := p.db.ExecContext(ctx, deleteReviewsByUser, userID); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.DeleteReviewsByUser").
			Str("user_id", userID).
			Msg("failed to execute reviews delete for user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// scanReview scans one review row in [reviewColumns] order.
func scanReview(scan func(dest ...any) error, review *models.Review) error {
	return scan(
		&review.ID,
		&review.AnimeID,
		&review.AnimeTitle,
		&review.UserID,
		&review.UserEmail,
		&review.UserName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
}
