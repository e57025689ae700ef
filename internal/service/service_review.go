package service

import (
	"context"
	"fmt"
	"math"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/session"
	"github.com/dkrylov/animereview/internal/store"
	"github.com/dkrylov/animereview/internal/validators"
	"github.com/dkrylov/animereview/models"
)

type reviewService struct {
	reviews   store.ReviewRepository
	session   *session.Session
	validator validators.Validator
	logger    *logger.Logger
}

func NewReviewService(reviews store.ReviewRepository, sess *session.Session, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviews:   reviews,
		session:   sess,
		validator: validators.NewDomainValidator(),
		logger:    logger,
	}
}

func (s *reviewService) Save(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	user := s.session.Current()
	if user == nil {
		return models.Review{}, ErrNoSession
	}
	if err := s.validator.Validate(ctx, review); err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// reviews are always attributed to the session owner
	review.UserID = user.ID
	review.UserEmail = user.Email
	review.UserName = user.FullName

	existing, found, err := s.UserReviewForAnime(ctx, user.ID, review.AnimeID)
	if err != nil {
		return models.Review{}, err
	}
	if found && review.ID != existing.ID {
		if review.ID != "" {
			return models.Review{}, ErrAlreadyReviewed
		}
		// a fresh save for an already-reviewed anime edits the stored review
		review.ID = existing.ID
	}

	saved, err := s.reviews.SaveReview(ctx, review)
	if err != nil {
		log.Err(err).Str("func", "*reviewService.Save").Int64("anime_id", review.AnimeID).Msg("failed to save review")
		return models.Review{}, fmt.Errorf("saving review: %w", err)
	}

	return saved, nil
}

func (s *reviewService) All(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviews.GetAllReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ByAnime(ctx context.Context, animeID int64) ([]models.Review, error) {
	reviews, err := s.reviews.GetReviewsByAnime(ctx, animeID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for anime: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ByUser(ctx context.Context, userID string) ([]models.Review, error) {
	reviews, err := s.reviews.GetReviewsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for user: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID string) error {
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	return nil
}

func (s *reviewService) HasUserReviewed(ctx context.Context, userID string, animeID int64) (bool, error) {
	_, found, err := s.UserReviewForAnime(ctx, userID, animeID)
	return found, err
}

func (s *reviewService) UserReviewForAnime(ctx context.Context, userID string, animeID int64) (models.Review, bool, error) {
	reviews, err := s.reviews.GetReviewsByUser(ctx, userID)
	if err != nil {
		return models.Review{}, false, fmt.Errorf("listing reviews for user: %w", err)
	}

	for _, review := range reviews {
		if review.AnimeID == animeID {
			return review, true, nil
		}
	}

	return models.Review{}, false, nil
}

// AverageRating computes the mean rating rounded to one decimal place.
// An empty slice yields 0.
func (s *reviewService) AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}

	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
