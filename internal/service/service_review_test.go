package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/mock"
	"github.com/dkrylov/animereview/internal/session"
	"github.com/dkrylov/animereview/internal/validators"
	"github.com/dkrylov/animereview/models"
)

func newTestReviewSvc(t *testing.T, ctrl *gomock.Controller) (*reviewService, *mock.MockReviewRepository, *session.Session) {
	t.Helper()

	reviews := mock.NewMockReviewRepository(ctrl)
	sess := session.NewSession()

	svc := &reviewService{
		reviews:   reviews,
		session:   sess,
		validator: validators.NewDomainValidator(),
		logger:    logger.Nop(),
	}

	return svc, reviews, sess
}

func TestReviewService_Save_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestReviewSvc(t, ctrl)

	_, err := svc.Save(context.Background(), models.Review{AnimeID: 21, Rating: 8})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestReviewService_Save_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sess := newTestReviewSvc(t, ctrl)
	sess.Set(&models.User{ID: "u-1"})

	tests := []models.Review{
		{AnimeID: 0, Rating: 8},
		{AnimeID: 21, Rating: 0},
		{AnimeID: 21, Rating: 11},
	}
	for _, review := range tests {
		_, err := svc.Save(context.Background(), review)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestReviewService_Save_AttributesReviewToSessionOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, sess := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	sess.Set(&models.User{ID: "u-1", Email: "ana@example.com", FullName: "Ana Torres"})

	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return([]models.Review{}, nil)
	reviews.EXPECT().
		SaveReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, review models.Review) (models.Review, error) {
			assert.Equal(t, "u-1", review.UserID)
			assert.Equal(t, "ana@example.com", review.UserEmail)
			assert.Equal(t, "Ana Torres", review.UserName)
			review.ID = "r-1"
			return review, nil
		})

	saved, err := svc.Save(ctx, models.Review{
		AnimeID: 21, AnimeTitle: "One Piece", Rating: 9, Comment: "great",
		UserID: "someone-else", // must be overwritten
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", saved.ID)
}

func TestReviewService_Save_SecondReviewForSameAnimeEditsTheFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, sess := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	sess.Set(&models.User{ID: "u-1"})

	existing := models.Review{ID: "r-1", AnimeID: 21, UserID: "u-1", Rating: 7}

	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return([]models.Review{existing}, nil)
	reviews.EXPECT().
		SaveReview(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, review models.Review) (models.Review, error) {
			assert.Equal(t, "r-1", review.ID, "a fresh save must target the stored review")
			return review, nil
		})

	_, err := svc.Save(ctx, models.Review{AnimeID: 21, Rating: 9})
	require.NoError(t, err)
}

func TestReviewService_Save_ForeignIDForReviewedAnimeIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, sess := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	sess.Set(&models.User{ID: "u-1"})

	existing := models.Review{ID: "r-1", AnimeID: 21, UserID: "u-1", Rating: 7}
	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return([]models.Review{existing}, nil)

	_, err := svc.Save(ctx, models.Review{ID: "r-other", AnimeID: 21, Rating: 9})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestReviewService_HasUserReviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, _ := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	stored := []models.Review{
		{ID: "r-1", AnimeID: 21, UserID: "u-1"},
		{ID: "r-2", AnimeID: 20, UserID: "u-1"},
	}
	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return(stored, nil).Times(2)

	reviewed, err := svc.HasUserReviewed(ctx, "u-1", 21)
	require.NoError(t, err)
	assert.True(t, reviewed)

	reviewed, err = svc.HasUserReviewed(ctx, "u-1", 999)
	require.NoError(t, err)
	assert.False(t, reviewed)
}

func TestReviewService_UserReviewForAnime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, _ := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	stored := []models.Review{{ID: "r-1", AnimeID: 21, UserID: "u-1", Rating: 9}}
	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return(stored, nil)

	review, found, err := svc.UserReviewForAnime(ctx, "u-1", 21)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "r-1", review.ID)
}

func TestReviewService_AverageRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestReviewSvc(t, ctrl)

	ratings := func(values ...int) []models.Review {
		reviews := make([]models.Review, 0, len(values))
		for _, v := range values {
			reviews = append(reviews, models.Review{Rating: v})
		}
		return reviews
	}

	tests := []struct {
		name    string
		reviews []models.Review
		want    float64
	}{
		{"empty yields zero", nil, 0},
		{"single review", ratings(7), 7},
		{"exact half", ratings(8, 9), 8.5},
		{"rounded down to one decimal", ratings(7, 7, 8), 7.3},
		{"rounded up to one decimal", ratings(8, 9, 9), 8.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.AverageRating(tt.reviews), 1e-9)
		})
	}
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, _ := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	reviews.EXPECT().DeleteReview(ctx, "r-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "r-1"))
}

func TestReviewService_ListingPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reviews, _ := newTestReviewSvc(t, ctrl)
	ctx := context.Background()

	all := []models.Review{{ID: "r-1"}, {ID: "r-2"}}
	reviews.EXPECT().GetAllReviews(ctx).Return(all, nil)
	reviews.EXPECT().GetReviewsByAnime(ctx, int64(21)).Return(all[:1], nil)
	reviews.EXPECT().GetReviewsByUser(ctx, "u-1").Return(all[1:], nil)

	got, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ByAnime(ctx, 21)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStubGoogleIdentity_AlwaysSucceedsWithFixedProfile(t *testing.T) {
	email, name, photo, err := NewStubGoogleIdentity().Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usuario@gmail.com", email)
	assert.Equal(t, "Usuario Google", name)
	assert.Contains(t, photo, "ui-avatars.com")
}
