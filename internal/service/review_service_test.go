package service

import (
	"context"
	"fmt"
	"showtracker/configs"
	"showtracker/model"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestReviewService() (*ReviewService, *fakeReviewRepo, *recordedEvents) {
	repo := newFakeReviewRepo()
	events := &recordedEvents{}
	svc := NewReviewService(repo, newFakeProfileRepo(), events)
	svc.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return svc, repo, events
}

func TestSaveReviewTwiceKeepsOneEntryWithLatestValues(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestReviewService()
	identity := testIdentity()
	show := model.Show{ShowId: 5, Name: "Severance", Poster: "p.jpg"}

	require.NoError(t, svc.SaveReview(ctx, identity, show, model.ReviewInput{
		Rating:     ptr(3.0),
		IsFavorite: ptr(true),
		ReviewText: ptr("good"),
	}))
	require.NoError(t, svc.SaveReview(ctx, identity, show, model.ReviewInput{Rating: ptr(4.5)}))

	reviews, err := svc.GetMyReviews(ctx, identity)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, 4.5, reviews[0].Rating)
	require.True(t, reviews[0].IsFavorite)
	require.Equal(t, "good", reviews[0].ReviewText)
	require.Equal(t, "Jane", reviews[0].AuthorName)
	require.True(t, reviews[0].UpdatedAt.After(reviews[0].CreatedAt))
}

func TestSaveReviewDefaultsOnInsert(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestReviewService()
	identity := testIdentity()

	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 9}, model.ReviewInput{IsFavorite: ptr(true)}))

	entry, err := repo.GetReview(ctx, identity.UserId, 9)
	require.NoError(t, err)
	require.Equal(t, 0.0, entry.Rating)
	require.Equal(t, "", entry.ReviewText)
	require.True(t, entry.IsFavorite)
}

func TestSaveReviewRejectsOutOfRangeRating(t *testing.T) {
	ctx := context.Background()
	svc, repo, events := newTestReviewService()

	for _, rating := range []float64{-0.5, 5.5} {
		err := svc.SaveReview(ctx, testIdentity(), model.Show{ShowId: 1}, model.ReviewInput{Rating: ptr(rating)})
		require.ErrorIs(t, err, model.ErrInvalidRating)
	}
	require.Empty(t, repo.entries)
	require.Empty(t, events.types())
}

func TestSaveReviewRequiresIdentity(t *testing.T) {
	svc, _, _ := newTestReviewService()
	err := svc.SaveReview(context.Background(), nil, model.Show{ShowId: 1}, model.ReviewInput{})
	require.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestSaveReviewAnonymousAuthorName(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestReviewService()
	identity := testIdentity()
	identity.DisplayName = ""

	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 1}, model.ReviewInput{}))
	entry, err := repo.GetReview(ctx, identity.UserId, 1)
	require.NoError(t, err)
	require.Equal(t, "Anonymous", entry.AuthorName)
}

func TestFavoritesOnlyListsFavorites(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestReviewService()
	identity := testIdentity()

	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 1}, model.ReviewInput{IsFavorite: ptr(true)}))
	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 2}, model.ReviewInput{IsFavorite: ptr(false)}))
	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 3}, model.ReviewInput{IsFavorite: ptr(true)}))

	favorites, err := svc.GetFavorites(ctx, identity)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.Equal(t, int64(3), favorites[0].ShowId)
	require.Equal(t, int64(1), favorites[1].ShowId)
}

func TestShowReviewsAreCappedAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestReviewService()

	for i := 0; i < defaultPublicReviewsLimit+5; i++ {
		identity := testIdentity()
		identity.UserId = fmt.Sprintf("user-%d", i)
		require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 42}, model.ReviewInput{Rating: ptr(4.0)}))
	}

	reviews := svc.GetShowReviews(ctx, 42)
	require.Len(t, reviews, defaultPublicReviewsLimit)
	require.Equal(t, fmt.Sprintf("user-%d", defaultPublicReviewsLimit+4), reviews[0].AuthorId)
}

func TestShowReviewsLimitFromDbConfigs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestReviewService()
	configs.SetDbConfigs(configs.DbConfigData{PublicReviewsLimit: 2})
	t.Cleanup(func() { configs.SetDbConfigs(configs.DbConfigData{}) })

	for i := 0; i < 4; i++ {
		identity := testIdentity()
		identity.UserId = fmt.Sprintf("user-%d", i)
		require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 42}, model.ReviewInput{}))
	}

	require.Len(t, svc.GetShowReviews(ctx, 42), 2)
}

func TestShowReviewsFailureYieldsEmptyList(t *testing.T) {
	svc, repo, _ := newTestReviewService()
	repo.err = errStorage

	reviews := svc.GetShowReviews(context.Background(), 42)
	require.NotNil(t, reviews)
	require.Empty(t, reviews)
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	svc, _, events := newTestReviewService()
	identity := testIdentity()

	require.NoError(t, svc.SaveReview(ctx, identity, model.Show{ShowId: 1}, model.ReviewInput{}))
	require.NoError(t, svc.DeleteReview(ctx, identity, 1))
	require.ErrorIs(t, svc.DeleteReview(ctx, identity, 1), model.ErrReviewNotFound)
	require.Equal(t, []model.ActivityType{model.ReviewSaved, model.ReviewDeleted}, events.types())
}

func TestSaveReviewUsesProfileNameAfterRename(t *testing.T) {
	ctx := context.Background()
	f := newProfileFixture()
	reviews := NewReviewService(f.reviews, f.profiles, nil)
	identity := &model.Identity{UserId: "u-new", Email: "new@example.com", Provider: model.LocalProvider}

	_, err := f.svc.UpdateProfile(ctx, identity, model.ProfileUpdate{DisplayName: ptr("Alice")})
	require.NoError(t, err)
	require.NoError(t, reviews.SaveReview(ctx, identity, model.Show{ShowId: 7, Name: "Dark"}, model.ReviewInput{Rating: ptr(4.0)}))

	public := reviews.GetShowReviews(ctx, 7)
	require.Len(t, public, 1)
	require.Equal(t, "Alice", public[0].AuthorName)

	_, err = f.svc.UpdateProfile(ctx, identity, model.ProfileUpdate{DisplayName: ptr("Alice B")})
	require.NoError(t, err)
	require.NoError(t, reviews.SaveReview(ctx, identity, model.Show{ShowId: 7, Name: "Dark"}, model.ReviewInput{IsFavorite: ptr(true)}))

	public = reviews.GetShowReviews(ctx, 7)
	require.Len(t, public, 1)
	require.Equal(t, "Alice B", public[0].AuthorName)
	require.Equal(t, 4.0, public[0].Rating)
}

func TestSaveReviewAuthorNameFallsBack(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, profiles, nil)

	require.NoError(t, svc.SaveReview(ctx, testIdentity(), model.Show{ShowId: 1}, model.ReviewInput{}))
	entry, err := repo.GetReview(ctx, "user-1", 1)
	require.NoError(t, err)
	require.Equal(t, "Jane", entry.AuthorName)

	profiles.err = fmt.Errorf("mongo down")
	require.NoError(t, svc.SaveReview(ctx, &model.Identity{UserId: "user-2"}, model.Show{ShowId: 1}, model.ReviewInput{}))
	entry, err = repo.GetReview(ctx, "user-2", 1)
	require.NoError(t, err)
	require.Equal(t, "Anonymous", entry.AuthorName)
}
