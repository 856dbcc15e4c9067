package service

import (
	"context"
	"fmt"
	"showtracker/configs"
	"showtracker/internal/repository"
	"showtracker/model"
	errorHandler "showtracker/pkg/error"
	"time"
)

type IReviewService interface {
	SaveReview(ctx context.Context, identity *model.Identity, show model.Show, input model.ReviewInput) error
	GetMyReviews(ctx context.Context, identity *model.Identity) ([]model.ReviewEntry, error)
	GetFavorites(ctx context.Context, identity *model.Identity) ([]model.ReviewEntry, error)
	GetShowReviews(ctx context.Context, showId int64) []model.ReviewEntry
	DeleteReview(ctx context.Context, identity *model.Identity, showId int64) error
}

const defaultPublicReviewsLimit = 20

type ReviewService struct {
	reviewRepo  repository.IReviewRepository
	profileRepo repository.IProfileRepository
	events      IEventService
	now         func() time.Time
}

func NewReviewService(reviewRepo repository.IReviewRepository, profileRepo repository.IProfileRepository, events IEventService) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		events:      events,
		now:         time.Now,
	}
}

//------------------------------------------
//------------------------------------------

// SaveReview keeps a single entry per user and show. Fields left nil in input
// keep their stored values; the last write wins for the rest.
func (r *ReviewService) SaveReview(ctx context.Context, identity *model.Identity, show model.Show, input model.ReviewInput) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	if err = show.Validate(); err != nil {
		return err
	}
	if err = input.Validate(); err != nil {
		return err
	}

	authorName := r.authorName(ctx, identity)
	err = r.reviewRepo.UpsertReview(ctx, userId, authorName, show, input, r.now().UTC())
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}

	emit(r.events, model.ReviewSaved, userId, show.ShowId, "")
	return nil
}

// authorName prefers the stored profile name over the token claim, which is
// fixed until the next refresh.
func (r *ReviewService) authorName(ctx context.Context, identity *model.Identity) string {
	if r.profileRepo == nil {
		return identity.AuthorName()
	}
	profile, err := r.profileRepo.GetProfile(ctx, identity.UserId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on loading author name of %s: %v", identity.UserId, err)
		errorHandler.SaveError(errorMessage, err)
		return identity.AuthorName()
	}
	if profile != nil && profile.DisplayName != "" {
		return profile.DisplayName
	}
	return identity.AuthorName()
}

func (r *ReviewService) GetMyReviews(ctx context.Context, identity *model.Identity) ([]model.ReviewEntry, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	reviews, err := r.reviewRepo.GetUserReviews(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewService) GetFavorites(ctx context.Context, identity *model.Identity) ([]model.ReviewEntry, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	favorites, err := r.reviewRepo.GetUserFavorites(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("fetch favorites: %w", err)
	}
	return favorites, nil
}

// GetShowReviews lists the newest public reviews for a show. It never fails;
// a backend error is reported and yields an empty list.
func (r *ReviewService) GetShowReviews(ctx context.Context, showId int64) []model.ReviewEntry {
	limit := configs.GetDbConfigs().PublicReviewsLimit
	if limit <= 0 {
		limit = defaultPublicReviewsLimit
	}

	reviews, err := r.reviewRepo.GetShowReviews(ctx, showId, limit)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on fetching reviews for show %d: %v", showId, err)
		errorHandler.SaveError(errorMessage, err)
		return []model.ReviewEntry{}
	}
	return reviews
}

func (r *ReviewService) DeleteReview(ctx context.Context, identity *model.Identity, showId int64) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	deleted, err := r.reviewRepo.DeleteReview(ctx, userId, showId)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if !deleted {
		return model.ErrReviewNotFound
	}

	emit(r.events, model.ReviewDeleted, userId, showId, "")
	return nil
}
