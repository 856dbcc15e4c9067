package service

import (
	"context"
	"errors"
	"fmt"
	"showtracker/internal/repository"
	"showtracker/model"
	errorHandler "showtracker/pkg/error"

	"github.com/sourcegraph/conc/pool"
)

type IStatusService interface {
	GetShowStatus(ctx context.Context, identity *model.Identity, showId int64) model.ShowStatus
}

type StatusService struct {
	watchlistRepo repository.IWatchlistRepository
	reviewRepo    repository.IReviewRepository
}

func NewStatusService(watchlistRepo repository.IWatchlistRepository, reviewRepo repository.IReviewRepository) *StatusService {
	return &StatusService{
		watchlistRepo: watchlistRepo,
		reviewRepo:    reviewRepo,
	}
}

//------------------------------------------
//------------------------------------------

// GetShowStatus reads watchlist membership and the caller's review in
// parallel. Any failure, including a missing identity, yields the zero status.
func (s *StatusService) GetShowStatus(ctx context.Context, identity *model.Identity, showId int64) model.ShowStatus {
	userId, err := requireUser(identity)
	if err != nil || showId <= 0 {
		return model.ShowStatus{}
	}

	var inWatchlist bool
	var review *model.ReviewEntry

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		exists, err := s.watchlistRepo.WatchlistEntryExists(ctx, userId, showId)
		if err != nil {
			return fmt.Errorf("watchlist lookup: %w", err)
		}
		inWatchlist = exists
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entry, err := s.reviewRepo.GetReview(ctx, userId, showId)
		if errors.Is(err, model.ErrReviewNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("review lookup: %w", err)
		}
		review = entry
		return nil
	})

	if err = p.Wait(); err != nil {
		errorMessage := fmt.Sprintf("Error on show status lookup %d: %v", showId, err)
		errorHandler.SaveError(errorMessage, err)
		return model.ShowStatus{}
	}

	status := model.ShowStatus{InWatchlist: inWatchlist}
	if review != nil {
		status.IsFavorite = review.IsFavorite
		status.UserRating = review.Rating
		status.ReviewText = review.ReviewText
	}
	return status
}
