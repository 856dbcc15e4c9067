package service

import (
	"context"
	"fmt"
	"showtracker/internal/repository"
	"showtracker/model"
	"time"
)

type IWatchlistService interface {
	AddToWatchlist(ctx context.Context, identity *model.Identity, show model.Show) error
	RemoveFromWatchlist(ctx context.Context, identity *model.Identity, showId int64) error
	GetWatchlist(ctx context.Context, identity *model.Identity) ([]model.WatchlistEntry, error)
	IsInWatchlist(ctx context.Context, identity *model.Identity, showId int64) (bool, error)
}

type WatchlistService struct {
	watchlistRepo repository.IWatchlistRepository
	events        IEventService
	now           func() time.Time
}

func NewWatchlistService(watchlistRepo repository.IWatchlistRepository, events IEventService) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		events:        events,
		now:           time.Now,
	}
}

//------------------------------------------
//------------------------------------------

// AddToWatchlist is idempotent: adding a show twice keeps one entry with the
// latest metadata and insertion time.
func (w *WatchlistService) AddToWatchlist(ctx context.Context, identity *model.Identity, show model.Show) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	if err = show.Validate(); err != nil {
		return err
	}

	entry := model.WatchlistEntry{
		UserId:  userId,
		Show:    show,
		AddedAt: w.now().UTC(),
	}
	if err = w.watchlistRepo.UpsertWatchlistEntry(ctx, entry); err != nil {
		return fmt.Errorf("add to watchlist: %w", err)
	}

	emit(w.events, model.WatchlistAdded, userId, show.ShowId, "")
	return nil
}

func (w *WatchlistService) RemoveFromWatchlist(ctx context.Context, identity *model.Identity, showId int64) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	if err = w.watchlistRepo.DeleteWatchlistEntry(ctx, userId, showId); err != nil {
		return fmt.Errorf("remove from watchlist: %w", err)
	}

	emit(w.events, model.WatchlistRemoved, userId, showId, "")
	return nil
}

func (w *WatchlistService) GetWatchlist(ctx context.Context, identity *model.Identity) ([]model.WatchlistEntry, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	entries, err := w.watchlistRepo.GetWatchlist(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist: %w", err)
	}
	return entries, nil
}

func (w *WatchlistService) IsInWatchlist(ctx context.Context, identity *model.Identity, showId int64) (bool, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return false, err
	}
	exists, err := w.watchlistRepo.WatchlistEntryExists(ctx, userId, showId)
	if err != nil {
		return false, fmt.Errorf("watchlist lookup: %w", err)
	}
	return exists, nil
}
