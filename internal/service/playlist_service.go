package service

import (
	"context"
	"errors"
	"fmt"
	"showtracker/internal/repository"
	"showtracker/model"
	errorHandler "showtracker/pkg/error"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IPlaylistService interface {
	CreatePlaylist(ctx context.Context, identity *model.Identity, name string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, identity *model.Identity, playlistId string) error
	GetPlaylists(ctx context.Context, identity *model.Identity) ([]model.Playlist, error)
	AddToPlaylist(ctx context.Context, identity *model.Identity, playlistId string, show model.Show) error
	RemoveFromPlaylist(ctx context.Context, identity *model.Identity, playlistId string, showId int64) error
	GetPlaylistItems(ctx context.Context, identity *model.Identity, playlistId string) ([]model.PlaylistItem, error)
	RecountPlaylist(ctx context.Context, identity *model.Identity, playlistId string) (*model.Playlist, error)
}

type PlaylistService struct {
	playlistRepo repository.IPlaylistRepository
	events       IEventService
	now          func() time.Time
}

func NewPlaylistService(playlistRepo repository.IPlaylistRepository, events IEventService) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		events:       events,
		now:          time.Now,
	}
}

//------------------------------------------
//------------------------------------------

func parsePlaylistId(playlistId string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(playlistId)
	if err != nil {
		return primitive.NilObjectID, model.ErrPlaylistNotFound
	}
	return id, nil
}

func (p *PlaylistService) CreatePlaylist(ctx context.Context, identity *model.Identity, name string) (*model.Playlist, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidPlaylistName
	}

	now := p.now().UTC()
	playlist := &model.Playlist{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = p.playlistRepo.CreatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	emit(p.events, model.PlaylistCreated, userId, 0, playlist.Id.Hex())
	return playlist, nil
}

// DeletePlaylist removes the playlist and then its items.
func (p *PlaylistService) DeletePlaylist(ctx context.Context, identity *model.Identity, playlistId string) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	id, err := parsePlaylistId(playlistId)
	if err != nil {
		return err
	}

	deleted, err := p.playlistRepo.DeletePlaylist(ctx, userId, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if !deleted {
		return model.ErrPlaylistNotFound
	}
	if err = p.playlistRepo.DeletePlaylistItems(ctx, userId, id); err != nil {
		// the playlist is gone either way; leftover items are unreachable
		errorMessage := fmt.Sprintf("Error on deleting items of playlist %s: %v", playlistId, err)
		errorHandler.SaveError(errorMessage, err)
	}

	emit(p.events, model.PlaylistDeleted, userId, 0, playlistId)
	return nil
}

func (p *PlaylistService) GetPlaylists(ctx context.Context, identity *model.Identity) ([]model.Playlist, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	playlists, err := p.playlistRepo.GetPlaylists(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("fetch playlists: %w", err)
	}
	return playlists, nil
}

//------------------------------------------
//------------------------------------------

// AddToPlaylist writes the item, then bumps itemCount by one and moves the
// cover to the show's poster. Re-adding a member only refreshes the item.
// If the playlist update fails, a freshly inserted item is removed again.
func (p *PlaylistService) AddToPlaylist(ctx context.Context, identity *model.Identity, playlistId string, show model.Show) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	if err = show.Validate(); err != nil {
		return err
	}
	id, err := parsePlaylistId(playlistId)
	if err != nil {
		return err
	}
	if _, err = p.playlistRepo.GetPlaylist(ctx, userId, id); err != nil {
		return err
	}

	now := p.now().UTC()
	item := model.PlaylistItem{
		PlaylistId: id,
		UserId:     userId,
		Show:       show,
		AddedAt:    now,
	}
	inserted, err := p.playlistRepo.UpsertPlaylistItem(ctx, item)
	if err != nil {
		return fmt.Errorf("add playlist item: %w", err)
	}

	var delta int64
	if inserted {
		delta = 1
	}
	cover := show.Poster
	if err = p.playlistRepo.UpdatePlaylistItemCount(ctx, userId, id, delta, &cover, now); err != nil {
		if inserted {
			if _, undoErr := p.playlistRepo.DeletePlaylistItem(ctx, userId, id, show.ShowId); undoErr != nil {
				errorMessage := fmt.Sprintf("Error on undoing playlist item insert %s/%d: %v", playlistId, show.ShowId, undoErr)
				errorHandler.SaveError(errorMessage, undoErr)
			}
		}
		return fmt.Errorf("update playlist count: %w", err)
	}

	emit(p.events, model.PlaylistItemAdded, userId, show.ShowId, playlistId)
	return nil
}

// RemoveFromPlaylist deletes the item and decrements itemCount only when an
// item was actually removed. If the decrement fails the item is put back.
func (p *PlaylistService) RemoveFromPlaylist(ctx context.Context, identity *model.Identity, playlistId string, showId int64) error {
	userId, err := requireUser(identity)
	if err != nil {
		return err
	}
	id, err := parsePlaylistId(playlistId)
	if err != nil {
		return err
	}
	if _, err = p.playlistRepo.GetPlaylist(ctx, userId, id); err != nil {
		return err
	}

	deleted, err := p.playlistRepo.DeletePlaylistItem(ctx, userId, id, showId)
	if err != nil {
		return fmt.Errorf("remove playlist item: %w", err)
	}
	if deleted == nil {
		return nil
	}

	if err = p.playlistRepo.UpdatePlaylistItemCount(ctx, userId, id, -1, nil, p.now().UTC()); err != nil {
		if undoErr := p.playlistRepo.InsertPlaylistItem(ctx, *deleted); undoErr != nil {
			errorMessage := fmt.Sprintf("Error on restoring playlist item %s/%d: %v", playlistId, showId, undoErr)
			errorHandler.SaveError(errorMessage, undoErr)
		}
		return fmt.Errorf("update playlist count: %w", err)
	}

	emit(p.events, model.PlaylistItemRemoved, userId, showId, playlistId)
	return nil
}

func (p *PlaylistService) GetPlaylistItems(ctx context.Context, identity *model.Identity, playlistId string) ([]model.PlaylistItem, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	id, err := parsePlaylistId(playlistId)
	if err != nil {
		return nil, err
	}
	if _, err = p.playlistRepo.GetPlaylist(ctx, userId, id); err != nil {
		return nil, err
	}

	items, err := p.playlistRepo.GetPlaylistItems(ctx, userId, id)
	if err != nil {
		return nil, fmt.Errorf("fetch playlist items: %w", err)
	}
	return items, nil
}

// RecountPlaylist resets itemCount to the actual number of members.
func (p *PlaylistService) RecountPlaylist(ctx context.Context, identity *model.Identity, playlistId string) (*model.Playlist, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	id, err := parsePlaylistId(playlistId)
	if err != nil {
		return nil, err
	}

	count, err := p.playlistRepo.CountPlaylistItems(ctx, userId, id)
	if err != nil {
		return nil, fmt.Errorf("count playlist items: %w", err)
	}
	if err = p.playlistRepo.SetPlaylistItemCount(ctx, userId, id, count, p.now().UTC()); err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("set playlist count: %w", err)
	}
	return p.playlistRepo.GetPlaylist(ctx, userId, id)
}
