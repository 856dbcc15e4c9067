package service

import (
	"context"
	"showtracker/configs"
	"showtracker/internal/repository"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"time"
)

type IAdminService interface {
	FetchDbConfigs() error
	GetDbConfigs() configs.DbConfigData
	RecountUserPlaylists(ctx context.Context, userId string) ([]model.Playlist, error)
	InvalidateShowCache(ctx context.Context, showId int64) error
}

type AdminService struct {
	playlistRepo repository.IPlaylistRepository
	cacheService ICacheService
	fetchConfigs func() error
}

func NewAdminService(playlistRepo repository.IPlaylistRepository, cacheService ICacheService, fetchConfigs func() error) *AdminService {
	service := &AdminService{
		playlistRepo: playlistRepo,
		cacheService: cacheService,
		fetchConfigs: fetchConfigs,
	}

	return service
}

//-----------------------------------------
//-----------------------------------------

func (m *AdminService) FetchDbConfigs() error {
	return m.fetchConfigs()
}

func (m *AdminService) GetDbConfigs() configs.DbConfigData {
	return configs.GetDbConfigs()
}

// RecountUserPlaylists reconciles the item counters of every playlist a user owns.
func (m *AdminService) RecountUserPlaylists(ctx context.Context, userId string) ([]model.Playlist, error) {
	playlists, err := m.playlistRepo.GetPlaylists(ctx, userId)
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		count, err := m.playlistRepo.CountPlaylistItems(ctx, userId, playlists[i].Id)
		if err != nil {
			return nil, err
		}
		if count == playlists[i].ItemCount {
			continue
		}
		if err = m.playlistRepo.SetPlaylistItemCount(ctx, userId, playlists[i].Id, count, time.Now().UTC()); err != nil {
			return nil, err
		}
		playlists[i].ItemCount = count
	}
	return playlists, nil
}

func (m *AdminService) InvalidateShowCache(ctx context.Context, showId int64) error {
	if showId <= 0 {
		return catalog.ErrShowNotFound
	}
	return m.cacheService.DeleteShowCache(ctx, showId)
}
