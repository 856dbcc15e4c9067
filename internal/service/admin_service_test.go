package service

import (
	"context"
	"errors"
	"showtracker/configs"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminRecountUserPlaylists(t *testing.T) {
	ctx := context.Background()
	repo := newFakePlaylistRepo()
	svc := NewAdminService(repo, newFakeCache(), func() error { return nil })

	drifted := &model.Playlist{Id: primitive.NewObjectID(), UserId: "u1", ItemCount: 5}
	exact := &model.Playlist{Id: primitive.NewObjectID(), UserId: "u1", ItemCount: 1}
	require.NoError(t, repo.CreatePlaylist(ctx, drifted))
	require.NoError(t, repo.CreatePlaylist(ctx, exact))
	require.NoError(t, repo.InsertPlaylistItem(ctx, model.PlaylistItem{PlaylistId: drifted.Id, UserId: "u1", Show: model.Show{ShowId: 1}}))
	require.NoError(t, repo.InsertPlaylistItem(ctx, model.PlaylistItem{PlaylistId: exact.Id, UserId: "u1", Show: model.Show{ShowId: 1}}))

	playlists, err := svc.RecountUserPlaylists(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, playlists, 2)
	for _, p := range playlists {
		require.Equal(t, int64(1), p.ItemCount)
	}

	stored, err := repo.GetPlaylist(ctx, "u1", drifted.Id)
	require.NoError(t, err)
	require.Equal(t, int64(1), stored.ItemCount)
}

func TestAdminInvalidateShowCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	svc := NewAdminService(newFakePlaylistRepo(), cache, func() error { return nil })
	require.NoError(t, cache.SetShowCache(ctx, 82, &catalog.ShowDetail{}, time.Hour))

	require.NoError(t, svc.InvalidateShowCache(ctx, 82))
	cached, err := cache.GetCachedShow(ctx, 82)
	require.NoError(t, err)
	require.Nil(t, cached)

	require.ErrorIs(t, svc.InvalidateShowCache(ctx, 0), catalog.ErrShowNotFound)
}

func TestAdminFetchDbConfigs(t *testing.T) {
	called := false
	svc := NewAdminService(newFakePlaylistRepo(), newFakeCache(), func() error {
		called = true
		configs.SetDbConfigs(configs.DbConfigData{Title: "server configs", PublicReviewsLimit: 7})
		return nil
	})
	t.Cleanup(func() { configs.SetDbConfigs(configs.DbConfigData{}) })

	require.NoError(t, svc.FetchDbConfigs())
	require.True(t, called)
	require.Equal(t, int64(7), svc.GetDbConfigs().PublicReviewsLimit)

	failing := NewAdminService(newFakePlaylistRepo(), newFakeCache(), func() error { return errors.New("no configs") })
	require.Error(t, failing.FetchDbConfigs())
}

func TestNormalizeQuery(t *testing.T) {
	require.Equal(t, "the office", normalizeQuery("  The   OFFICE "))
	require.Equal(t, normalizeQuery("éclair"), normalizeQuery("ÉCLAIR"))
}
