package client

import (
	"context"
	"errors"
	"showtracker/model"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	state := StateFromStatus(model.ShowStatus{InWatchlist: true, UserRating: 3, ReviewText: "ok"})
	require.Equal(t, ShowState{InWatchlist: true, Rating: 3, ReviewText: "ok"}, state)

	next := Reduce(state, Action{Type: ActionToggleWatchlist})
	require.False(t, next.InWatchlist)
	require.True(t, state.InWatchlist)

	next = Reduce(next, Action{Type: ActionToggleFavorite})
	require.True(t, next.IsFavorite)

	require.Equal(t, float64(5), Reduce(next, Action{Type: ActionSetRating, Rating: 9}).Rating)
	require.Equal(t, float64(0), Reduce(next, Action{Type: ActionSetRating, Rating: -1}).Rating)
	require.Equal(t, 4.5, Reduce(next, Action{Type: ActionSetRating, Rating: 4.5}).Rating)
	require.Equal(t, "great", Reduce(next, Action{Type: ActionSetReviewText, Text: "great"}).ReviewText)

	reset := Reduce(next, Action{Type: ActionReset, Status: model.ShowStatus{IsFavorite: true}})
	require.Equal(t, ShowState{IsFavorite: true}, reset)
}

func TestApplyKeepsStateOnSuccess(t *testing.T) {
	store := NewShowStore(ShowState{})

	var seen ShowState
	err := store.Apply(context.Background(), Action{Type: ActionToggleWatchlist}, func(_ context.Context, next ShowState) error {
		seen = next
		require.True(t, store.State().InWatchlist)
		return nil
	})
	require.NoError(t, err)
	require.True(t, seen.InWatchlist)
	require.True(t, store.State().InWatchlist)
}

func TestApplyRestoresSnapshotOnFailure(t *testing.T) {
	store := NewShowStore(ShowState{Rating: 2})
	remoteErr := errors.New("offline")

	err := store.Apply(context.Background(), Action{Type: ActionSetRating, Rating: 5}, func(context.Context, ShowState) error {
		require.Equal(t, float64(5), store.State().Rating)
		return remoteErr
	})
	require.ErrorIs(t, err, remoteErr)
	require.Equal(t, ShowState{Rating: 2}, store.State())
}

func TestApplyDoesNotOverwriteNewerState(t *testing.T) {
	store := NewShowStore(ShowState{})

	err := store.Apply(context.Background(), Action{Type: ActionToggleFavorite}, func(context.Context, ShowState) error {
		store.Dispatch(Action{Type: ActionSetReviewText, Text: "newer"})
		return errors.New("offline")
	})
	require.Error(t, err)
	require.Equal(t, ShowState{IsFavorite: true, ReviewText: "newer"}, store.State())
}
