package client

import (
	"context"
	"showtracker/model"
	"sync"
)

// ShowState is the presentation view of the caller's relation to one show.
type ShowState struct {
	InWatchlist bool
	IsFavorite  bool
	Rating      float64
	ReviewText  string
}

func StateFromStatus(status model.ShowStatus) ShowState {
	return ShowState{
		InWatchlist: status.InWatchlist,
		IsFavorite:  status.IsFavorite,
		Rating:      status.UserRating,
		ReviewText:  status.ReviewText,
	}
}

type ActionType int

const (
	ActionReset ActionType = iota
	ActionToggleWatchlist
	ActionToggleFavorite
	ActionSetRating
	ActionSetReviewText
)

type Action struct {
	Type   ActionType
	Rating float64
	Text   string
	Status model.ShowStatus
}

// Reduce returns the state that follows action. It never mutates its input.
func Reduce(state ShowState, action Action) ShowState {
	switch action.Type {
	case ActionReset:
		return StateFromStatus(action.Status)
	case ActionToggleWatchlist:
		state.InWatchlist = !state.InWatchlist
	case ActionToggleFavorite:
		state.IsFavorite = !state.IsFavorite
	case ActionSetRating:
		rating := action.Rating
		if rating < model.MinRating {
			rating = model.MinRating
		}
		if rating > model.MaxRating {
			rating = model.MaxRating
		}
		state.Rating = rating
	case ActionSetReviewText:
		state.ReviewText = action.Text
	}
	return state
}

// ShowStore holds one ShowState and applies actions optimistically.
type ShowStore struct {
	mux   sync.Mutex
	state ShowState
}

func NewShowStore(initial ShowState) *ShowStore {
	return &ShowStore{state: initial}
}

func (s *ShowStore) State() ShowState {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.state
}

func (s *ShowStore) Dispatch(action Action) ShowState {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state = Reduce(s.state, action)
	return s.state
}

// Apply shows the result of action right away and then runs remote with the
// new state. When remote fails the state before the action is restored, as
// long as no other action was applied in between.
func (s *ShowStore) Apply(ctx context.Context, action Action, remote func(ctx context.Context, next ShowState) error) error {
	s.mux.Lock()
	snapshot := s.state
	next := Reduce(snapshot, action)
	s.state = next
	s.mux.Unlock()

	if err := remote(ctx, next); err != nil {
		s.mux.Lock()
		if s.state == next {
			s.state = snapshot
		}
		s.mux.Unlock()
		return err
	}
	return nil
}
