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

	"github.com/sourcegraph/conc/pool"
)

type IProfileService interface {
	GetProfile(ctx context.Context, identity *model.Identity) (*model.ProfileRes, error)
	UpdateProfile(ctx context.Context, identity *model.Identity, update model.ProfileUpdate) (*model.ProfileRes, error)
}

type ProfileService struct {
	profileRepo   repository.IProfileRepository
	accountRepo   repository.IAccountRepository
	watchlistRepo repository.IWatchlistRepository
	reviewRepo    repository.IReviewRepository
	playlistRepo  repository.IPlaylistRepository
	now           func() time.Time
}

func NewProfileService(
	profileRepo repository.IProfileRepository,
	accountRepo repository.IAccountRepository,
	watchlistRepo repository.IWatchlistRepository,
	reviewRepo repository.IReviewRepository,
	playlistRepo repository.IPlaylistRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo:   profileRepo,
		accountRepo:   accountRepo,
		watchlistRepo: watchlistRepo,
		reviewRepo:    reviewRepo,
		playlistRepo:  playlistRepo,
		now:           time.Now,
	}
}

//------------------------------------------
//------------------------------------------

func defaultProfile(identity *model.Identity) *model.ProfileRes {
	return &model.ProfileRes{
		Name:  model.DefaultProfileName,
		Email: identity.Email,
	}
}

// GetProfile merges the stored profile with the caller's email and counts.
// Storage failures fall back to the default profile.
func (p *ProfileService) GetProfile(ctx context.Context, identity *model.Identity) (*model.ProfileRes, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}

	var profile *model.Profile
	res := defaultProfile(identity)

	g := pool.New().WithErrors().WithContext(ctx)
	g.Go(func(ctx context.Context) error {
		var err error
		profile, err = p.profileRepo.GetProfile(ctx, userId)
		return err
	})
	g.Go(func(ctx context.Context) error {
		var err error
		res.ReviewCount, err = p.reviewRepo.CountReviews(ctx, userId)
		return err
	})
	g.Go(func(ctx context.Context) error {
		var err error
		res.WatchlistCount, err = p.watchlistRepo.CountWatchlist(ctx, userId)
		return err
	})
	g.Go(func(ctx context.Context) error {
		var err error
		res.ListCount, err = p.playlistRepo.CountPlaylists(ctx, userId)
		return err
	})

	if err = g.Wait(); err != nil {
		errorMessage := fmt.Sprintf("Error on loading profile of %s: %v", userId, err)
		errorHandler.SaveError(errorMessage, err)
		return defaultProfile(identity), nil
	}

	if identity.DisplayName != "" {
		res.Name = identity.DisplayName
	}
	if profile != nil {
		if profile.DisplayName != "" {
			res.Name = profile.DisplayName
		}
		res.Bio = profile.Bio
		res.Phone = profile.Phone
		res.Location = profile.Location
		res.PhotoUrl = profile.PhotoUrl
	}
	return res, nil
}

// UpdateProfile writes only the supplied fields. The display name of a local
// account is mirrored onto the account row.
func (p *ProfileService) UpdateProfile(ctx context.Context, identity *model.Identity, update model.ProfileUpdate) (*model.ProfileRes, error) {
	userId, err := requireUser(identity)
	if err != nil {
		return nil, err
	}
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, model.ErrInvalidProfileName
		}
		update.DisplayName = &name
	}

	if !update.IsEmpty() {
		if err = p.profileRepo.UpdateProfile(ctx, userId, update, p.now().UTC()); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	if update.DisplayName != nil && identity.Provider != model.FirebaseProvider && p.accountRepo != nil {
		err = p.accountRepo.UpdateDisplayName(ctx, userId, *update.DisplayName)
		if err != nil && !errors.Is(err, model.ErrAccountNotFound) {
			errorMessage := fmt.Sprintf("Error on syncing display name of %s: %v", userId, err)
			errorHandler.SaveError(errorMessage, err)
		}
	}

	return p.GetProfile(ctx, identity)
}
