package service

import (
	"context"
	"errors"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStorage = errors.New("storage unavailable")

func testIdentity() *model.Identity {
	return &model.Identity{
		UserId:      "user-1",
		Email:       "user@example.com",
		DisplayName: "Jane",
		Role:        model.UserRole,
		SessionId:   "session-1",
		Provider:    model.LocalProvider,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

//------------------------------------------
//------------------------------------------

type watchlistKey struct {
	userId string
	showId int64
}

type fakeWatchlistRepo struct {
	mux     sync.Mutex
	entries map[watchlistKey]model.WatchlistEntry
	err     error
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{entries: map[watchlistKey]model.WatchlistEntry{}}
}

func (f *fakeWatchlistRepo) UpsertWatchlistEntry(_ context.Context, entry model.WatchlistEntry) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries[watchlistKey{entry.UserId, entry.ShowId}] = entry
	return nil
}

func (f *fakeWatchlistRepo) DeleteWatchlistEntry(_ context.Context, userId string, showId int64) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.entries, watchlistKey{userId, showId})
	return nil
}

func (f *fakeWatchlistRepo) GetWatchlist(_ context.Context, userId string) ([]model.WatchlistEntry, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	result := []model.WatchlistEntry{}
	for k, v := range f.entries {
		if k.userId == userId {
			result = append(result, v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AddedAt.After(result[j].AddedAt) })
	return result, nil
}

func (f *fakeWatchlistRepo) WatchlistEntryExists(_ context.Context, userId string, showId int64) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.entries[watchlistKey{userId, showId}]
	return ok, nil
}

func (f *fakeWatchlistRepo) CountWatchlist(ctx context.Context, userId string) (int64, error) {
	entries, err := f.GetWatchlist(ctx, userId)
	return int64(len(entries)), err
}

//------------------------------------------
//------------------------------------------

type fakeReviewRepo struct {
	mux     sync.Mutex
	entries map[watchlistKey]model.ReviewEntry
	err     error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{entries: map[watchlistKey]model.ReviewEntry{}}
}

func (f *fakeReviewRepo) UpsertReview(_ context.Context, userId string, authorName string, show model.Show, input model.ReviewInput, now time.Time) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return f.err
	}
	key := watchlistKey{userId, show.ShowId}
	entry, ok := f.entries[key]
	if !ok {
		entry = model.ReviewEntry{UserId: userId, ShowId: show.ShowId, CreatedAt: now}
	}
	entry.ShowName = show.Name
	entry.ShowPoster = show.Poster
	entry.AuthorId = userId
	entry.AuthorName = authorName
	entry.UpdatedAt = now
	if input.Rating != nil {
		entry.Rating = *input.Rating
	}
	if input.IsFavorite != nil {
		entry.IsFavorite = *input.IsFavorite
	}
	if input.ReviewText != nil {
		entry.ReviewText = *input.ReviewText
	}
	f.entries[key] = entry
	return nil
}

func (f *fakeReviewRepo) GetReview(_ context.Context, userId string, showId int64) (*model.ReviewEntry, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	entry, ok := f.entries[watchlistKey{userId, showId}]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	return &entry, nil
}

func (f *fakeReviewRepo) filter(keep func(model.ReviewEntry) bool, limit int64) ([]model.ReviewEntry, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	result := []model.ReviewEntry{}
	for _, v := range f.entries {
		if keep(v) {
			result = append(result, v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UpdatedAt.After(result[j].UpdatedAt) })
	if limit > 0 && int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeReviewRepo) GetUserReviews(_ context.Context, userId string) ([]model.ReviewEntry, error) {
	return f.filter(func(e model.ReviewEntry) bool { return e.UserId == userId }, 0)
}

func (f *fakeReviewRepo) GetUserFavorites(_ context.Context, userId string) ([]model.ReviewEntry, error) {
	return f.filter(func(e model.ReviewEntry) bool { return e.UserId == userId && e.IsFavorite }, 0)
}

func (f *fakeReviewRepo) GetShowReviews(_ context.Context, showId int64, limit int64) ([]model.ReviewEntry, error) {
	return f.filter(func(e model.ReviewEntry) bool { return e.ShowId == showId }, limit)
}

func (f *fakeReviewRepo) DeleteReview(_ context.Context, userId string, showId int64) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return false, f.err
	}
	key := watchlistKey{userId, showId}
	_, ok := f.entries[key]
	delete(f.entries, key)
	return ok, nil
}

func (f *fakeReviewRepo) CountReviews(ctx context.Context, userId string) (int64, error) {
	entries, err := f.GetUserReviews(ctx, userId)
	return int64(len(entries)), err
}

//------------------------------------------
//------------------------------------------

type playlistItemKey struct {
	playlistId primitive.ObjectID
	showId     int64
}

type fakePlaylistRepo struct {
	mux       sync.Mutex
	playlists map[primitive.ObjectID]model.Playlist
	items     map[playlistItemKey]model.PlaylistItem
	// countErr fails UpdatePlaylistItemCount
	countErr error
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists: map[primitive.ObjectID]model.Playlist{},
		items:     map[playlistItemKey]model.PlaylistItem{},
	}
}

func (f *fakePlaylistRepo) CreatePlaylist(_ context.Context, playlist *model.Playlist) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if playlist.Id.IsZero() {
		playlist.Id = primitive.NewObjectID()
	}
	f.playlists[playlist.Id] = *playlist
	return nil
}

func (f *fakePlaylistRepo) GetPlaylist(_ context.Context, userId string, playlistId primitive.ObjectID) (*model.Playlist, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	p, ok := f.playlists[playlistId]
	if !ok || p.UserId != userId {
		return nil, model.ErrPlaylistNotFound
	}
	return &p, nil
}

func (f *fakePlaylistRepo) GetPlaylists(_ context.Context, userId string) ([]model.Playlist, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	result := []model.Playlist{}
	for _, p := range f.playlists {
		if p.UserId == userId {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakePlaylistRepo) DeletePlaylist(_ context.Context, userId string, playlistId primitive.ObjectID) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	p, ok := f.playlists[playlistId]
	if !ok || p.UserId != userId {
		return false, nil
	}
	delete(f.playlists, playlistId)
	return true, nil
}

func (f *fakePlaylistRepo) CountPlaylists(ctx context.Context, userId string) (int64, error) {
	playlists, err := f.GetPlaylists(ctx, userId)
	return int64(len(playlists)), err
}

func (f *fakePlaylistRepo) UpdatePlaylistItemCount(_ context.Context, userId string, playlistId primitive.ObjectID, delta int64, coverImage *string, now time.Time) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.countErr != nil {
		return f.countErr
	}
	p, ok := f.playlists[playlistId]
	if !ok || p.UserId != userId {
		return model.ErrPlaylistNotFound
	}
	p.ItemCount += delta
	if coverImage != nil {
		p.CoverImage = *coverImage
	}
	p.UpdatedAt = now
	f.playlists[playlistId] = p
	return nil
}

func (f *fakePlaylistRepo) SetPlaylistItemCount(_ context.Context, userId string, playlistId primitive.ObjectID, count int64, now time.Time) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	p, ok := f.playlists[playlistId]
	if !ok || p.UserId != userId {
		return model.ErrPlaylistNotFound
	}
	p.ItemCount = count
	p.UpdatedAt = now
	f.playlists[playlistId] = p
	return nil
}

func (f *fakePlaylistRepo) UpsertPlaylistItem(_ context.Context, item model.PlaylistItem) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	key := playlistItemKey{item.PlaylistId, item.ShowId}
	_, exists := f.items[key]
	f.items[key] = item
	return !exists, nil
}

func (f *fakePlaylistRepo) InsertPlaylistItem(_ context.Context, item model.PlaylistItem) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.items[playlistItemKey{item.PlaylistId, item.ShowId}] = item
	return nil
}

func (f *fakePlaylistRepo) DeletePlaylistItem(_ context.Context, userId string, playlistId primitive.ObjectID, showId int64) (*model.PlaylistItem, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	key := playlistItemKey{playlistId, showId}
	item, ok := f.items[key]
	if !ok || item.UserId != userId {
		return nil, nil
	}
	delete(f.items, key)
	return &item, nil
}

func (f *fakePlaylistRepo) DeletePlaylistItems(_ context.Context, userId string, playlistId primitive.ObjectID) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	for k, v := range f.items {
		if k.playlistId == playlistId && v.UserId == userId {
			delete(f.items, k)
		}
	}
	return nil
}

func (f *fakePlaylistRepo) GetPlaylistItems(_ context.Context, userId string, playlistId primitive.ObjectID) ([]model.PlaylistItem, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	result := []model.PlaylistItem{}
	for k, v := range f.items {
		if k.playlistId == playlistId && v.UserId == userId {
			result = append(result, v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AddedAt.After(result[j].AddedAt) })
	return result, nil
}

func (f *fakePlaylistRepo) CountPlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) (int64, error) {
	items, err := f.GetPlaylistItems(ctx, userId, playlistId)
	return int64(len(items)), err
}

//------------------------------------------
//------------------------------------------

type fakeProfileRepo struct {
	mux      sync.Mutex
	profiles map[string]model.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]model.Profile{}}
}

func (f *fakeProfileRepo) GetProfile(_ context.Context, userId string) (*model.Profile, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userId]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) UpdateProfile(_ context.Context, userId string, update model.ProfileUpdate, now time.Time) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return f.err
	}
	p := f.profiles[userId]
	p.UserId = userId
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Location != nil {
		p.Location = *update.Location
	}
	if update.PhotoUrl != nil {
		p.PhotoUrl = *update.PhotoUrl
	}
	p.UpdatedAt = now
	f.profiles[userId] = p
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeAccountRepo struct {
	mux      sync.Mutex
	accounts map[string]model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]model.Account{}}
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, account *model.Account) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	for _, a := range f.accounts {
		if a.Email == account.Email {
			return model.ErrEmailAlreadyExist
		}
	}
	f.accounts[account.Id] = *account
	return nil
}

func (f *fakeAccountRepo) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

func (f *fakeAccountRepo) GetAccountById(_ context.Context, id string) (*model.Account, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return &a, nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id string, hash string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return model.ErrAccountNotFound
	}
	a.PasswordHash = hash
	f.accounts[id] = a
	return nil
}

func (f *fakeAccountRepo) UpdateDisplayName(_ context.Context, id string, displayName string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return model.ErrAccountNotFound
	}
	a.DisplayName = displayName
	f.accounts[id] = a
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeCache struct {
	mux      sync.Mutex
	revoked  map[string]bool
	shows    map[int64]*catalog.ShowDetail
	searches map[string][]catalog.Show
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		revoked:  map[string]bool{},
		shows:    map[int64]*catalog.ShowDetail{},
		searches: map[string][]catalog.Show{},
	}
}

func (f *fakeCache) IsSessionRevoked(_ context.Context, sessionId string) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.revoked[sessionId], nil
}

func (f *fakeCache) RevokeSession(_ context.Context, sessionId string, _ time.Duration) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.revoked[sessionId] = true
	return nil
}

func (f *fakeCache) GetCachedShow(_ context.Context, showId int64) (*catalog.ShowDetail, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.shows[showId], nil
}

func (f *fakeCache) SetShowCache(_ context.Context, showId int64, show *catalog.ShowDetail, _ time.Duration) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.shows[showId] = show
	return nil
}

func (f *fakeCache) DeleteShowCache(_ context.Context, showId int64) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	delete(f.shows, showId)
	return nil
}

func (f *fakeCache) GetCachedSearch(_ context.Context, query string) ([]catalog.Show, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.searches[normalizeQuery(query)], nil
}

func (f *fakeCache) SetSearchCache(_ context.Context, query string, shows []catalog.Show, _ time.Duration) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.searches[normalizeQuery(query)] = shows
	return nil
}

//------------------------------------------
//------------------------------------------

type recordedEvents struct {
	mux    sync.Mutex
	events []model.ActivityEvent
}

func (r *recordedEvents) Emit(event model.ActivityEvent) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.events = append(r.events, event)
}

func (r *recordedEvents) types() []model.ActivityType {
	r.mux.Lock()
	defer r.mux.Unlock()
	result := make([]model.ActivityType, 0, len(r.events))
	for _, e := range r.events {
		result = append(result, e.Type)
	}
	return result
}
