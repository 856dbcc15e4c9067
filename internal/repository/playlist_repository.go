package repository

import (
	"context"
	"errors"
	"showtracker/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IPlaylistRepository interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	GetPlaylist(ctx context.Context, userId string, playlistId primitive.ObjectID) (*model.Playlist, error)
	GetPlaylists(ctx context.Context, userId string) ([]model.Playlist, error)
	DeletePlaylist(ctx context.Context, userId string, playlistId primitive.ObjectID) (bool, error)
	CountPlaylists(ctx context.Context, userId string) (int64, error)
	UpdatePlaylistItemCount(ctx context.Context, userId string, playlistId primitive.ObjectID, delta int64, coverImage *string, now time.Time) error
	SetPlaylistItemCount(ctx context.Context, userId string, playlistId primitive.ObjectID, count int64, now time.Time) error
	UpsertPlaylistItem(ctx context.Context, item model.PlaylistItem) (bool, error)
	InsertPlaylistItem(ctx context.Context, item model.PlaylistItem) error
	DeletePlaylistItem(ctx context.Context, userId string, playlistId primitive.ObjectID, showId int64) (*model.PlaylistItem, error)
	DeletePlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) error
	GetPlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) ([]model.PlaylistItem, error)
	CountPlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) (int64, error)
}

type PlaylistRepository struct {
	mongodb *mongo.Database
}

func NewPlaylistRepository(mongodb *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *PlaylistRepository) playlists() *mongo.Collection {
	return r.mongodb.Collection("playlists")
}

func (r *PlaylistRepository) items() *mongo.Collection {
	return r.mongodb.Collection("playlist_items")
}

//------------------------------------------
//------------------------------------------

func (r *PlaylistRepository) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if playlist.Id.IsZero() {
		playlist.Id = primitive.NewObjectID()
	}
	_, err := r.playlists().InsertOne(ctx, playlist)
	return err
}

func (r *PlaylistRepository) GetPlaylist(ctx context.Context, userId string, playlistId primitive.ObjectID) (*model.Playlist, error) {
	var result model.Playlist
	err := r.playlists().
		FindOne(ctx, bson.M{"_id": playlistId, "userId": userId}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PlaylistRepository) GetPlaylists(ctx context.Context, userId string) ([]model.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.playlists().Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	result := []model.Playlist{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PlaylistRepository) DeletePlaylist(ctx context.Context, userId string, playlistId primitive.ObjectID) (bool, error) {
	res, err := r.playlists().DeleteOne(ctx, bson.M{"_id": playlistId, "userId": userId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *PlaylistRepository) CountPlaylists(ctx context.Context, userId string) (int64, error) {
	return r.playlists().CountDocuments(ctx, bson.M{"userId": userId})
}

// UpdatePlaylistItemCount applies delta to itemCount and, when coverImage is
// not nil, replaces the cover in the same update.
func (r *PlaylistRepository) UpdatePlaylistItemCount(ctx context.Context, userId string, playlistId primitive.ObjectID, delta int64, coverImage *string, now time.Time) error {
	set := bson.M{"updatedAt": now}
	if coverImage != nil {
		set["coverImage"] = *coverImage
	}
	update := bson.M{
		"$inc": bson.M{"itemCount": delta},
		"$set": set,
	}

	res, err := r.playlists().UpdateOne(ctx, bson.M{"_id": playlistId, "userId": userId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepository) SetPlaylistItemCount(ctx context.Context, userId string, playlistId primitive.ObjectID, count int64, now time.Time) error {
	update := bson.M{"$set": bson.M{"itemCount": count, "updatedAt": now}}
	res, err := r.playlists().UpdateOne(ctx, bson.M{"_id": playlistId, "userId": userId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrPlaylistNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

// UpsertPlaylistItem writes the item and reports whether it was new.
func (r *PlaylistRepository) UpsertPlaylistItem(ctx context.Context, item model.PlaylistItem) (bool, error) {
	filter, update := playlistItemUpsertDoc(item)
	opts := options.Update().SetUpsert(true)

	res, err := r.items().UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, err
	}
	return upsertInserted(res), nil
}

func playlistItemUpsertDoc(item model.PlaylistItem) (filter bson.M, update bson.M) {
	filter = bson.M{"playlistId": item.PlaylistId, "userId": item.UserId, "showId": item.ShowId}
	update = bson.M{"$set": bson.M{
		"name":      item.Name,
		"poster":    item.Poster,
		"premiered": item.Premiered,
		"rating":    item.Rating,
		"addedAt":   item.AddedAt,
	}}
	return filter, update
}

// upsertInserted is true only when the upsert created a document; a matched
// existing one leaves the counter alone.
func upsertInserted(res *mongo.UpdateResult) bool {
	return res != nil && res.UpsertedCount > 0
}

func (r *PlaylistRepository) InsertPlaylistItem(ctx context.Context, item model.PlaylistItem) error {
	_, err := r.items().InsertOne(ctx, item)
	return err
}

// DeletePlaylistItem removes the item and returns it, or nil when there was
// nothing to remove.
func (r *PlaylistRepository) DeletePlaylistItem(ctx context.Context, userId string, playlistId primitive.ObjectID, showId int64) (*model.PlaylistItem, error) {
	var deleted model.PlaylistItem
	err := r.items().
		FindOneAndDelete(ctx, bson.M{"playlistId": playlistId, "userId": userId, "showId": showId}).
		Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &deleted, nil
}

func (r *PlaylistRepository) DeletePlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) error {
	_, err := r.items().DeleteMany(ctx, bson.M{"playlistId": playlistId, "userId": userId})
	return err
}

func (r *PlaylistRepository) GetPlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) ([]model.PlaylistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.items().Find(ctx, bson.M{"playlistId": playlistId, "userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	result := []model.PlaylistItem{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PlaylistRepository) CountPlaylistItems(ctx context.Context, userId string, playlistId primitive.ObjectID) (int64, error) {
	return r.items().CountDocuments(ctx, bson.M{"playlistId": playlistId, "userId": userId})
}
