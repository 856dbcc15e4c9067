package repository

import (
	"context"
	"showtracker/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IWatchlistRepository interface {
	UpsertWatchlistEntry(ctx context.Context, entry model.WatchlistEntry) error
	DeleteWatchlistEntry(ctx context.Context, userId string, showId int64) error
	GetWatchlist(ctx context.Context, userId string) ([]model.WatchlistEntry, error)
	WatchlistEntryExists(ctx context.Context, userId string, showId int64) (bool, error)
	CountWatchlist(ctx context.Context, userId string) (int64, error)
}

type WatchlistRepository struct {
	mongodb *mongo.Database
}

func NewWatchlistRepository(mongodb *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *WatchlistRepository) collection() *mongo.Collection {
	return r.mongodb.Collection("watchlist")
}

func (r *WatchlistRepository) UpsertWatchlistEntry(ctx context.Context, entry model.WatchlistEntry) error {
	filter := bson.M{"userId": entry.UserId, "showId": entry.ShowId}
	update := bson.M{"$set": bson.M{
		"name":      entry.Name,
		"poster":    entry.Poster,
		"premiered": entry.Premiered,
		"rating":    entry.Rating,
		"addedAt":   entry.AddedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection().UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *WatchlistRepository) DeleteWatchlistEntry(ctx context.Context, userId string, showId int64) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"userId": userId, "showId": showId})
	return err
}

func (r *WatchlistRepository) GetWatchlist(ctx context.Context, userId string) ([]model.WatchlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	result := []model.WatchlistEntry{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *WatchlistRepository) WatchlistEntryExists(ctx context.Context, userId string, showId int64) (bool, error) {
	opts := options.Count().SetLimit(1)
	n, err := r.collection().CountDocuments(ctx, bson.M{"userId": userId, "showId": showId}, opts)
	return n > 0, err
}

func (r *WatchlistRepository) CountWatchlist(ctx context.Context, userId string) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"userId": userId})
}
