package mongodb

import (
	"context"
	"showtracker/configs"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDatabase struct {
	Db     *mongo.Database
	client *mongo.Client
}

var MONGODB *MongoDatabase

func NewDatabase() (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(configs.GetConfigs().MongodbDatabaseUrl)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	MONGODB = &MongoDatabase{
		client: client,
		Db:     client.Database(configs.GetConfigs().MongodbDatabaseName),
	}
	return MONGODB, nil
}

func (d *MongoDatabase) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.client.Disconnect(ctx); err != nil {
		panic(err)
	}
}

func (d *MongoDatabase) GetDB() *mongo.Database {
	return d.Db
}

//------------------------------------------
//------------------------------------------

// EnsureIndexes creates the per-user uniqueness and ordering indexes the
// repositories rely on. Existing indexes are left untouched.
func (d *MongoDatabase) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"watchlist": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "showId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "addedAt", Value: -1}}},
		},
		"logs": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "showId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isFavorite", Value: 1}, {Key: "updatedAt", Value: -1}}},
			{Keys: bson.D{{Key: "showId", Value: 1}, {Key: "updatedAt", Value: -1}}},
		},
		"playlists": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"playlist_items": {
			{Keys: bson.D{{Key: "playlistId", Value: 1}, {Key: "showId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "playlistId", Value: 1}, {Key: "addedAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := d.Db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
