package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DbConfigData is the runtime-tunable part of the configuration, stored as a
// single document in the mongo "configs" collection.
type DbConfigData struct {
	Id                    primitive.ObjectID `bson:"_id"`
	Title                 string             `bson:"title"`
	CorsAllowedOrigins    []string           `bson:"corsAllowedOrigins"`
	CatalogBatchSize      int                `bson:"catalogBatchSize"`
	CatalogMaxPages       int                `bson:"catalogMaxPages"`
	CatalogRandomPages    int                `bson:"catalogRandomPages"`
	CatalogMinYear        int                `bson:"catalogMinYear"`
	CatalogMinRating      float64            `bson:"catalogMinRating"`
	CatalogMinWeight      int                `bson:"catalogMinWeight"`
	CatalogLanguages      []string           `bson:"catalogLanguages"`
	CatalogTypes          []string           `bson:"catalogTypes"`
	PublicReviewsLimit    int64              `bson:"publicReviewsLimit"`
	ShowCacheTtlMinutes   int                `bson:"showCacheTtlMinutes"`
	SearchCacheTtlMinutes int                `bson:"searchCacheTtlMinutes"`
}

const dbConfigsTitle = "server configs"

var rwm sync.RWMutex
var dbConfigs DbConfigData

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

// SetDbConfigs replaces the in-memory copy without touching the database.
func SetDbConfigs(data DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = data
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	defer tick.Stop()
	_ = FetchDbConfigs(mongodb)
	for range tick.C {
		_ = FetchDbConfigs(mongodb)
	}
}

func FetchDbConfigs(mongodb *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var data DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(ctx, bson.D{{Key: "title", Value: dbConfigsTitle}}).
		Decode(&data)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
		return err
	}

	SetDbConfigs(data)
	return nil
}
