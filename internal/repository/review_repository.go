package repository

import (
	"context"
	"errors"
	"showtracker/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IReviewRepository interface {
	UpsertReview(ctx context.Context, userId string, authorName string, show model.Show, input model.ReviewInput, now time.Time) error
	GetReview(ctx context.Context, userId string, showId int64) (*model.ReviewEntry, error)
	GetUserReviews(ctx context.Context, userId string) ([]model.ReviewEntry, error)
	GetUserFavorites(ctx context.Context, userId string) ([]model.ReviewEntry, error)
	GetShowReviews(ctx context.Context, showId int64, limit int64) ([]model.ReviewEntry, error)
	DeleteReview(ctx context.Context, userId string, showId int64) (bool, error)
	CountReviews(ctx context.Context, userId string) (int64, error)
}

type ReviewRepository struct {
	mongodb *mongo.Database
}

func NewReviewRepository(mongodb *mongo.Database) *ReviewRepository {
	return &ReviewRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) collection() *mongo.Collection {
	return r.mongodb.Collection("logs")
}

func (r *ReviewRepository) UpsertReview(ctx context.Context, userId string, authorName string, show model.Show, input model.ReviewInput, now time.Time) error {
	filter := bson.M{"userId": userId, "showId": show.ShowId}
	update := reviewUpsertDoc(userId, authorName, show, input, now)
	opts := options.Update().SetUpsert(true)

	_, err := r.collection().UpdateOne(ctx, filter, update, opts)
	return err
}

// reviewUpsertDoc overwrites only the provided fields. Missing ones go to
// $setOnInsert so they default on the first write and are kept afterwards.
func reviewUpsertDoc(userId string, authorName string, show model.Show, input model.ReviewInput, now time.Time) bson.M {
	set := bson.M{
		"showName":   show.Name,
		"showPoster": show.Poster,
		"authorId":   userId,
		"authorName": authorName,
		"updatedAt":  now,
	}
	setOnInsert := bson.M{"createdAt": now}

	if input.Rating != nil {
		set["rating"] = *input.Rating
	} else {
		setOnInsert["rating"] = float64(0)
	}
	if input.IsFavorite != nil {
		set["isFavorite"] = *input.IsFavorite
	} else {
		setOnInsert["isFavorite"] = false
	}
	if input.ReviewText != nil {
		set["reviewText"] = *input.ReviewText
	} else {
		setOnInsert["reviewText"] = ""
	}

	return bson.M{"$set": set, "$setOnInsert": setOnInsert}
}

func (r *ReviewRepository) GetReview(ctx context.Context, userId string, showId int64) (*model.ReviewEntry, error) {
	var result model.ReviewEntry
	err := r.collection().
		FindOne(ctx, bson.M{"userId": userId, "showId": showId}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrReviewNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *ReviewRepository) GetUserReviews(ctx context.Context, userId string) ([]model.ReviewEntry, error) {
	return r.find(ctx, bson.M{"userId": userId}, 0)
}

func (r *ReviewRepository) GetUserFavorites(ctx context.Context, userId string) ([]model.ReviewEntry, error) {
	return r.find(ctx, bson.M{"userId": userId, "isFavorite": true}, 0)
}

func (r *ReviewRepository) GetShowReviews(ctx context.Context, showId int64, limit int64) ([]model.ReviewEntry, error) {
	return r.find(ctx, bson.M{"showId": showId}, limit)
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M, limit int64) ([]model.ReviewEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	result := []model.ReviewEntry{}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, userId string, showId int64) (bool, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"userId": userId, "showId": showId})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ReviewRepository) CountReviews(ctx context.Context, userId string) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"userId": userId})
}
