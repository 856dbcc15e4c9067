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

type IProfileRepository interface {
	GetProfile(ctx context.Context, userId string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate, now time.Time) error
}

type ProfileRepository struct {
	mongodb *mongo.Database
}

func NewProfileRepository(mongodb *mongo.Database) *ProfileRepository {
	return &ProfileRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

// GetProfile returns nil without error for users that never saved a profile.
func (r *ProfileRepository) GetProfile(ctx context.Context, userId string) (*model.Profile, error) {
	var result model.Profile
	err := r.mongodb.
		Collection("profiles").
		FindOne(ctx, bson.M{"_id": userId}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate, now time.Time) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.mongodb.
		Collection("profiles").
		UpdateOne(ctx, bson.M{"_id": userId}, profileUpdateDoc(update, now), opts)
	return err
}

func profileUpdateDoc(update model.ProfileUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if update.DisplayName != nil {
		set["displayName"] = *update.DisplayName
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.PhotoUrl != nil {
		set["photoUrl"] = *update.PhotoUrl
	}
	return bson.M{"$set": set}
}
