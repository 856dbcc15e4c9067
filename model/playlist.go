package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	Id         primitive.ObjectID `bson:"_id" json:"id"`
	UserId     string             `bson:"userId" json:"-"`
	Name       string             `bson:"name" json:"name"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
	ItemCount  int64              `bson:"itemCount" json:"itemCount"`
	CoverImage string             `bson:"coverImage" json:"coverImage"`
}

type PlaylistItem struct {
	PlaylistId primitive.ObjectID `bson:"playlistId" json:"playlistId"`
	UserId     string             `bson:"userId" json:"-"`
	Show       `bson:",inline"`
	AddedAt    time.Time `bson:"addedAt" json:"addedAt"`
}

type CreatePlaylistReq struct {
	Name string `json:"name"`
}
