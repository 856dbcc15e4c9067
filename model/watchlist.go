package model

import "time"

type WatchlistEntry struct {
	UserId  string `bson:"userId" json:"-"`
	Show    `bson:",inline"`
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
}
