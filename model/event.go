package model

import "time"

type ActivityType string

const (
	WatchlistAdded      ActivityType = "watchlist.added"
	WatchlistRemoved    ActivityType = "watchlist.removed"
	ReviewSaved         ActivityType = "review.saved"
	ReviewDeleted       ActivityType = "review.deleted"
	PlaylistCreated     ActivityType = "playlist.created"
	PlaylistDeleted     ActivityType = "playlist.deleted"
	PlaylistItemAdded   ActivityType = "playlist.item_added"
	PlaylistItemRemoved ActivityType = "playlist.item_removed"
)

// ActivityEvent is published to the message broker after a successful
// mutation of user data.
type ActivityEvent struct {
	Type       ActivityType `json:"type"`
	UserId     string       `json:"userId"`
	ShowId     int64        `json:"showId,omitempty"`
	PlaylistId string       `json:"playlistId,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
