package model

import "time"

const (
	MinRating = 0
	MaxRating = 5
)

// ReviewEntry is a user's log for one show: rating, favorite flag and notes.
// There is at most one per (user, show).
type ReviewEntry struct {
	UserId     string    `bson:"userId" json:"-"`
	ShowId     int64     `bson:"showId" json:"showId"`
	ShowName   string    `bson:"showName" json:"showName"`
	ShowPoster string    `bson:"showPoster" json:"showPoster"`
	Rating     float64   `bson:"rating" json:"rating"`
	IsFavorite bool      `bson:"isFavorite" json:"isFavorite"`
	ReviewText string    `bson:"reviewText" json:"reviewText"`
	AuthorId   string    `bson:"authorId" json:"authorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewInput carries the fields a client wants to change. Nil fields keep
// their stored value.
type ReviewInput struct {
	Rating     *float64 `json:"rating"`
	IsFavorite *bool    `json:"isFavorite"`
	ReviewText *string  `json:"reviewText"`
}

func (r ReviewInput) Validate() error {
	if r.Rating != nil && (*r.Rating < MinRating || *r.Rating > MaxRating) {
		return ErrInvalidRating
	}
	return nil
}

type SaveReviewReq struct {
	Show   Show        `json:"show"`
	Review ReviewInput `json:"review"`
}
