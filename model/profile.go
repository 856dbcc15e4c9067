package model

import "time"

const DefaultProfileName = "User"

type Profile struct {
	UserId      string    `bson:"_id" json:"-"`
	DisplayName string    `bson:"displayName,omitempty" json:"displayName"`
	Bio         string    `bson:"bio,omitempty" json:"bio"`
	Phone       string    `bson:"phone,omitempty" json:"phone"`
	Location    string    `bson:"location,omitempty" json:"location"`
	PhotoUrl    string    `bson:"photoUrl,omitempty" json:"photoUrl"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ProfileUpdate struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	PhotoUrl    *string `json:"photoUrl"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.DisplayName == nil && p.Bio == nil && p.Phone == nil && p.Location == nil && p.PhotoUrl == nil
}

type ProfileRes struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	PhotoUrl       string `json:"photoUrl"`
	ReviewCount    int64  `json:"reviewCount"`
	WatchlistCount int64  `json:"watchlistCount"`
	ListCount      int64  `json:"listCount"`
}
