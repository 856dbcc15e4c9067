package model

// ShowStatus is the caller's relation to one show, used to initialise toggles.
// The zero value is the "nothing recorded" status.
type ShowStatus struct {
	InWatchlist bool    `json:"inWatchlist"`
	IsFavorite  bool    `json:"isFavorite"`
	UserRating  float64 `json:"userRating"`
	ReviewText  string  `json:"reviewText"`
}
