package model

// Show is the point-in-time copy of catalog metadata stored next to user data.
// It is never refreshed from the catalog after it is written.
type Show struct {
	ShowId    int64   `bson:"showId" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Poster    string  `bson:"poster" json:"poster"`
	Premiered string  `bson:"premiered,omitempty" json:"premiered,omitempty"`
	Rating    float64 `bson:"rating,omitempty" json:"rating,omitempty"`
}

func (s Show) Validate() error {
	if s.ShowId <= 0 {
		return ErrInvalidShow
	}
	return nil
}
