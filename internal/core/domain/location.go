package domain

import (
	"errors"
	"time"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrDivisionNotFound = errors.New("division not found")
)

// District is a leaf of the location hierarchy.
type District struct {
	Name string `json:"name" bson:"name"`
}

// Division groups districts inside a country.
type Division struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Name      string     `json:"name" bson:"name"`
	Districts []District `json:"districts" bson:"districts"`
}

// Location is a country document holding its full division tree.
type Location struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Country   string     `json:"country" bson:"country"`
	Divisions []Division `json:"divisions" bson:"divisions"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// DivisionByID returns the named division, or ErrDivisionNotFound.
func (l *Location) DivisionByID(id string) (*Division, error) {
	for i := range l.Divisions {
		if l.Divisions[i].ID == id {
			return &l.Divisions[i], nil
		}
	}
	return nil, ErrDivisionNotFound
}
