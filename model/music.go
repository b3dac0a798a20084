package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Music struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Artist    string             `bson:"artist" json:"artist"`
	AudioURL  string             `bson:"audioUrl" json:"audioUrl"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Category  string             `bson:"category" json:"category"`
	// Seconds. Derived from the audio file when one is uploaded,
	// but a manually provided value wins
	Duration  int       `bson:"duration" json:"duration"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	PlayCount int       `bson:"playCount" json:"playCount"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (m *Music) Stamp(now time.Time, isNew bool) {
	m.UpdatedAt = now
	if isNew {
		m.CreatedAt = now
	}
}
