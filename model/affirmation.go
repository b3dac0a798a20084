// Package model defines the three catalog record types
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Affirmation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text      string             `bson:"text" json:"text"`
	Category  string             `bson:"category" json:"category"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	ViewCount int                `bson:"viewCount" json:"viewCount"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Stamp rewrites updatedAt and, for new records only, createdAt
func (a *Affirmation) Stamp(now time.Time, isNew bool) {
	a.UpdatedAt = now
	if isNew {
		a.CreatedAt = now
	}
}
