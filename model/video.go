package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	VideoURL     string             `bson:"videoUrl" json:"videoUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Likes        int                `bson:"likes" json:"likes"`
	Views        int                `bson:"views" json:"views"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (v *Video) Stamp(now time.Time, isNew bool) {
	v.UpdatedAt = now
	if isNew {
		v.CreatedAt = now
	}
}
