// Package models - Rating thuộc domain rating.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating là một đánh giá của khách cho một món trong thực đơn
type Rating struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	ItemID    string             `json:"itemId" bson:"itemId"`
	Rating    float64            `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
