// Package models - MenuItem thuộc domain menu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem là một món trong thực đơn của quán.
// Image chứa đường dẫn tương đối tới ảnh (/Uploads/<file>), rỗng nếu không có ảnh.
type MenuItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image" bson:"image"`
	Unit        string             `json:"unit" bson:"unit"`
	Available   bool               `json:"available" bson:"available"`
	Category    string             `json:"category" bson:"category" index:"single"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
