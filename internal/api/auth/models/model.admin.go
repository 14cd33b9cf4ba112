// Package models - Admin thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin là tài khoản quản trị của quán.
// Password lưu plaintext để khớp với dữ liệu hiện có, không trả về qua JSON.
type Admin struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
