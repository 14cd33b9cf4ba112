// Package models chứa model trạng thái cửa hàng.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ShopStatus lưu trạng thái mở cửa và nhận đơn của cửa hàng.
// Collection này chỉ giữ một document duy nhất.
type ShopStatus struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	IsOpen          bool               `json:"isOpen" bson:"isOpen"`
	AcceptingOrders bool               `json:"acceptingOrders" bson:"acceptingOrders"`
	Message         string             `json:"message" bson:"message"`
	CreatedAt       int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
