// Package models - Order thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order là một dòng đơn hàng: mỗi món khách đặt tạo ra một document riêng,
// thông tin khách (tên, số điện thoại, thời gian lấy hàng) được denormalize vào từng dòng.
type Order struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ItemID         string             `json:"itemId" bson:"itemId"`
	Name           string             `json:"name" bson:"name"`
	Phone          string             `json:"phone" bson:"phone"`
	Quantity       float64            `json:"quantity" bson:"quantity"`
	Unit           string             `json:"unit" bson:"unit"`
	CollectionTime string             `json:"collectionTime" bson:"collectionTime"`
	CollectionDate string             `json:"collectionDate" bson:"collectionDate"`
	Completed      bool               `json:"completed" bson:"completed"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
