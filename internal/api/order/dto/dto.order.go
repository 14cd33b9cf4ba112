// Package orderdto chứa DTO cho domain order.
package orderdto

// OrderLineInput là một món trong yêu cầu đặt hàng
type OrderLineInput struct {
	ItemID   string  `json:"itemId"`   // Id của món trong thực đơn
	Quantity float64 `json:"quantity"` // Số lượng đặt
	Unit     string  `json:"unit"`     // Đơn vị (plate, kg, ...)
}

// PlaceOrderInput là yêu cầu đặt hàng của khách: danh sách món
// kèm thông tin liên hệ và thời gian lấy hàng.
type PlaceOrderInput struct {
	Items          []OrderLineInput `json:"items"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	CollectionTime string           `json:"collectionTime"`
	CollectionDate string           `json:"collectionDate"`
}

// OrderUpdateInput là input cập nhật đơn hàng, chỉ các trường khác nil được update
type OrderUpdateInput struct {
	Name           *string  `json:"name,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Quantity       *float64 `json:"quantity,omitempty"`
	Unit           *string  `json:"unit,omitempty"`
	CollectionTime *string  `json:"collectionTime,omitempty"`
	CollectionDate *string  `json:"collectionDate,omitempty"`
	Completed      *bool    `json:"completed,omitempty"`
}

// ToUpdateMap chuyển các trường khác nil thành map dùng cho $set
func (in *OrderUpdateInput) ToUpdateMap() map[string]interface{} {
	update := map[string]interface{}{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Phone != nil {
		update["phone"] = *in.Phone
	}
	if in.Quantity != nil {
		update["quantity"] = *in.Quantity
	}
	if in.Unit != nil {
		update["unit"] = *in.Unit
	}
	if in.CollectionTime != nil {
		update["collectionTime"] = *in.CollectionTime
	}
	if in.CollectionDate != nil {
		update["collectionDate"] = *in.CollectionDate
	}
	if in.Completed != nil {
		update["completed"] = *in.Completed
	}
	return update
}
