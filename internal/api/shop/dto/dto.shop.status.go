// Package shopdto chứa các cấu trúc input cho domain shop.
package shopdto

// ShopStatusUpdateInput là dữ liệu cập nhật trạng thái cửa hàng.
// Các trường là con trỏ để phân biệt không gửi và gửi giá trị zero.
type ShopStatusUpdateInput struct {
	IsOpen          *bool   `json:"isOpen"`
	AcceptingOrders *bool   `json:"acceptingOrders"`
	Message         *string `json:"message"`
}

// ToUpdateMap chuyển input thành map chỉ chứa các trường được gửi lên
func (input *ShopStatusUpdateInput) ToUpdateMap() map[string]interface{} {
	update := map[string]interface{}{}
	if input.IsOpen != nil {
		update["isOpen"] = *input.IsOpen
	}
	if input.AcceptingOrders != nil {
		update["acceptingOrders"] = *input.AcceptingOrders
	}
	if input.Message != nil {
		update["message"] = *input.Message
	}
	return update
}
