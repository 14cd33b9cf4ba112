// Package menudto chứa DTO cho domain menu.
package menudto

// MenuItemCreateInput là input để thêm món mới vào thực đơn.
// Dữ liệu đến từ multipart form (kèm file ảnh), các giá trị đều là chuỗi
// và được handler chuyển đổi kiểu trước khi tạo model.
type MenuItemCreateInput struct {
	Name        string `form:"name" validate:"required"` // Tên món
	Price       string `form:"price"`                    // Giá món (chuỗi số từ form)
	Unit        string `form:"unit"`                     // Đơn vị bán (plate, kg, ...)
	Available   string `form:"available"`                // "true" nếu món đang bán
	Category    string `form:"category"`                 // Danh mục món
	Description string `form:"description"`              // Mô tả món
}

// MenuItemUpdateInput là input để cập nhật món, chỉ các trường khác nil được update
type MenuItemUpdateInput struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ToUpdateMap chuyển các trường khác nil thành map dùng cho $set
func (in *MenuItemUpdateInput) ToUpdateMap() map[string]interface{} {
	update := map[string]interface{}{}
	if in.Name != nil {
		update["name"] = *in.Name
	}
	if in.Price != nil {
		update["price"] = *in.Price
	}
	if in.Image != nil {
		update["image"] = *in.Image
	}
	if in.Unit != nil {
		update["unit"] = *in.Unit
	}
	if in.Available != nil {
		update["available"] = *in.Available
	}
	if in.Category != nil {
		update["category"] = *in.Category
	}
	if in.Description != nil {
		update["description"] = *in.Description
	}
	return update
}
