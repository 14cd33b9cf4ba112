// Package ratingdto chứa DTO cho domain rating.
package ratingdto

// RatingCreateInput là input để khách gửi đánh giá cho một món.
// Các trường được nhận nguyên trạng, không ràng buộc khoảng giá trị.
type RatingCreateInput struct {
	Name    string  `json:"name"`    // Tên khách
	ItemID  string  `json:"itemId"`  // Id món được đánh giá
	Rating  float64 `json:"rating"`  // Điểm đánh giá
	Comment string  `json:"comment"` // Nhận xét
}
