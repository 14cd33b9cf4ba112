// Package authdto chứa DTO cho domain auth.
package authdto

// LoginInput là input đăng nhập của admin
type LoginInput struct {
	Username string `json:"username" validate:"required"` // Tên đăng nhập
	Password string `json:"password" validate:"required"` // Mật khẩu
}
