// Package router đăng ký các route trạng thái cửa hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "friends_cafe/internal/api/router"
	shophdl "friends_cafe/internal/api/shop/handler"
)

// Register đăng ký route shop-status lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	statusHandler, err := shophdl.NewShopStatusHandler()
	if err != nil {
		return fmt.Errorf("create shop status handler: %w", err)
	}

	api.Get("/shop-status", statusHandler.Get)
	api.Put("/shop-status", statusHandler.Update)
	return nil
}
