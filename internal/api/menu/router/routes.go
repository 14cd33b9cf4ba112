// Package router đăng ký các route thuộc domain menu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "friends_cafe/internal/api/menu/handler"
	apirouter "friends_cafe/internal/api/router"
	"friends_cafe/internal/media"
)

// Register đăng ký tất cả route menu lên /api.
func Register(storage *media.LocalStorage) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		menuItemHandler, err := menuhdl.NewMenuItemHandler(storage)
		if err != nil {
			return fmt.Errorf("create menu item handler: %w", err)
		}

		api.Get("/menu", menuItemHandler.List)
		api.Post("/menu", menuItemHandler.Create)
		api.Put("/menu/:id", menuItemHandler.Update)
		api.Delete("/menu/:id", menuItemHandler.Delete)
		return nil
	}
}
