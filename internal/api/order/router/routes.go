// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "friends_cafe/internal/api/order/handler"
	apirouter "friends_cafe/internal/api/router"
	"friends_cafe/internal/notification"
)

// Register đăng ký tất cả route order lên /api.
func Register(notifier notification.Notifier) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		orderHandler, err := orderhdl.NewOrderHandler(notifier)
		if err != nil {
			return fmt.Errorf("create order handler: %w", err)
		}

		api.Post("/orders", orderHandler.Place)
		api.Get("/orders", orderHandler.List)
		api.Put("/orders/:id", orderHandler.Update)
		return nil
	}
}
