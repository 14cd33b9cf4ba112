// Package router đăng ký route đăng nhập quản trị viên.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "friends_cafe/internal/api/auth/handler"
	apirouter "friends_cafe/internal/api/router"
)

// Register đăng ký route đăng nhập vào /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("create auth handler: %w", err)
	}

	api.Post("/admin/login", authHandler.Login)
	return nil
}
