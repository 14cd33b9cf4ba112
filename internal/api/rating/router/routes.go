// Package router đăng ký các route thuộc domain rating.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	ratinghdl "friends_cafe/internal/api/rating/handler"
	apirouter "friends_cafe/internal/api/router"
)

// Register đăng ký tất cả route rating lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	ratingHandler, err := ratinghdl.NewRatingHandler()
	if err != nil {
		return fmt.Errorf("create rating handler: %w", err)
	}

	api.Get("/ratings", ratingHandler.List)
	api.Post("/ratings", ratingHandler.Create)
	return nil
}
