// Package ratinghdl chứa HTTP handler cho domain rating.
package ratinghdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "friends_cafe/internal/api/base/handler"
	ratingdto "friends_cafe/internal/api/rating/dto"
	ratingmodels "friends_cafe/internal/api/rating/models"
	ratingsvc "friends_cafe/internal/api/rating/service"
	"friends_cafe/internal/common"
)

// ratingService là phần interface của RatingService mà handler sử dụng
type ratingService interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]ratingmodels.Rating, error)
	InsertOne(ctx context.Context, data ratingmodels.Rating) (ratingmodels.Rating, error)
}

// RatingHandler xử lý các request liên quan đến đánh giá
type RatingHandler struct {
	basehdl.BaseHandler
	service ratingService
}

// NewRatingHandler tạo mới RatingHandler
func NewRatingHandler() (*RatingHandler, error) {
	ratingService, err := ratingsvc.NewRatingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rating service: %v", err)
	}

	return &RatingHandler{
		service: ratingService,
	}, nil
}

// List trả về tất cả đánh giá
func (h *RatingHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ratings, err := h.service.Find(c.Context(), nil, nil)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		return basehdl.JSONResponse(c, common.StatusOK, ratings)
	})
}

// Create thêm một đánh giá mới
func (h *RatingHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input ratingdto.RatingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		// Lưu nguyên trạng giá trị khách gửi, không ràng buộc khoảng điểm
		rating := ratingmodels.Rating{
			Name:    input.Name,
			ItemID:  input.ItemID,
			Rating:  input.Rating,
			Comment: input.Comment,
		}

		created, err := h.service.InsertOne(c.Context(), rating)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		return basehdl.JSONResponse(c, common.StatusOK, created)
	})
}
