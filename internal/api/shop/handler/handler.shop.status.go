// Package shophdl chứa HTTP handler cho trạng thái cửa hàng.
package shophdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "friends_cafe/internal/api/base/handler"
	shopdto "friends_cafe/internal/api/shop/dto"
	shopmodels "friends_cafe/internal/api/shop/models"
	shopsvc "friends_cafe/internal/api/shop/service"
	"friends_cafe/internal/common"
)

// shopStatusService là phần interface của ShopStatusService mà handler sử dụng
type shopStatusService interface {
	GetOrCreateDefault(ctx context.Context) (shopmodels.ShopStatus, error)
	UpdateStatus(ctx context.Context, update map[string]interface{}) (shopmodels.ShopStatus, error)
}

// ShopStatusHandler xử lý các request về trạng thái cửa hàng
type ShopStatusHandler struct {
	basehdl.BaseHandler
	service shopStatusService
}

// NewShopStatusHandler tạo mới ShopStatusHandler
func NewShopStatusHandler() (*ShopStatusHandler, error) {
	statusService, err := shopsvc.NewShopStatusService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shop status service: %v", err)
	}

	return &ShopStatusHandler{
		service: statusService,
	}, nil
}

// Get trả về trạng thái hiện tại, tự tạo mặc định nếu chưa có
func (h *ShopStatusHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := h.service.GetOrCreateDefault(c.Context())
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		return basehdl.JSONResponse(c, common.StatusOK, status)
	})
}

// Update cập nhật trạng thái cửa hàng
func (h *ShopStatusHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.ShopStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		status, err := h.service.UpdateStatus(c.Context(), input.ToUpdateMap())
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		return basehdl.JSONResponse(c, common.StatusOK, status)
	})
}
