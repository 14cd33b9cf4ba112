// Package orderhdl chứa HTTP handler cho domain order.
package orderhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "friends_cafe/internal/api/base/handler"
	orderdto "friends_cafe/internal/api/order/dto"
	ordermodels "friends_cafe/internal/api/order/models"
	ordersvc "friends_cafe/internal/api/order/service"
	"friends_cafe/internal/common"
	"friends_cafe/internal/notification"
	"friends_cafe/internal/utility"
)

// orderService là phần interface của OrderService mà handler sử dụng
type orderService interface {
	PlaceOrders(ctx context.Context, input *orderdto.PlaceOrderInput) ([]ordermodels.Order, error)
	List(ctx context.Context) ([]ordermodels.Order, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (ordermodels.Order, error)
}

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	basehdl.BaseHandler
	service orderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler(notifier notification.Notifier) (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService(notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	return &OrderHandler{
		service: orderService,
	}, nil
}

// Place nhận yêu cầu đặt hàng của khách
func (h *OrderHandler) Place(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.PlaceOrderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		orders, err := h.service.PlaceOrders(c.Context(), &input)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"message": common.MsgOrderPlaced,
			"orders":  orders,
		})
	})
}

// List trả về tất cả đơn hàng, mới nhất trước
func (h *OrderHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orders, err := h.service.List(c.Context())
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		return basehdl.JSONResponse(c, common.StatusOK, orders)
	})
}

// Update cập nhật một đơn hàng theo id, dùng để đánh dấu hoàn thành
func (h *OrderHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Invalid order id: %s", id), common.StatusBadRequest, nil))
			return nil
		}

		var input orderdto.OrderUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		objID := utility.String2ObjectID(id)
		updated, err := h.service.UpdateById(c.Context(), objID, input.ToUpdateMap())
		if err != nil {
			if common.IsNotFound(err) {
				h.HandleError(c, common.NewError(common.ErrCodeDatabaseQuery, common.MsgOrderNotFound, common.StatusNotFound, nil))
				return nil
			}
			h.HandleError(c, err)
			return nil
		}

		return basehdl.JSONResponse(c, common.StatusOK, updated)
	})
}
