// Package ordersvc chứa service nghiệp vụ cho domain order.
package ordersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "friends_cafe/internal/api/base/service"
	menumodels "friends_cafe/internal/api/menu/models"
	menusvc "friends_cafe/internal/api/menu/service"
	orderdto "friends_cafe/internal/api/order/dto"
	ordermodels "friends_cafe/internal/api/order/models"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
	"friends_cafe/internal/logger"
	"friends_cafe/internal/notification"
	"friends_cafe/internal/utility"
)

// orderStore là phần interface của base service mà OrderService sử dụng
type orderStore interface {
	InsertMany(ctx context.Context, data []ordermodels.Order) ([]ordermodels.Order, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]ordermodels.Order, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (ordermodels.Order, error)
}

// menuLookup tra cứu món trong thực đơn khi validate đơn hàng
type menuLookup interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (menumodels.MenuItem, error)
}

// OrderService xử lý nghiệp vụ đặt hàng và quản lý đơn hàng
type OrderService struct {
	orders   orderStore
	menu     menuLookup
	notifier notification.Notifier
}

// NewOrderService tạo mới OrderService
func NewOrderService(notifier notification.Notifier) (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	menuItemService, err := menusvc.NewMenuItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item service: %v", err)
	}

	return &OrderService{
		orders:   basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
		menu:     menuItemService,
		notifier: notifier,
	}, nil
}

// PlaceOrders xử lý một yêu cầu đặt hàng: validate toàn bộ danh sách món
// trước khi ghi bất kỳ dòng nào, mỗi món hợp lệ trở thành một document Order.
// Thông báo WhatsApp cho chủ quán được gửi ngay sau khi ghi thành công,
// lỗi gửi chỉ log chứ không làm thất bại đơn hàng.
func (s *OrderService) PlaceOrders(ctx context.Context, input *orderdto.PlaceOrderInput) ([]ordermodels.Order, error) {
	if len(input.Items) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgItemsRequired, common.StatusBadRequest, nil)
	}

	orders := make([]ordermodels.Order, 0, len(input.Items))
	message := fmt.Sprintf("New Order from %s (%s) for collection on %s at %s:\n",
		input.Name, input.Phone, input.CollectionDate, input.CollectionTime)

	// Validate tất cả các món trước, không ghi dòng nào nếu có món không hợp lệ
	for _, line := range input.Items {
		if line.ItemID == "" || !primitive.IsValidObjectID(line.ItemID) {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Invalid itemId: %s", line.ItemID),
				common.StatusBadRequest,
				nil,
			)
		}

		itemID := utility.String2ObjectID(line.ItemID)
		item, err := s.menu.FindOneById(ctx, itemID)
		if err != nil {
			if common.IsNotFound(err) {
				return nil, common.NewError(
					common.ErrCodeDatabaseQuery,
					fmt.Sprintf("%s: %s", common.MsgItemNotFound, line.ItemID),
					common.StatusNotFound,
					nil,
				)
			}
			return nil, err
		}

		orders = append(orders, ordermodels.Order{
			ItemID:         line.ItemID,
			Name:           input.Name,
			Phone:          input.Phone,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
			CollectionTime: input.CollectionTime,
			CollectionDate: input.CollectionDate,
		})
		message += fmt.Sprintf("%v %s of %s\n", line.Quantity, line.Unit, item.Name)
	}

	created, err := s.orders.InsertMany(ctx, orders)
	if err != nil {
		return nil, err
	}

	// Chờ gửi xong thông báo rồi mới trả response, lỗi gửi được nuốt sau khi log
	s.notify(ctx, message)

	return created, nil
}

// notify gửi thông báo đơn hàng mới, nuốt lỗi sau khi log
func (s *OrderService) notify(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := s.notifier.Send(sendCtx, message); err != nil {
		logger.GetErrorLogger().WithError(err).Error("Twilio error")
	}
}

// List trả về tất cả đơn hàng, mới nhất trước
func (s *OrderService) List(ctx context.Context) ([]ordermodels.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.orders.Find(ctx, nil, opts)
}

// UpdateById cập nhật một đơn hàng theo id
func (s *OrderService) UpdateById(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (ordermodels.Order, error) {
	return s.orders.UpdateById(ctx, id, update)
}
