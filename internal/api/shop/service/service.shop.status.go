// Package shopsvc chứa service quản lý trạng thái cửa hàng.
package shopsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "friends_cafe/internal/api/base/service"
	shopmodels "friends_cafe/internal/api/shop/models"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// statusStore là phần interface của base service mà ShopStatusService cần
type statusStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (shopmodels.ShopStatus, error)
	InsertOne(ctx context.Context, data shopmodels.ShopStatus) (shopmodels.ShopStatus, error)
	Upsert(ctx context.Context, filter interface{}, data interface{}) (shopmodels.ShopStatus, error)
}

// ShopStatusService quản lý document trạng thái duy nhất của cửa hàng
type ShopStatusService struct {
	status statusStore
}

// NewShopStatusService tạo mới ShopStatusService
func NewShopStatusService() (*ShopStatusService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.ShopStatus)
	if !exist {
		return nil, fmt.Errorf("failed to get shop_status collection: %v", common.ErrNotFound)
	}

	return &ShopStatusService{
		status: basesvc.NewBaseServiceMongo[shopmodels.ShopStatus](collection),
	}, nil
}

// defaultStatus là trạng thái khởi tạo khi chưa có document nào
func defaultStatus() shopmodels.ShopStatus {
	return shopmodels.ShopStatus{
		IsOpen:          true,
		AcceptingOrders: true,
		Message:         "",
	}
}

// GetOrCreateDefault trả về trạng thái cập nhật gần nhất,
// tự tạo document mặc định nếu collection còn trống
func (s *ShopStatusService) GetOrCreateDefault(ctx context.Context) (shopmodels.ShopStatus, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	status, err := s.status.FindOne(ctx, bson.M{}, opts)
	if err == nil {
		return status, nil
	}
	if !common.IsNotFound(err) {
		return shopmodels.ShopStatus{}, err
	}

	return s.status.InsertOne(ctx, defaultStatus())
}

// UpdateStatus cập nhật trạng thái cửa hàng, upsert nếu chưa tồn tại
func (s *ShopStatusService) UpdateStatus(ctx context.Context, update map[string]interface{}) (shopmodels.ShopStatus, error) {
	return s.status.Upsert(ctx, bson.D{}, update)
}
