// Package authsvc chứa service nghiệp vụ cho domain auth.
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "friends_cafe/internal/api/auth/models"
	basesvc "friends_cafe/internal/api/base/service"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// adminStore là phần interface của base service mà AdminService sử dụng
type adminStore interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (authmodels.Admin, error)
	InsertOne(ctx context.Context, data authmodels.Admin) (authmodels.Admin, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// AdminService xử lý đăng nhập và seed tài khoản quản trị
type AdminService struct {
	admins adminStore
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Admins)
	if !exist {
		return nil, fmt.Errorf("failed to get admins collection: %v", common.ErrNotFound)
	}

	return &AdminService{
		admins: basesvc.NewBaseServiceMongo[authmodels.Admin](collection),
	}, nil
}

// Login kiểm tra thông tin đăng nhập bằng so khớp chính xác username và password.
// Sai thông tin trả về (false, nil), chỉ lỗi hệ thống mới trả về error.
func (s *AdminService) Login(ctx context.Context, username, password string) (bool, error) {
	_, err := s.admins.FindOne(ctx, bson.M{"username": username, "password": password}, nil)
	if err != nil {
		if common.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureAdmin tạo tài khoản admin nếu username chưa tồn tại, idempotent
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := s.admins.DocumentExists(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	_, err = s.admins.InsertOne(ctx, authmodels.Admin{
		Username: username,
		Password: password,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
